// SPDX-License-Identifier: MIT
package reolink

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
)

const mockToken = "MOCK0123456789ABCDEF"

// MockServer is a configurable fake camera speaking the CGI envelope,
// for tests.
type MockServer struct {
	*httptest.Server
	mu           sync.Mutex
	password     string
	files        []searchFile
	downloads    map[string][]byte
	truncateAt   map[string]int // serve only N bytes but advertise full length
	failCmd      map[string]int // rspCode per failing command
	logoutCalls  int
	loggedIn     bool
	lastCommands []string
}

// NewMockServer starts a fake camera accepting the given password.
func NewMockServer(password string) *MockServer {
	m := &MockServer{
		password:   password,
		downloads:  make(map[string][]byte),
		truncateAt: make(map[string]int),
		failCmd:    make(map[string]int),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/cgi-bin/api.cgi", m.handle)
	m.Server = httptest.NewServer(mux)
	return m
}

// AddRecording registers a searchable recording and its byte content.
func (m *MockServer) AddRecording(f searchFile, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files = append(m.files, f)
	m.downloads[f.Name] = content
}

// TruncateDownload makes the given source fail mid-stream after n bytes.
func (m *MockServer) TruncateDownload(name string, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.truncateAt[name] = n
}

// FailCommand makes one command return the given rspCode.
func (m *MockServer) FailCommand(cmd string, rspCode int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failCmd[cmd] = rspCode
}

// LogoutCalls reports how many times Logout was received.
func (m *MockServer) LogoutCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logoutCalls
}

// Commands lists every command received, in order.
func (m *MockServer) Commands() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.lastCommands...)
}

func (m *MockServer) handle(w http.ResponseWriter, r *http.Request) {
	cmd := r.URL.Query().Get("cmd")

	m.mu.Lock()
	m.lastCommands = append(m.lastCommands, cmd)
	rspCode, shouldFail := m.failCmd[cmd]
	m.mu.Unlock()

	if shouldFail {
		writeReply(w, cmd, 1, nil, rspCode, "mock failure")
		return
	}

	switch cmd {
	case "Login":
		m.handleLogin(w, r)
	case "Logout":
		m.mu.Lock()
		m.logoutCalls++
		m.loggedIn = false
		m.mu.Unlock()
		writeReply(w, cmd, 0, map[string]any{"RspCode": 200}, 0, "")
	case "Search":
		m.handleSearch(w, r)
	case "Download":
		m.handleDownload(w, r)
	case "Snap":
		m.requireToken(w, r, func() {
			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = w.Write([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10})
		})
	case "GetPushV20":
		writeReply(w, cmd, 0, map[string]any{"Push": map[string]any{"enable": 1}}, 0, "")
	case "GetEmailV20":
		writeReply(w, cmd, 0, map[string]any{"Email": map[string]any{"enable": 0}}, 0, "")
	case "GetFtpV20":
		writeReply(w, cmd, 0, map[string]any{"Ftp": map[string]any{"enable": 0}}, 0, "")
	case "GetBuzzerAlarmV20":
		writeReply(w, cmd, 0, map[string]any{"Buzzer": map[string]any{"enable": 1}}, 0, "")
	case "GetDevInfo":
		writeReply(w, cmd, 0, map[string]any{
			"DevInfo": map[string]any{
				"name": "mock-cam", "model": "RLC-810A", "serial": "0000",
				"firmVer": "v3.1.0.0", "hardVer": "IPC_1", "channelNum": 1,
			},
		}, 0, "")
	default:
		// Generic success for setter commands.
		writeReply(w, cmd, 0, map[string]any{"RspCode": 200}, 0, "")
	}
}

func (m *MockServer) requireToken(w http.ResponseWriter, r *http.Request, next func()) {
	if r.URL.Query().Get("token") != mockToken {
		writeReply(w, r.URL.Query().Get("cmd"), 1, nil, rspCodeLoginRequired, "please login first")
		return
	}
	next()
}

func (m *MockServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var reqs []commandRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil || len(reqs) == 0 {
		http.Error(w, "bad body", http.StatusBadRequest)
		return
	}
	raw, _ := json.Marshal(reqs[0].Param)
	var param struct {
		User struct {
			UserName string `json:"userName"`
			Password string `json:"password"`
		} `json:"User"`
	}
	_ = json.Unmarshal(raw, &param)

	if param.User.Password != m.password {
		writeReply(w, "Login", 1, nil, rspCodeLoginFailed, "login failed")
		return
	}
	m.mu.Lock()
	m.loggedIn = true
	m.mu.Unlock()
	writeReply(w, "Login", 0, map[string]any{
		"Token": map[string]any{"leaseTime": 3600, "name": mockToken},
	}, 0, "")
}

func (m *MockServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	m.requireToken(w, r, func() {
		m.mu.Lock()
		files := append([]searchFile(nil), m.files...)
		m.mu.Unlock()
		writeReply(w, "Search", 0, map[string]any{
			"SearchResult": map[string]any{"channel": 0, "File": files},
		}, 0, "")
	})
}

func (m *MockServer) handleDownload(w http.ResponseWriter, r *http.Request) {
	m.requireToken(w, r, func() {
		source := r.URL.Query().Get("source")
		m.mu.Lock()
		content, ok := m.downloads[source]
		truncate, doTruncate := m.truncateAt[source]
		m.mu.Unlock()

		if !ok {
			writeReply(w, "Download", 1, nil, rspCodeNotExist, "no such file")
			return
		}

		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Length", fmt.Sprint(len(content)))
		if doTruncate && truncate < len(content) {
			// Write fewer bytes than advertised, then cut the
			// connection so the client sees a read error.
			_, _ = w.Write(content[:truncate])
			if f, okf := w.(http.Flusher); okf {
				f.Flush()
			}
			panic(http.ErrAbortHandler)
		}
		_, _ = w.Write(content)
	})
}

func writeReply(w http.ResponseWriter, cmd string, code int, value map[string]any, rspCode int, detail string) {
	reply := map[string]any{"cmd": cmd, "code": code}
	if value != nil {
		reply["value"] = value
	}
	if code != 0 {
		reply["error"] = map[string]any{"rspCode": rspCode, "detail": detail}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode([]any{reply})
}
