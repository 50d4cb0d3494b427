// SPDX-License-Identifier: MIT

// Package reolink implements a session-oriented client for the local
// HTTP CGI API of Reolink cameras and NVRs. Every command travels in
// the same envelope: a one-element JSON array POSTed to
// /cgi-bin/api.cgi?cmd=<Name>&token=<token>, answered by a one-element
// array carrying either a value or an error payload.
package reolink

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ManuGH/reolinkctl/internal/config"
	"github.com/ManuGH/reolinkctl/internal/log"
)

const defaultTimeout = 60 * time.Second

// Client is one authenticated session against a camera. It is not safe
// for concurrent use; the device serves one caller at a time anyway.
type Client struct {
	base     string
	user     string
	password string
	token    string
	http     *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New builds an unauthenticated client for the given host. The host may
// be a bare IP/hostname or a full http:// base URL.
func New(host, user, password string, opts ...Option) *Client {
	base := host
	if len(base) < 7 || (base[:7] != "http://" && (len(base) < 8 || base[:8] != "https://")) {
		base = "http://" + base
	}
	c := &Client{
		base:     base,
		user:     user,
		password: password,
		http:     &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// commandRequest is the envelope for one API command.
type commandRequest struct {
	Cmd    string `json:"cmd"`
	Action int    `json:"action"`
	Param  any    `json:"param,omitempty"`
}

// commandResponse is the envelope for one API reply.
type commandResponse struct {
	Cmd   string          `json:"cmd"`
	Code  int             `json:"code"`
	Value json.RawMessage `json:"value,omitempty"`
	Error *struct {
		RspCode int    `json:"rspCode"`
		Detail  string `json:"detail"`
	} `json:"error,omitempty"`
}

// call executes a single command and decodes its value into out, which
// may be nil for commands whose reply carries no payload of interest.
func (c *Client) call(ctx context.Context, cmd string, param, out any) error {
	body, err := json.Marshal([]commandRequest{{Cmd: cmd, Action: 0, Param: param}})
	if err != nil {
		return fmt.Errorf("encode %s request: %w", cmd, err)
	}

	q := url.Values{}
	q.Set("cmd", cmd)
	if c.token != "" {
		q.Set("token", c.token)
	}
	endpoint := c.base + "/cgi-bin/api.cgi?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return &APIError{Sentinel: ErrUnreachable, Operation: cmd, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return c.transportError(cmd, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return &APIError{Sentinel: ErrCameraError, Operation: cmd, Status: res.StatusCode}
	}

	var replies []commandResponse
	if err := json.NewDecoder(res.Body).Decode(&replies); err != nil {
		return &APIError{Sentinel: ErrBadResponse, Operation: cmd, Err: err}
	}
	if len(replies) == 0 {
		return &APIError{Sentinel: ErrBadResponse, Operation: cmd, Detail: "empty reply array"}
	}

	reply := replies[0]
	if reply.Code != 0 || reply.Error != nil {
		apiErr := &APIError{Sentinel: ErrCameraError, Operation: cmd}
		if reply.Error != nil {
			apiErr.Sentinel = sentinelForRspCode(reply.Error.RspCode)
			apiErr.RspCode = reply.Error.RspCode
			apiErr.Detail = reply.Error.Detail
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(reply.Value, out); err != nil {
			return &APIError{Sentinel: ErrBadResponse, Operation: cmd, Err: err}
		}
	}
	return nil
}

func (c *Client) transportError(cmd string, err error) error {
	sentinel := ErrUnreachable
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		sentinel = ErrTimeout
	}
	return &APIError{Sentinel: sentinel, Operation: cmd, Err: err}
}

// Login opens a session and stores the lease token for later commands.
func (c *Client) Login(ctx context.Context) error {
	var value struct {
		Token struct {
			Name      string `json:"name"`
			LeaseTime int    `json:"leaseTime"`
		} `json:"Token"`
	}
	param := map[string]any{
		"User": map[string]string{
			"Version":  "0",
			"userName": c.user,
			"password": c.password,
		},
	}
	if err := c.call(ctx, "Login", param, &value); err != nil {
		return err
	}
	if value.Token.Name == "" {
		return &APIError{Sentinel: ErrBadResponse, Operation: "Login", Detail: "no token in reply"}
	}
	c.token = value.Token.Name

	lg := log.WithComponentFromContext(ctx, "reolink")
	lg.Debug().
		Int("lease_seconds", value.Token.LeaseTime).
		Msg("session opened")
	return nil
}

// Logout releases the session token. Safe to call without one.
func (c *Client) Logout(ctx context.Context) error {
	if c.token == "" {
		return nil
	}
	err := c.call(ctx, "Logout", nil, nil)
	c.token = ""
	return err
}

// WithSession connects, runs fn against the live session and logs out
// on every exit path. A connect failure is fatal for the invocation; a
// logout failure is logged but does not mask fn's result.
func WithSession(ctx context.Context, conn config.Connection, fn func(*Client) error, opts ...Option) error {
	c := New(conn.Host, conn.User, conn.Password, opts...)
	if err := c.Login(ctx); err != nil {
		return fmt.Errorf("connect to %s: %w", conn.Host, err)
	}
	defer func() {
		logoutCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		if err := c.Logout(logoutCtx); err != nil {
			lg := log.WithComponent("reolink")
			lg.Warn().Err(err).Msg("logout failed")
		}
	}()
	return fn(c)
}

// get performs a raw GET against the CGI endpoint with the session
// token attached. Used by the binary endpoints (snapshot, download).
func (c *Client) get(ctx context.Context, params url.Values) (*http.Response, error) {
	if c.token == "" {
		return nil, &APIError{Sentinel: ErrNotLoggedIn, Operation: params.Get("cmd")}
	}
	params.Set("token", c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/cgi-bin/api.cgi?"+params.Encode(), nil)
	if err != nil {
		return nil, &APIError{Sentinel: ErrUnreachable, Operation: params.Get("cmd"), Err: err}
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, c.transportError(params.Get("cmd"), err)
	}
	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, &APIError{Sentinel: ErrCameraError, Operation: params.Get("cmd"), Status: res.StatusCode}
	}
	return res, nil
}

// channelParam is the minimal param body shared by per-channel getters.
type channelParam struct {
	Channel int `json:"channel"`
}

func itoa(v int) string { return strconv.Itoa(v) }
