// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func newTestPrinter(jsonMode bool) (*Printer, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	return &Printer{Out: out, Err: errBuf, JSON: jsonMode}, out, errBuf
}

func TestResult_Aligned(t *testing.T) {
	p, out, _ := newTestPrinter(false)
	p.Result([]Field{
		{Key: "model", Value: "RLC-810A"},
		{Key: "firmware", Value: "v3.1.0.764"},
	})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	// Values must start at the same column.
	if strings.Index(lines[0], "RLC-810A") != strings.Index(lines[1], "v3.1.0.764") {
		t.Errorf("values not aligned:\n%s", out.String())
	}
}

func TestResult_JSON(t *testing.T) {
	p, out, _ := newTestPrinter(true)
	p.Result([]Field{{Key: "model", Value: "RLC-810A"}})

	var obj map[string]any
	if err := json.Unmarshal(out.Bytes(), &obj); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if obj["model"] != "RLC-810A" {
		t.Errorf("model = %v", obj["model"])
	}
}

func TestResult_EmptyPrintsNothing(t *testing.T) {
	p, out, _ := newTestPrinter(false)
	p.Result(nil)
	if out.Len() != 0 {
		t.Errorf("output = %q, want empty", out.String())
	}
}

func TestTable(t *testing.T) {
	p, out, _ := newTestPrinter(false)
	p.Table([]string{"id", "name"}, [][]string{
		{"1", "front door"},
		{"2", "yard"},
	})

	got := out.String()
	if !strings.Contains(got, "id") || !strings.Contains(got, "front door") {
		t.Errorf("table missing content:\n%s", got)
	}
	// Header separator row present.
	if !strings.Contains(got, "--") {
		t.Errorf("missing separator:\n%s", got)
	}
}

func TestTable_JSON(t *testing.T) {
	p, out, _ := newTestPrinter(true)
	p.Table([]string{"id", "name"}, [][]string{{"1", "front door"}})

	var rows []map[string]string
	if err := json.Unmarshal(out.Bytes(), &rows); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(rows) != 1 || rows[0]["name"] != "front door" {
		t.Errorf("rows = %v", rows)
	}
}

func TestErrorGoesToStderr(t *testing.T) {
	p, out, errBuf := newTestPrinter(false)
	p.Error("boom")
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
	if got := errBuf.String(); got != "Error: boom\n" {
		t.Errorf("stderr = %q", got)
	}
}

func TestLineSuppressedInJSONMode(t *testing.T) {
	p, out, _ := newTestPrinter(true)
	p.Line("searching %d recordings", 3)
	if out.Len() != 0 {
		t.Errorf("output = %q, want empty", out.String())
	}
}
