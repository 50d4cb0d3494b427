// SPDX-License-Identifier: MIT

// Package output renders command results as aligned text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Field is one key/value pair of a result. Order is significant, which
// is why results are slices instead of maps.
type Field struct {
	Key   string
	Value any
}

// Printer writes command results to Out and diagnostics to Err,
// switching between human-readable and JSON rendering.
type Printer struct {
	Out  io.Writer
	Err  io.Writer
	JSON bool
}

// New returns a Printer bound to stdout/stderr.
func New(jsonMode bool) *Printer {
	return &Printer{Out: os.Stdout, Err: os.Stderr, JSON: jsonMode}
}

// Result prints an ordered set of key/value pairs, aligned on the
// longest key, or as a JSON object in JSON mode.
func (p *Printer) Result(fields []Field) {
	if len(fields) == 0 {
		return
	}
	if p.JSON {
		obj := make(map[string]any, len(fields))
		for _, f := range fields {
			obj[f.Key] = f.Value
		}
		p.writeJSON(p.Out, obj)
		return
	}

	maxKey := 0
	for _, f := range fields {
		if len(f.Key) > maxKey {
			maxKey = len(f.Key)
		}
	}
	for _, f := range fields {
		fmt.Fprintf(p.Out, "  %-*s  %v\n", maxKey, f.Key, f.Value)
	}
}

// Table prints rows under a header, each column padded to its widest
// cell, or as a JSON array of objects in JSON mode.
func (p *Printer) Table(header []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	if p.JSON {
		objs := make([]map[string]string, 0, len(rows))
		for _, row := range rows {
			obj := make(map[string]string, len(header))
			for i, h := range header {
				if i < len(row) {
					obj[h] = row[i]
				}
			}
			objs = append(objs, obj)
		}
		p.writeJSON(p.Out, objs)
		return
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range header {
		if i > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%-*s", widths[i], h)
	}
	fmt.Fprintln(p.Out, b.String())

	b.Reset()
	for i := range header {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(strings.Repeat("-", widths[i]))
	}
	fmt.Fprintln(p.Out, b.String())

	for _, row := range rows {
		b.Reset()
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%-*s", widths[i], cell)
		}
		fmt.Fprintln(p.Out, b.String())
	}
}

// Success prints a confirmation message.
func (p *Printer) Success(msg string) {
	if p.JSON {
		p.writeJSON(p.Out, map[string]string{"status": "ok", "message": msg})
		return
	}
	fmt.Fprintln(p.Out, msg)
}

// Error prints an error message to Err.
func (p *Printer) Error(msg string) {
	if p.JSON {
		p.writeJSON(p.Err, map[string]string{"error": msg})
		return
	}
	fmt.Fprintf(p.Err, "Error: %s\n", msg)
}

// Line prints a plain informational line, suppressed in JSON mode so
// machine output stays parseable.
func (p *Printer) Line(format string, args ...any) {
	if p.JSON {
		return
	}
	fmt.Fprintf(p.Out, format+"\n", args...)
}

func (p *Printer) writeJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(p.Err, "Error: encode output: %v\n", err)
	}
}
