// SPDX-License-Identifier: MIT

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWindow(t *testing.T) {
	now := time.Date(2024, 5, 17, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name      string
		flags     downloadFlags
		wantStart time.Time
		wantEnd   time.Time
		wantErr   string
	}{
		{
			name:      "default is today",
			flags:     downloadFlags{stream: "main"},
			wantStart: time.Date(2024, 5, 17, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2024, 5, 17, 23, 59, 59, 0, time.Local),
		},
		{
			name:      "since window",
			flags:     downloadFlags{stream: "main", since: "2h"},
			wantStart: now.Add(-2 * time.Hour),
			wantEnd:   now,
		},
		{
			name:    "since rejects zero",
			flags:   downloadFlags{stream: "main", since: "0h"},
			wantErr: "must be > 0",
		},
		{
			name:    "since rejects bad unit",
			flags:   downloadFlags{stream: "main", since: "3w"},
			wantErr: "invalid --since",
		},
		{
			name:    "since excludes date",
			flags:   downloadFlags{stream: "main", since: "2h", date: "today"},
			wantErr: "cannot be combined",
		},
		{
			name:    "from without to",
			flags:   downloadFlags{stream: "main", from: "2024-05-01"},
			wantErr: "given together",
		},
		{
			name:    "to without from",
			flags:   downloadFlags{stream: "main", to: "2024-05-02"},
			wantErr: "given together",
		},
		{
			name:      "from and to span",
			flags:     downloadFlags{stream: "main", from: "2024-05-01", to: "2024-05-03"},
			wantStart: time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2024, 5, 3, 23, 59, 59, 0, time.Local),
		},
		{
			name:    "bad stream",
			flags:   downloadFlags{stream: "best"},
			wantErr: "invalid --stream",
		},
		{
			name:    "negative latest",
			flags:   downloadFlags{stream: "sub", latest: -1},
			wantErr: "--latest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := resolveWindow(tt.flags, now)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestParseOnOff(t *testing.T) {
	on, err := parseOnOff("on")
	require.NoError(t, err)
	assert.True(t, on)

	off, err := parseOnOff("off")
	require.NoError(t, err)
	assert.False(t, off)

	_, err = parseOnOff("enable")
	assert.Error(t, err)
}
