// SPDX-License-Identifier: MIT

package timeutil

import (
	"testing"
	"time"
)

var now = time.Date(2024, 5, 10, 14, 30, 0, 0, time.Local)

func TestParseSince(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "30m", want: 30 * time.Minute},
		{in: "2h", want: 2 * time.Hour},
		{in: "3d", want: 72 * time.Hour},
		{in: "0m", wantErr: true},
		{in: "-5m", wantErr: true},
		{in: "5w", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
		{in: "2h30m", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			start, end, err := ParseSince(tt.in, now)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSince(%q): expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSince(%q): %v", tt.in, err)
			}
			if !end.Equal(now) {
				t.Errorf("end = %v, want now", end)
			}
			if got := end.Sub(start); got != tt.want {
				t.Errorf("window = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDateRange_ExplicitDate(t *testing.T) {
	start, end, err := ParseDateRange("2024-05-01", "", "", now)
	if err != nil {
		t.Fatalf("ParseDateRange: %v", err)
	}
	if start.Format("2006-01-02 15:04:05") != "2024-05-01 00:00:00" {
		t.Errorf("start = %v", start)
	}
	if end.Format("2006-01-02 15:04:05") != "2024-05-01 23:59:59" {
		t.Errorf("end = %v", end)
	}
}

func TestParseDateRange_Keywords(t *testing.T) {
	start, _, err := ParseDateRange("today", "", "", now)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if start.Day() != 10 {
		t.Errorf("today start = %v", start)
	}

	start, _, err = ParseDateRange("yesterday", "", "", now)
	if err != nil {
		t.Fatalf("yesterday: %v", err)
	}
	if start.Day() != 9 {
		t.Errorf("yesterday start = %v", start)
	}
}

func TestParseDateRange_FromTo(t *testing.T) {
	start, end, err := ParseDateRange("", "2024-04-01", "2024-04-03", now)
	if err != nil {
		t.Fatalf("ParseDateRange: %v", err)
	}
	if start.Day() != 1 || end.Day() != 3 || end.Hour() != 23 {
		t.Errorf("window = %v .. %v", start, end)
	}
}

func TestParseDateRange_DefaultToday(t *testing.T) {
	start, end, err := ParseDateRange("", "", "", now)
	if err != nil {
		t.Fatalf("ParseDateRange: %v", err)
	}
	if start.Day() != 10 || end.Day() != 10 {
		t.Errorf("window = %v .. %v", start, end)
	}
}

func TestParseDateRange_Invalid(t *testing.T) {
	if _, _, err := ParseDateRange("01.05.2024", "", "", now); err == nil {
		t.Error("expected error for malformed date")
	}
	if _, _, err := ParseDateRange("", "2024-04-01", "bad", now); err == nil {
		t.Error("expected error for malformed --to")
	}
}
