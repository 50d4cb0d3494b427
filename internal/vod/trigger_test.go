// SPDX-License-Identifier: MIT

package vod

import (
	"testing"
)

func TestParseTriggersFromName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Triggers
	}{
		{
			name: "new layout person and motion",
			in:   "Mp4Record/2024-05-01/RecM01_DST20240501_103000_104500_6D28C08000_1A2B3C.mp4",
			want: TriggerPerson | TriggerMotion,
		},
		{
			name: "new layout motion only",
			in:   "Mp4Record/2024-05-01/RecM01_DST20240501_103000_104500_6D28808000_1A2B3C.mp4",
			want: TriggerMotion,
		},
		{
			name: "new layout no bits",
			in:   "Mp4Record/2024-05-01/RecM01_DST20240501_103000_104500_6D28800000_1A2B3C.mp4",
			want: TriggerNone,
		},
		{
			name: "old seven digit layout vehicle",
			in:   "Rec_DST20240501_103000_104500_6D28900_2F.mp4",
			want: TriggerVehicle,
		},
		{
			name: "timer bit",
			in:   "RecM01_DST20240501_103000_104500_6D28010000_1A2B3C.mp4",
			want: TriggerTimer,
		},
		{
			name: "pet bit",
			in:   "RecM01_DST20240501_103000_104500_6D28880000_1A2B3C.mp4",
			want: TriggerPet,
		},
		{
			name: "too few underscore parts",
			in:   "RecM01_20240501_6D28C08000.mp4",
			want: TriggerNone,
		},
		{
			name: "flags field too short",
			in:   "RecM01_DST20240501_103000_104500_6D28_1A.mp4",
			want: TriggerNone,
		},
		{
			name: "non hex flags field",
			in:   "RecM01_DST20240501_103000_104500_6D28ZZZ000_1A.mp4",
			want: TriggerNone,
		},
		{
			name: "empty string",
			in:   "",
			want: TriggerNone,
		},
		{
			name: "no directory no extension",
			in:   "RecM01_DST20240501_103000_104500_6D28C08000_1A2B3C",
			want: TriggerPerson | TriggerMotion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseTriggersFromName(tt.in); got != tt.want {
				t.Errorf("ParseTriggersFromName(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassify_ReportedWins(t *testing.T) {
	// A non-zero reported set must be trusted even when the filename
	// would decode to something else.
	r := Recording{
		SourceName: "RecM01_DST20240501_103000_104500_6D28808000_1A2B3C.mp4", // motion
		Reported:   TriggerPerson,
	}
	if got := Classify(r); got != TriggerPerson {
		t.Errorf("Classify = %v, want person", got)
	}
}

func TestClassify_FallsBackToFilename(t *testing.T) {
	r := Recording{
		SourceName: "RecM01_DST20240501_103000_104500_6D28C08000_1A2B3C.mp4",
		Reported:   TriggerNone,
	}
	if got := Classify(r); got != TriggerPerson|TriggerMotion {
		t.Errorf("Classify = %v, want person|motion", got)
	}
}

func TestPrimaryName(t *testing.T) {
	tests := []struct {
		ts   Triggers
		want string
	}{
		{TriggerPerson | TriggerMotion, "person"},
		{TriggerVehicle | TriggerMotion, "vehicle"},
		{TriggerPet, "pet"},
		{TriggerMotion, "motion"},
		{TriggerTimer, "recording"},
		{TriggerNone, "recording"},
	}
	for _, tt := range tests {
		if got := tt.ts.PrimaryName(); got != tt.want {
			t.Errorf("PrimaryName(%v) = %q, want %q", tt.ts, got, tt.want)
		}
	}
}

func TestTriggersString(t *testing.T) {
	if got := (TriggerPerson | TriggerMotion).String(); got != "person,motion" {
		t.Errorf("String = %q", got)
	}
	if got := TriggerNone.String(); got != "none" {
		t.Errorf("String = %q", got)
	}
	if got := TriggerTimer.String(); got != "timer" {
		t.Errorf("String = %q", got)
	}
}
