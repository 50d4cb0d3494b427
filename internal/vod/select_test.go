// SPDX-License-Identifier: MIT

package vod

import (
	"testing"
	"time"
)

func rec(start, end string, ts Triggers) Recording {
	st, _ := time.Parse("2006-01-02 15:04:05", start)
	en, _ := time.Parse("2006-01-02 15:04:05", end)
	return Recording{StartTime: st, EndTime: en, Reported: ts}
}

func TestBuildFilter(t *testing.T) {
	tests := []struct {
		name                         string
		person, vehicle, pet, motion bool
		all                          bool
		wantAll                      bool
		wantMask                     Triggers
	}{
		{name: "all overrides selections", person: true, all: true, wantAll: true},
		{name: "no selection means all", wantAll: true},
		{name: "single selection", person: true, wantMask: TriggerPerson},
		{
			name: "combined selections", vehicle: true, motion: true,
			wantMask: TriggerVehicle | TriggerMotion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := BuildFilter(tt.person, tt.vehicle, tt.pet, tt.motion, tt.all)
			if f.MatchAll() != tt.wantAll {
				t.Errorf("MatchAll = %v, want %v", f.MatchAll(), tt.wantAll)
			}
			if !tt.wantAll && f.Mask() != tt.wantMask {
				t.Errorf("Mask = %v, want %v", f.Mask(), tt.wantMask)
			}
		})
	}
}

func TestFilterMatches(t *testing.T) {
	f := BuildFilter(true, false, false, false, false)
	if !f.Matches(TriggerPerson | TriggerMotion) {
		t.Error("person filter must match person|motion")
	}
	if f.Matches(TriggerMotion) {
		t.Error("person filter must not match motion-only")
	}
	if f.Matches(TriggerNone) {
		t.Error("person filter must not match an unclassified recording")
	}

	all := BuildFilter(false, false, false, false, true)
	if !all.Matches(TriggerNone) {
		t.Error("match-all filter must admit TriggerNone")
	}
}

func TestFilterRecordings_PreservesOrder(t *testing.T) {
	recs := []Recording{
		rec("2024-05-01 08:00:00", "2024-05-01 08:05:00", TriggerPerson),
		rec("2024-05-01 09:00:00", "2024-05-01 09:05:00", TriggerMotion),
		rec("2024-05-01 10:00:00", "2024-05-01 10:05:00", TriggerPerson|TriggerMotion),
	}

	got := FilterRecordings(recs, BuildFilter(true, false, false, false, false))
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if !got[0].StartTime.Equal(recs[0].StartTime) || !got[1].StartTime.Equal(recs[2].StartTime) {
		t.Errorf("order not preserved: %v", got)
	}

	// Match-all passes everything through untouched.
	if all := FilterRecordings(recs, Filter{}); len(all) != 3 {
		t.Errorf("match-all len = %d, want 3", len(all))
	}
}

func TestLatest(t *testing.T) {
	recs := []Recording{
		rec("2024-05-01 08:00:00", "2024-05-01 08:05:00", TriggerPerson),
		rec("2024-05-01 12:00:00", "2024-05-01 12:05:00", TriggerPerson),
		rec("2024-05-01 10:00:00", "2024-05-01 10:05:00", TriggerPerson),
	}

	got := Latest(recs, 2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].StartTime.Hour() != 12 || got[1].StartTime.Hour() != 10 {
		t.Errorf("want 12:00 then 10:00, got %v then %v", got[0].StartTime, got[1].StartTime)
	}

	// Input must stay untouched.
	if recs[0].StartTime.Hour() != 8 {
		t.Error("Latest mutated its input")
	}

	if got := Latest(recs, 0); len(got) != 0 {
		t.Errorf("n=0 len = %d, want 0", len(got))
	}
	if got := Latest(recs, -1); len(got) != 0 {
		t.Errorf("n=-1 len = %d, want 0", len(got))
	}
	if got := Latest(recs, 10); len(got) != 3 {
		t.Errorf("n>len len = %d, want 3", len(got))
	}
}

func TestOutputFilename(t *testing.T) {
	r := rec("2024-05-01 10:30:00", "2024-05-01 10:45:00", TriggerPerson)
	if got := OutputFilename(r); got != "person_103000_104500.mp4" {
		t.Errorf("OutputFilename = %q", got)
	}

	unclassified := rec("2024-05-01 10:30:00", "2024-05-01 10:45:00", TriggerNone)
	if got := OutputFilename(unclassified); got != "recording_103000_104500.mp4" {
		t.Errorf("OutputFilename = %q", got)
	}
}

func TestEndToEndSelection(t *testing.T) {
	recs := []Recording{
		rec("2024-05-01 08:00:00", "2024-05-01 08:05:00", TriggerPerson),
		rec("2024-05-01 09:00:00", "2024-05-01 09:05:00", TriggerMotion),
		rec("2024-05-01 10:00:00", "2024-05-01 10:05:00", TriggerPerson|TriggerMotion),
	}

	filtered := FilterRecordings(recs, BuildFilter(true, false, false, false, false))
	limited := Latest(filtered, 1)
	if len(limited) != 1 {
		t.Fatalf("len = %d, want 1", len(limited))
	}
	if limited[0].StartTime.Hour() != 10 {
		t.Errorf("want the 10:00 recording, got %v", limited[0].StartTime)
	}
}
