// SPDX-License-Identifier: MIT

package vod

import "sort"

// Filter is a trigger match mask. The zero value matches everything;
// see BuildFilter.
type Filter struct {
	mask Triggers
}

// BuildFilter converts CLI trigger selections into a match filter.
// all overrides the individual flags. Selecting nothing also yields the
// match-everything filter: "no selection" and an explicit --all are
// indistinguishable downstream, which is the documented default posture
// rather than an accident. Timer has no selection flag and can never be
// requested explicitly.
func BuildFilter(person, vehicle, pet, motion, all bool) Filter {
	if all {
		return Filter{}
	}
	var mask Triggers
	if person {
		mask |= TriggerPerson
	}
	if vehicle {
		mask |= TriggerVehicle
	}
	if pet {
		mask |= TriggerPet
	}
	if motion {
		mask |= TriggerMotion
	}
	return Filter{mask: mask}
}

// MatchAll reports whether the filter admits every recording.
func (f Filter) MatchAll() bool {
	return f.mask == TriggerNone
}

// Mask exposes the raw trigger mask, TriggerNone when unfiltered.
func (f Filter) Mask() Triggers {
	return f.mask
}

// Matches tests a trigger set against the mask.
func (f Filter) Matches(ts Triggers) bool {
	return f.MatchAll() || ts&f.mask != 0
}

// FilterRecordings keeps the recordings whose classified triggers
// intersect the filter mask, preserving input order. A match-all filter
// returns the input as-is.
func FilterRecordings(recs []Recording, f Filter) []Recording {
	if f.MatchAll() {
		return recs
	}
	var out []Recording
	for _, r := range recs {
		if f.Matches(Classify(r)) {
			out = append(out, r)
		}
	}
	return out
}

// Latest sorts by start time descending and keeps the first n entries.
// The CLI boundary validates the flag; here n <= 0 just yields an empty
// slice so the function cannot crash on unchecked input.
func Latest(recs []Recording, n int) []Recording {
	if n <= 0 {
		return nil
	}
	sorted := make([]Recording, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.After(sorted[j].StartTime)
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
