// SPDX-License-Identifier: MIT

// Package vod classifies and selects camera recordings by the AI
// detection events that triggered them.
package vod

import (
	"strings"
)

// Triggers is a bit set of detection events attached to one recording.
// The zero value TriggerNone means "no trigger information", which a
// caller cannot distinguish from "nothing detected"; see Classify.
type Triggers uint8

const (
	TriggerNone    Triggers = 0
	TriggerTimer   Triggers = 1 << iota
	TriggerMotion
	TriggerVehicle
	TriggerPet
	TriggerPerson
)

// triggerNames lists the selectable triggers in primary-name priority
// order. Timer is deliberately absent: it cannot be requested from the
// CLI and never wins the primary name.
var triggerNames = []struct {
	bit  Triggers
	name string
}{
	{TriggerPerson, "person"},
	{TriggerVehicle, "vehicle"},
	{TriggerPet, "pet"},
	{TriggerMotion, "motion"},
}

// Has reports whether all bits of t are set in ts.
func (ts Triggers) Has(t Triggers) bool {
	return ts&t != 0
}

// String renders the set as a comma-separated list, "none" when empty.
func (ts Triggers) String() string {
	if ts == TriggerNone {
		return "none"
	}
	var parts []string
	for _, tn := range triggerNames {
		if ts.Has(tn.bit) {
			parts = append(parts, tn.name)
		}
	}
	if ts.Has(TriggerTimer) {
		parts = append(parts, "timer")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// PrimaryName returns the name of the first trigger bit set, checked in
// the fixed priority order person, vehicle, pet, motion. Timer-only and
// unclassified sets get the literal "recording".
func (ts Triggers) PrimaryName() string {
	for _, tn := range triggerNames {
		if ts.Has(tn.bit) {
			return tn.name
		}
	}
	return "recording"
}

// ParseTriggersFromName decodes trigger bits from a recording's
// camera-side filename. Two firmware generations are in the wild: an
// older 7-hex-digit flags field and a newer 10-hex-digit one. Both put
// the trigger nibbles at the same offset after a 4-digit device prefix:
//
//	nibble 4: bit 2 = person, bit 0 = vehicle
//	nibble 5: bit 3 = pet,    bit 0 = timer
//	nibble 6: bit 3 = motion
//
// The layout is inferred from sample filenames, not a published format.
// Anything that does not parse degrades to TriggerNone; classification
// is best-effort metadata and must never fail a download run.
func ParseTriggersFromName(name string) Triggers {
	base := name
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}

	parts := strings.Split(base, "_")
	if len(parts) < 6 {
		return TriggerNone
	}

	flags := parts[len(parts)-2]
	if len(flags) < 7 {
		return TriggerNone
	}

	nibT, okT := hexNibble(flags[4])
	nibU, okU := hexNibble(flags[5])
	nibR, okR := hexNibble(flags[6])
	if !okT || !okU || !okR {
		return TriggerNone
	}

	var ts Triggers
	if nibT&0x4 != 0 {
		ts |= TriggerPerson
	}
	if nibT&0x1 != 0 {
		ts |= TriggerVehicle
	}
	if nibU&0x8 != 0 {
		ts |= TriggerPet
	}
	if nibU&0x1 != 0 {
		ts |= TriggerTimer
	}
	if nibR&0x8 != 0 {
		ts |= TriggerMotion
	}
	return ts
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
