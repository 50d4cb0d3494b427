// SPDX-License-Identifier: MIT

package vod

import "time"

// Recording is one stored clip as reported by the camera. SourceName is
// the camera-assigned identifier used to request the byte stream; it is
// not a local filesystem path. Reported may legitimately be TriggerNone,
// meaning the firmware did not supply trigger data rather than "nothing
// detected".
type Recording struct {
	StartTime  time.Time
	EndTime    time.Time
	SourceName string
	Size       int64
	Reported   Triggers
}

// Duration is the clip length derived from the reported time span.
func (r Recording) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// Classify returns the triggers for a recording, trusting the upstream
// value when present and falling back to the filename parser otherwise.
// One firmware generation never populates the reported set, so a zero
// value there is ambiguous and must be re-derived from the name.
func Classify(r Recording) Triggers {
	if r.Reported != TriggerNone {
		return r.Reported
	}
	return ParseTriggersFromName(r.SourceName)
}

// OutputFilename derives the deterministic local filename for a
// recording: "{primary}_{HHMMSS}_{HHMMSS}.mp4". The calendar date is
// carried by the destination directory, not the name.
func OutputFilename(r Recording) string {
	return Classify(r).PrimaryName() +
		"_" + r.StartTime.Format("150405") +
		"_" + r.EndTime.Format("150405") + ".mp4"
}
