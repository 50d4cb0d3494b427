// SPDX-License-Identifier: MIT

package reolink

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/ManuGH/reolinkctl/internal/log"
	"github.com/ManuGH/reolinkctl/internal/vod"
)

// apiTime is the camera's exploded timestamp representation.
type apiTime struct {
	Year int `json:"year"`
	Mon  int `json:"mon"`
	Day  int `json:"day"`
	Hour int `json:"hour"`
	Min  int `json:"min"`
	Sec  int `json:"sec"`
}

func toAPITime(t time.Time) apiTime {
	return apiTime{
		Year: t.Year(), Mon: int(t.Month()), Day: t.Day(),
		Hour: t.Hour(), Min: t.Minute(), Sec: t.Second(),
	}
}

func (t apiTime) Time(loc *time.Location) time.Time {
	return time.Date(t.Year, time.Month(t.Mon), t.Day, t.Hour, t.Min, t.Sec, 0, loc)
}

// searchFile is one recording entry in a Search reply. Only some
// firmware generations fill the trigger bitmask; zero there means the
// triggers must be re-derived from the name (vod.Classify does that).
type searchFile struct {
	Name      string  `json:"name"`
	Size      int64   `json:"size"`
	Type      string  `json:"type"`
	StartTime apiTime `json:"StartTime"`
	EndTime   apiTime `json:"EndTime"`
	Triggers  int     `json:"aiTypePeaEx,omitempty"`
}

// Wire bits of the aiTypePeaEx field. These are the camera's layout,
// not ours; decodeWireTriggers is the only place the two meet.
const (
	wireTimer   = 1 << 0
	wireMotion  = 1 << 1
	wireVehicle = 1 << 2
	wirePet     = 1 << 3
	wirePerson  = 1 << 4
)

// decodeWireTriggers maps the wire bitmask onto the internal trigger
// set. Bits the tool does not know are dropped rather than failing the
// search; classification is best-effort metadata.
func decodeWireTriggers(v int) vod.Triggers {
	var ts vod.Triggers
	if v&wireTimer != 0 {
		ts |= vod.TriggerTimer
	}
	if v&wireMotion != 0 {
		ts |= vod.TriggerMotion
	}
	if v&wireVehicle != 0 {
		ts |= vod.TriggerVehicle
	}
	if v&wirePet != 0 {
		ts |= vod.TriggerPet
	}
	if v&wirePerson != 0 {
		ts |= vod.TriggerPerson
	}
	return ts
}

// Search lists the recordings overlapping [start, end] on one channel
// for the given stream quality ("main" or "sub").
func (c *Client) Search(ctx context.Context, channel int, start, end time.Time, stream string) ([]vod.Recording, error) {
	param := map[string]any{
		"Search": map[string]any{
			"channel":    channel,
			"onlyStatus": 0,
			"streamType": stream,
			"StartTime":  toAPITime(start),
			"EndTime":    toAPITime(end),
		},
	}

	var value struct {
		SearchResult struct {
			Channel int          `json:"channel"`
			File    []searchFile `json:"File"`
		} `json:"SearchResult"`
	}
	if err := c.call(ctx, "Search", param, &value); err != nil {
		return nil, err
	}

	loc := start.Location()
	recs := make([]vod.Recording, 0, len(value.SearchResult.File))
	for _, f := range value.SearchResult.File {
		recs = append(recs, vod.Recording{
			StartTime:  f.StartTime.Time(loc),
			EndTime:    f.EndTime.Time(loc),
			SourceName: f.Name,
			Size:       f.Size,
			Reported:   decodeWireTriggers(f.Triggers),
		})
	}

	lg := log.WithComponentFromContext(ctx, "reolink")
	lg.Debug().
		Int("channel", channel).
		Str("stream", stream).
		Int("count", len(recs)).
		Msg("search completed")
	return recs, nil
}

// Stream is an open byte stream for one recording. The caller owns the
// body and must close it on every path.
type Stream struct {
	ContentLength int64
	Body          io.ReadCloser
}

// Download opens the byte stream for a recording by its camera-side
// source name. The reported content length is the total expected size.
func (c *Client) Download(ctx context.Context, sourceName string) (*Stream, error) {
	params := url.Values{}
	params.Set("cmd", "Download")
	params.Set("source", sourceName)
	params.Set("output", sourceName)

	res, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	// The camera answers a failed download request with HTTP 200 and a
	// JSON error envelope instead of bytes.
	if strings.HasPrefix(res.Header.Get("Content-Type"), "application/json") {
		defer res.Body.Close()
		var replies []commandResponse
		if err := json.NewDecoder(res.Body).Decode(&replies); err != nil || len(replies) == 0 {
			return nil, &APIError{Sentinel: ErrBadResponse, Operation: "Download", Err: err}
		}
		apiErr := &APIError{Sentinel: ErrCameraError, Operation: "Download"}
		if replies[0].Error != nil {
			apiErr.Sentinel = sentinelForRspCode(replies[0].Error.RspCode)
			apiErr.RspCode = replies[0].Error.RspCode
			apiErr.Detail = replies[0].Error.Detail
		}
		return nil, apiErr
	}

	return &Stream{ContentLength: res.ContentLength, Body: res.Body}, nil
}
