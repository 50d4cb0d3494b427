// SPDX-License-Identifier: MIT

package reolink

import "context"

// PTZ operation names understood by PtzCtrl.
const (
	PtzLeft        = "Left"
	PtzRight       = "Right"
	PtzUp          = "Up"
	PtzDown        = "Down"
	PtzStop        = "Stop"
	PtzZoomIn      = "ZoomInc"
	PtzZoomOut     = "ZoomDec"
	PtzToPreset    = "ToPos"
	PtzStartPatrol = "StartPatrol"
	PtzStopPatrol  = "StopPatrol"
)

// PtzCtrl issues a movement operation. Speed is ignored by the device
// for operations that have no speed component (Stop, patrol control).
func (c *Client) PtzCtrl(ctx context.Context, channel int, op string, speed int) error {
	param := map[string]any{
		"channel": channel,
		"op":      op,
	}
	if speed > 0 {
		param["speed"] = speed
	}
	return c.call(ctx, "PtzCtrl", param, nil)
}

// PtzPreset is one stored camera position.
type PtzPreset struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Enable int    `json:"enable"`
}

// GetPtzPresets lists stored presets for a channel.
func (c *Client) GetPtzPresets(ctx context.Context, channel int) ([]PtzPreset, error) {
	var value struct {
		PtzPreset []PtzPreset `json:"PtzPreset"`
	}
	if err := c.call(ctx, "GetPtzPreset", channelParam{Channel: channel}, &value); err != nil {
		return nil, err
	}
	// The device pads the list with disabled slots; keep only real ones.
	out := value.PtzPreset[:0]
	for _, p := range value.PtzPreset {
		if p.Enable != 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

// PtzGotoPreset moves the camera to a stored preset.
func (c *Client) PtzGotoPreset(ctx context.Context, channel, id, speed int) error {
	param := map[string]any{
		"channel": channel,
		"op":      PtzToPreset,
		"id":      id,
	}
	if speed > 0 {
		param["speed"] = speed
	}
	return c.call(ctx, "PtzCtrl", param, nil)
}

// PtzPatrolPoint is one stop on a patrol route.
type PtzPatrolPoint struct {
	ID        int `json:"id"`
	DwellTime int `json:"dwellTime"`
	Speed     int `json:"speed"`
}

// PtzPatrol is a configured patrol route.
type PtzPatrol struct {
	ID      int              `json:"id"`
	Enable  int              `json:"enable"`
	Name    string           `json:"name"`
	Presets []PtzPatrolPoint `json:"preset"`
}

// GetPtzPatrols lists configured patrol routes.
func (c *Client) GetPtzPatrols(ctx context.Context, channel int) ([]PtzPatrol, error) {
	var value struct {
		PtzPatrol []PtzPatrol `json:"PtzPatrol"`
	}
	if err := c.call(ctx, "GetPtzPatrol", channelParam{Channel: channel}, &value); err != nil {
		return nil, err
	}
	return value.PtzPatrol, nil
}

// PtzPatrolControl starts or stops patrolling. Patrol id 1 is the
// device default when none is configured explicitly.
func (c *Client) PtzPatrolControl(ctx context.Context, channel int, start bool) error {
	op := PtzStopPatrol
	if start {
		op = PtzStartPatrol
	}
	param := map[string]any{
		"channel": channel,
		"op":      op,
		"id":      1,
	}
	return c.call(ctx, "PtzCtrl", param, nil)
}

// PtzGuard is the camera's return-to-home behaviour.
type PtzGuard struct {
	Enabled bool
	Timeout int
	Exists  bool
}

// GetPtzGuard fetches guard position state.
func (c *Client) GetPtzGuard(ctx context.Context, channel int) (*PtzGuard, error) {
	var value struct {
		PtzGuard struct {
			Enable    int `json:"benable"`
			Timeout   int `json:"timeout"`
			ExistsPos int `json:"bexistPos"`
		} `json:"PtzGuard"`
	}
	if err := c.call(ctx, "GetPtzGuard", channelParam{Channel: channel}, &value); err != nil {
		return nil, err
	}
	return &PtzGuard{
		Enabled: value.PtzGuard.Enable != 0,
		Timeout: value.PtzGuard.Timeout,
		Exists:  value.PtzGuard.ExistsPos != 0,
	}, nil
}

// SetPtzGuard enables/disables the guard position or, via cmdStr
// "setPos"/"toPos", stores or returns to it. timeout < 0 leaves the
// device's configured return delay untouched.
func (c *Client) SetPtzGuard(ctx context.Context, channel int, enable bool, cmdStr string, timeout int) error {
	guard := map[string]any{
		"channel":         channel,
		"benable":         boolToInt(enable),
		"bSaveCurrentPos": 0,
	}
	if cmdStr != "" {
		guard["cmdStr"] = cmdStr
		if cmdStr == "setPos" {
			guard["bSaveCurrentPos"] = 1
		}
	}
	if timeout >= 0 {
		guard["timeout"] = timeout
	}
	return c.call(ctx, "SetPtzGuard", map[string]any{"PtzGuard": guard}, nil)
}

// PtzCalibrate starts the PTZ motor self-calibration run.
func (c *Client) PtzCalibrate(ctx context.Context, channel int) error {
	return c.call(ctx, "PtzCheck", channelParam{Channel: channel}, nil)
}

// GetPtzPosition reads the current pan position.
func (c *Client) GetPtzPosition(ctx context.Context, channel int) (int, error) {
	var value struct {
		PtzCurPos struct {
			Pos int `json:"Ppos"`
		} `json:"PtzCurPos"`
	}
	if err := c.call(ctx, "GetPtzCurPos", channelParam{Channel: channel}, &value); err != nil {
		return 0, err
	}
	return value.PtzCurPos.Pos, nil
}

// SetZoom moves the lens to an absolute zoom position.
func (c *Client) SetZoom(ctx context.Context, channel, pos int) error {
	param := map[string]any{
		"ZoomFocus": map[string]any{
			"channel": channel,
			"op":      "ZoomPos",
			"pos":     pos,
		},
	}
	return c.call(ctx, "StartZoomFocus", param, nil)
}

// SetFocus moves the lens to an absolute focus position.
func (c *Client) SetFocus(ctx context.Context, channel, pos int) error {
	param := map[string]any{
		"ZoomFocus": map[string]any{
			"channel": channel,
			"op":      "FocusPos",
			"pos":     pos,
		},
	}
	return c.call(ctx, "StartZoomFocus", param, nil)
}

// SetAutoFocus toggles continuous autofocus.
func (c *Client) SetAutoFocus(ctx context.Context, channel int, enable bool) error {
	param := map[string]any{
		"AutoFocus": map[string]any{
			"channel": channel,
			"disable": boolToInt(!enable),
		},
	}
	return c.call(ctx, "SetAutoFocus", param, nil)
}

// Auto-tracking methods accepted by SetAutoTracking.
const (
	TrackDigital      = 2
	TrackDigitalFirst = 3
	TrackPanTiltFirst = 4
)

// SetAutoTracking toggles AI subject tracking. method is only sent when
// enabling.
func (c *Client) SetAutoTracking(ctx context.Context, channel int, enable bool, method int) error {
	cfg := map[string]any{
		"channel":     channel,
		"bSmartTrack": boolToInt(enable),
	}
	if enable && method > 0 {
		cfg["aiTrack"] = method
	}
	return c.call(ctx, "SetAiCfg", map[string]any{"AiCfg": cfg}, nil)
}

// SetAutoTrackLimits sets the pan range auto-tracking may cover. A
// negative limit leaves that side untouched.
func (c *Client) SetAutoTrackLimits(ctx context.Context, channel, left, right int) error {
	limit := map[string]any{"channel": channel}
	if left >= 0 {
		limit["limitLeft"] = left
	}
	if right >= 0 {
		limit["limitRight"] = right
	}
	return c.call(ctx, "SetPtzTraceSection", map[string]any{"PtzTraceSection": limit}, nil)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
