// SPDX-License-Identifier: MIT

package reolink

import "context"

// MotionState reports whether motion is currently detected.
func (c *Client) MotionState(ctx context.Context, channel int) (bool, error) {
	var value struct {
		State int `json:"state"`
	}
	if err := c.call(ctx, "GetMdState", channelParam{Channel: channel}, &value); err != nil {
		return false, err
	}
	return value.State != 0, nil
}

// MdAlarm is the motion detection alarm configuration.
type MdAlarm struct {
	Enabled     bool
	Sensitivity int
}

// GetMdAlarm reads motion detection enablement and sensitivity. The
// device reports per-timespan sensitivities; the first block is the one
// this tool exposes.
func (c *Client) GetMdAlarm(ctx context.Context, channel int) (*MdAlarm, error) {
	var value struct {
		MdAlarm struct {
			Enable int `json:"enable"`
			Sens   []struct {
				Sensitivity int `json:"sensitivity"`
			} `json:"sens"`
		} `json:"MdAlarm"`
	}
	if err := c.call(ctx, "GetMdAlarm", channelParam{Channel: channel}, &value); err != nil {
		return nil, err
	}
	out := &MdAlarm{Enabled: value.MdAlarm.Enable != 0}
	if len(value.MdAlarm.Sens) > 0 {
		out.Sensitivity = value.MdAlarm.Sens[0].Sensitivity
	}
	return out, nil
}

// SetMotionDetection toggles motion detection.
func (c *Client) SetMotionDetection(ctx context.Context, channel int, enable bool) error {
	param := map[string]any{
		"MdAlarm": map[string]any{
			"channel": channel,
			"enable":  boolToInt(enable),
		},
	}
	return c.call(ctx, "SetMdAlarm", param, nil)
}

// SetMdSensitivity sets motion sensitivity (1-50) across all timespans.
func (c *Client) SetMdSensitivity(ctx context.Context, channel, sensitivity int) error {
	param := map[string]any{
		"MdAlarm": map[string]any{
			"channel":    channel,
			"useNewSens": 1,
			"newSens": map[string]any{
				"sensDef": sensitivity,
			},
		},
	}
	return c.call(ctx, "SetMdAlarm", param, nil)
}

// AI types accepted by the AI alarm commands.
const (
	AiTypePeople  = "people"
	AiTypeVehicle = "vehicle"
	AiTypeDogCat  = "dog_cat"
)

// AiAlarm is one AI type's detection configuration.
type AiAlarm struct {
	Type        string `json:"ai_type"`
	Sensitivity int    `json:"sensitivity"`
	Delay       int    `json:"stay_time"`
}

// GetAiAlarm reads detection settings for one AI type.
func (c *Client) GetAiAlarm(ctx context.Context, channel int, aiType string) (*AiAlarm, error) {
	param := map[string]any{
		"channel": channel,
		"ai_type": aiType,
	}
	var value struct {
		AiAlarm AiAlarm `json:"AiAlarm"`
	}
	if err := c.call(ctx, "GetAiAlarm", param, &value); err != nil {
		return nil, err
	}
	return &value.AiAlarm, nil
}

// SetAiSensitivity sets the detection sensitivity for one AI type.
func (c *Client) SetAiSensitivity(ctx context.Context, channel int, aiType string, sensitivity int) error {
	param := map[string]any{
		"AiAlarm": map[string]any{
			"channel":     channel,
			"ai_type":     aiType,
			"sensitivity": sensitivity,
		},
	}
	return c.call(ctx, "SetAiAlarm", param, nil)
}

// SetAiDelay sets the post-detection record delay for one AI type.
func (c *Client) SetAiDelay(ctx context.Context, channel int, aiType string, delay int) error {
	param := map[string]any{
		"AiAlarm": map[string]any{
			"channel":   channel,
			"ai_type":   aiType,
			"stay_time": delay,
		},
	}
	return c.call(ctx, "SetAiAlarm", param, nil)
}

// PirInfo is the passive infrared sensor configuration.
type PirInfo struct {
	Enabled     bool
	Sensitivity int
}

// GetPirInfo reads PIR sensor state.
func (c *Client) GetPirInfo(ctx context.Context, channel int) (*PirInfo, error) {
	var value struct {
		PirInfo struct {
			Enable      int `json:"enable"`
			Sensitivity int `json:"sensitive"`
		} `json:"PirInfo"`
	}
	if err := c.call(ctx, "GetPirInfo", channelParam{Channel: channel}, &value); err != nil {
		return nil, err
	}
	return &PirInfo{
		Enabled:     value.PirInfo.Enable != 0,
		Sensitivity: value.PirInfo.Sensitivity,
	}, nil
}

// SetPir toggles the PIR sensor.
func (c *Client) SetPir(ctx context.Context, channel int, enable bool) error {
	param := map[string]any{
		"PirInfo": map[string]any{
			"channel": channel,
			"enable":  boolToInt(enable),
		},
	}
	return c.call(ctx, "SetPirInfo", param, nil)
}
