// SPDX-License-Identifier: MIT

package reolink

import "context"

// notifyCommand maps a notification kind to its get/set command pair
// and the JSON block name both share.
type notifyCommand struct {
	get, set, block string
}

var notifyCommands = map[string]notifyCommand{
	"push":   {get: "GetPushV20", set: "SetPushV20", block: "Push"},
	"email":  {get: "GetEmailV20", set: "SetEmailV20", block: "Email"},
	"ftp":    {get: "GetFtpV20", set: "SetFtpV20", block: "Ftp"},
	"buzzer": {get: "GetBuzzerAlarmV20", set: "SetBuzzerAlarmV20", block: "Buzzer"},
}

// NotifyKinds lists the notification channels this client can toggle.
func NotifyKinds() []string {
	return []string{"push", "email", "ftp", "buzzer"}
}

// GetNotify reads whether one notification kind is enabled.
func (c *Client) GetNotify(ctx context.Context, channel int, kind string) (bool, error) {
	nc, ok := notifyCommands[kind]
	if !ok {
		return false, &APIError{Sentinel: ErrNotSupported, Operation: kind, Detail: "unknown notification kind"}
	}
	var value map[string]struct {
		Enable int `json:"enable"`
	}
	if err := c.call(ctx, nc.get, channelParam{Channel: channel}, &value); err != nil {
		return false, err
	}
	return value[nc.block].Enable != 0, nil
}

// SetNotify toggles one notification kind.
func (c *Client) SetNotify(ctx context.Context, channel int, kind string, enable bool) error {
	nc, ok := notifyCommands[kind]
	if !ok {
		return &APIError{Sentinel: ErrNotSupported, Operation: kind, Detail: "unknown notification kind"}
	}
	param := map[string]any{
		nc.block: map[string]any{
			"channel": channel,
			"enable":  boolToInt(enable),
		},
	}
	return c.call(ctx, nc.set, param, nil)
}
