// SPDX-License-Identifier: MIT

package reolink

import "context"

// GetIrLights reads the infrared illuminator state ("Auto" or "Off").
func (c *Client) GetIrLights(ctx context.Context, channel int) (string, error) {
	var value struct {
		IrLights struct {
			State string `json:"state"`
		} `json:"IrLights"`
	}
	if err := c.call(ctx, "GetIrLights", channelParam{Channel: channel}, &value); err != nil {
		return "", err
	}
	return value.IrLights.State, nil
}

// SetIrLights switches the infrared illuminator between automatic and
// off. The device has no always-on mode.
func (c *Client) SetIrLights(ctx context.Context, channel int, enable bool) error {
	state := "Off"
	if enable {
		state = "Auto"
	}
	param := map[string]any{
		"IrLights": map[string]any{
			"channel": channel,
			"state":   state,
		},
	}
	return c.call(ctx, "SetIrLights", param, nil)
}

// WhiteLed is the spotlight state block.
type WhiteLed struct {
	State      int `json:"state"`
	Mode       int `json:"mode"`
	Brightness int `json:"bright"`
}

// GetWhiteLed reads spotlight state, mode and brightness.
func (c *Client) GetWhiteLed(ctx context.Context, channel int) (*WhiteLed, error) {
	var value struct {
		WhiteLed WhiteLed `json:"WhiteLed"`
	}
	if err := c.call(ctx, "GetWhiteLed", channelParam{Channel: channel}, &value); err != nil {
		return nil, err
	}
	return &value.WhiteLed, nil
}

// SetWhiteLed writes spotlight state. brightness < 0 keeps the current
// brightness.
func (c *Client) SetWhiteLed(ctx context.Context, channel int, on bool, brightness int) error {
	led := map[string]any{
		"channel": channel,
		"state":   boolToInt(on),
	}
	if brightness >= 0 {
		led["bright"] = brightness
	}
	return c.call(ctx, "SetWhiteLed", map[string]any{"WhiteLed": led}, nil)
}

// GetStatusLed reads the indicator LED policy ("On", "Off", "KeepOn"...).
func (c *Client) GetStatusLed(ctx context.Context, channel int) (string, error) {
	var value struct {
		PowerLed struct {
			State string `json:"state"`
		} `json:"PowerLed"`
	}
	if err := c.call(ctx, "GetPowerLed", channelParam{Channel: channel}, &value); err != nil {
		return "", err
	}
	return value.PowerLed.State, nil
}

// SetStatusLed switches the indicator LED on or off.
func (c *Client) SetStatusLed(ctx context.Context, channel int, enable bool) error {
	state := "Off"
	if enable {
		state = "On"
	}
	param := map[string]any{
		"PowerLed": map[string]any{
			"channel": channel,
			"state":   state,
		},
	}
	return c.call(ctx, "SetPowerLed", param, nil)
}
