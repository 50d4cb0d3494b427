// SPDX-License-Identifier: MIT

package reolink

import "context"

// ImageSettings are the basic picture tuning values, each 0-255 on the
// device scale.
type ImageSettings struct {
	Brightness int `json:"bright"`
	Contrast   int `json:"contrast"`
	Saturation int `json:"saturation"`
	Hue        int `json:"hue"`
	Sharpness  int `json:"sharpen"`
}

// GetImageSettings reads the current picture tuning for a channel.
func (c *Client) GetImageSettings(ctx context.Context, channel int) (*ImageSettings, error) {
	var value struct {
		Image ImageSettings `json:"Image"`
	}
	if err := c.call(ctx, "GetImage", channelParam{Channel: channel}, &value); err != nil {
		return nil, err
	}
	return &value.Image, nil
}

// SetImageSettings writes picture tuning values. Callers read-modify-
// write: the device expects the full block.
func (c *Client) SetImageSettings(ctx context.Context, channel int, s ImageSettings) error {
	param := map[string]any{
		"Image": map[string]any{
			"channel":    channel,
			"bright":     s.Brightness,
			"contrast":   s.Contrast,
			"saturation": s.Saturation,
			"hue":        s.Hue,
			"sharpen":    s.Sharpness,
		},
	}
	return c.call(ctx, "SetImage", param, nil)
}

// IspSettings is the subset of the ISP block this tool manipulates.
type IspSettings struct {
	DayNight string `json:"dayNight"` // "Auto", "Color", "Black&White"
	HDR      int    `json:"hdr"`
}

// GetIspSettings reads day/night mode and HDR state.
func (c *Client) GetIspSettings(ctx context.Context, channel int) (*IspSettings, error) {
	var value struct {
		Isp IspSettings `json:"Isp"`
	}
	if err := c.call(ctx, "GetIsp", channelParam{Channel: channel}, &value); err != nil {
		return nil, err
	}
	return &value.Isp, nil
}

// SetDayNight sets the day/night mode ("Auto", "Color", "Black&White").
func (c *Client) SetDayNight(ctx context.Context, channel int, mode string) error {
	param := map[string]any{
		"Isp": map[string]any{
			"channel":  channel,
			"dayNight": mode,
		},
	}
	return c.call(ctx, "SetIsp", param, nil)
}

// SetHDR toggles high dynamic range capture.
func (c *Client) SetHDR(ctx context.Context, channel int, enable bool) error {
	param := map[string]any{
		"Isp": map[string]any{
			"channel": channel,
			"hdr":     boolToInt(enable),
		},
	}
	return c.call(ctx, "SetIsp", param, nil)
}
