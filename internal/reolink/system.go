// SPDX-License-Identifier: MIT

package reolink

import "context"

// Reboot restarts the device. The session token dies with it.
func (c *Client) Reboot(ctx context.Context) error {
	return c.call(ctx, "Reboot", nil, nil)
}

// NtpSettings is the device's time synchronisation source.
type NtpSettings struct {
	Server string `json:"server"`
	Port   int    `json:"port"`
	Enable int    `json:"enable"`
}

// GetNtp reads the configured NTP server.
func (c *Client) GetNtp(ctx context.Context) (*NtpSettings, error) {
	var value struct {
		Ntp NtpSettings `json:"Ntp"`
	}
	if err := c.call(ctx, "GetNtp", nil, &value); err != nil {
		return nil, err
	}
	return &value.Ntp, nil
}

// SetNtp updates the NTP server and/or port. Empty server or port <= 0
// keep the current value.
func (c *Client) SetNtp(ctx context.Context, server string, port int) error {
	ntp := map[string]any{"enable": 1}
	if server != "" {
		ntp["server"] = server
	}
	if port > 0 {
		ntp["port"] = port
	}
	return c.call(ctx, "SetNtp", map[string]any{"Ntp": ntp}, nil)
}

// SyncNtp forces an immediate NTP synchronisation. The device has no
// dedicated command; re-enabling NTP triggers a sync.
func (c *Client) SyncNtp(ctx context.Context) error {
	return c.call(ctx, "SetNtp", map[string]any{"Ntp": map[string]any{"interval": 0, "enable": 1}}, nil)
}

// SetTimezone sets the UTC offset in seconds.
func (c *Client) SetTimezone(ctx context.Context, offsetSeconds int) error {
	param := map[string]any{
		"Time": map[string]any{
			"timeZone": offsetSeconds,
		},
	}
	return c.call(ctx, "SetTime", param, nil)
}

// OsdSettings positions the on-screen overlays.
type OsdSettings struct {
	NamePos   string
	DatePos   string
	Watermark *bool
}

// SetOsd updates on-screen display placement. Empty fields and nil
// Watermark keep the current configuration.
func (c *Client) SetOsd(ctx context.Context, channel int, s OsdSettings) error {
	osd := map[string]any{"channel": channel}
	if s.NamePos != "" {
		osd["osdChannel"] = map[string]any{"pos": s.NamePos, "enable": 1}
	}
	if s.DatePos != "" {
		osd["osdTime"] = map[string]any{"pos": s.DatePos, "enable": 1}
	}
	if s.Watermark != nil {
		osd["watermark"] = boolToInt(*s.Watermark)
	}
	return c.call(ctx, "SetOsd", map[string]any{"Osd": osd}, nil)
}

// CheckFirmware asks the cloud-update endpoint whether a newer firmware
// exists. The returned string is the new version, empty when current.
func (c *Client) CheckFirmware(ctx context.Context) (string, error) {
	var value struct {
		NewFirmware any `json:"newFirmware"`
	}
	if err := c.call(ctx, "CheckFirmware", nil, &value); err != nil {
		return "", err
	}
	// The device answers 0/1 on old firmwares and a version string on
	// newer ones.
	switch v := value.NewFirmware.(type) {
	case string:
		return v, nil
	case float64:
		if v != 0 {
			return "update available", nil
		}
	}
	return "", nil
}

// UpgradeFirmware starts an online firmware update.
func (c *Client) UpgradeFirmware(ctx context.Context) error {
	return c.call(ctx, "UpgradeOnline", nil, nil)
}

// UpgradeStatus reports online-update progress as a percentage.
func (c *Client) UpgradeStatus(ctx context.Context) (int, error) {
	var value struct {
		Status struct {
			Percent int `json:"percent"`
		} `json:"Status"`
	}
	if err := c.call(ctx, "UpgradeStatus", nil, &value); err != nil {
		return 0, err
	}
	return value.Status.Percent, nil
}
