// SPDX-License-Identifier: MIT

package reolink

import "context"

// DeviceInfo is the static identity block of the device.
type DeviceInfo struct {
	Name       string `json:"name"`
	Model      string `json:"model"`
	Serial     string `json:"serial"`
	Firmware   string `json:"firmVer"`
	Hardware   string `json:"hardVer"`
	ChannelNum int    `json:"channelNum"`
}

// GetDeviceInfo fetches model, firmware and channel facts.
func (c *Client) GetDeviceInfo(ctx context.Context) (*DeviceInfo, error) {
	var value struct {
		DevInfo DeviceInfo `json:"DevInfo"`
	}
	if err := c.call(ctx, "GetDevInfo", nil, &value); err != nil {
		return nil, err
	}
	return &value.DevInfo, nil
}

// LocalLink is the device's network identity.
type LocalLink struct {
	Mac  string `json:"mac"`
	Type string `json:"activeLink"`
	IP   string
}

// GetLocalLink fetches the MAC address and active link type.
func (c *Client) GetLocalLink(ctx context.Context) (*LocalLink, error) {
	var value struct {
		LocalLink struct {
			Mac        string `json:"mac"`
			ActiveLink string `json:"activeLink"`
			Static     struct {
				IP string `json:"ip"`
			} `json:"static"`
		} `json:"LocalLink"`
	}
	if err := c.call(ctx, "GetLocalLink", nil, &value); err != nil {
		return nil, err
	}
	return &LocalLink{
		Mac:  value.LocalLink.Mac,
		Type: value.LocalLink.ActiveLink,
		IP:   value.LocalLink.Static.IP,
	}, nil
}

// ChannelStatus describes one camera attached to an NVR (or the single
// channel of a standalone camera).
type ChannelStatus struct {
	Channel int    `json:"channel"`
	Name    string `json:"name"`
	Online  bool
	Model   string `json:"typeInfo"`
}

// GetChannelStatus lists per-channel name/online/model facts.
func (c *Client) GetChannelStatus(ctx context.Context) ([]ChannelStatus, error) {
	var value struct {
		Status []struct {
			Channel  int    `json:"channel"`
			Name     string `json:"name"`
			Online   int    `json:"online"`
			TypeInfo string `json:"typeInfo"`
		} `json:"status"`
	}
	if err := c.call(ctx, "GetChannelstatus", nil, &value); err != nil {
		return nil, err
	}
	out := make([]ChannelStatus, 0, len(value.Status))
	for _, s := range value.Status {
		out = append(out, ChannelStatus{
			Channel: s.Channel,
			Name:    s.Name,
			Online:  s.Online != 0,
			Model:   s.TypeInfo,
		})
	}
	return out, nil
}

// HddInfo describes one storage device.
type HddInfo struct {
	Number   int   `json:"number"`
	Capacity int64 `json:"capacity"` // MiB as reported by the device
	Size     int64 `json:"size"`     // free MiB
	Format   int   `json:"format"`
	Mounted  int   `json:"mount"`
}

// GetHddInfo lists SD cards / disks and their capacity.
func (c *Client) GetHddInfo(ctx context.Context) ([]HddInfo, error) {
	var value struct {
		HddInfo []HddInfo `json:"HddInfo"`
	}
	if err := c.call(ctx, "GetHddInfo", nil, &value); err != nil {
		return nil, err
	}
	return value.HddInfo, nil
}
