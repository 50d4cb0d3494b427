// SPDX-License-Identifier: MIT

package reolink

import "context"

// Webhook is one configured event callback target.
type Webhook struct {
	Index   int    `json:"index"`
	URL     string `json:"hookUrl"`
	Enabled bool
}

// ListWebhooks returns the configured webhook targets for a channel.
func (c *Client) ListWebhooks(ctx context.Context, channel int) ([]Webhook, error) {
	var value struct {
		WebHook []struct {
			Index  int    `json:"index"`
			URL    string `json:"hookUrl"`
			Enable int    `json:"bEnable"`
		} `json:"WebHook"`
	}
	if err := c.call(ctx, "GetWebHook", channelParam{Channel: channel}, &value); err != nil {
		return nil, err
	}
	out := make([]Webhook, 0, len(value.WebHook))
	for _, w := range value.WebHook {
		out = append(out, Webhook{Index: w.Index, URL: w.URL, Enabled: w.Enable != 0})
	}
	return out, nil
}

func (c *Client) setWebhook(ctx context.Context, channel int, url, action string) error {
	param := map[string]any{
		"WebHook": map[string]any{
			"channel": channel,
			"hookUrl": url,
			"indexOp": action,
		},
	}
	return c.call(ctx, "SetWebHook", param, nil)
}

// AddWebhook registers a new callback URL.
func (c *Client) AddWebhook(ctx context.Context, channel int, url string) error {
	return c.setWebhook(ctx, channel, url, "add")
}

// RemoveWebhook deletes a callback URL.
func (c *Client) RemoveWebhook(ctx context.Context, channel int, url string) error {
	return c.setWebhook(ctx, channel, url, "delete")
}

// EnableWebhook re-enables a disabled callback URL.
func (c *Client) EnableWebhook(ctx context.Context, channel int, url string) error {
	return c.setWebhook(ctx, channel, url, "enable")
}

// DisableWebhook pauses a callback URL without removing it.
func (c *Client) DisableWebhook(ctx context.Context, channel int, url string) error {
	return c.setWebhook(ctx, channel, url, "disable")
}

// TestWebhook asks the camera to fire a test event at the URL.
func (c *Client) TestWebhook(ctx context.Context, channel int, url string) error {
	param := map[string]any{
		"WebHook": map[string]any{
			"channel": channel,
			"hookUrl": url,
		},
	}
	return c.call(ctx, "TestWebHook", param, nil)
}
