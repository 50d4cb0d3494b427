// SPDX-License-Identifier: MIT

package reolink

import (
	"context"
	"fmt"
	"io"
	"net/url"
)

// Snap grabs a still JPEG frame from the given channel.
func (c *Client) Snap(ctx context.Context, channel int, stream string) ([]byte, error) {
	params := url.Values{}
	params.Set("cmd", "Snap")
	params.Set("channel", itoa(channel))
	params.Set("snapType", stream)

	res, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &APIError{Sentinel: ErrBadResponse, Operation: "Snap", Err: err}
	}
	if len(data) == 0 {
		return nil, &APIError{Sentinel: ErrBadResponse, Operation: "Snap", Detail: "empty image"}
	}
	return data, nil
}

// LiveStreamURLs returns the RTSP, RTMP and FLV playback addresses for
// a channel. These are derived, not fetched; the camera publishes fixed
// path schemes per stream quality.
func (c *Client) LiveStreamURLs(host string, channel int, stream string) map[string]string {
	return map[string]string{
		"rtsp": fmt.Sprintf("rtsp://%s:554/h264Preview_%02d_%s", host, channel+1, stream),
		"rtmp": fmt.Sprintf("rtmp://%s/bcs/channel%d_%s.bcs?channel=%d&stream=0", host, channel, stream, channel),
		"flv":  fmt.Sprintf("http://%s/flv?port=1935&app=bcs&stream=channel%d_%s.bcs", host, channel, stream),
	}
}
