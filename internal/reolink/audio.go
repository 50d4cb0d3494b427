// SPDX-License-Identifier: MIT

package reolink

import "context"

// AudioCfg is the audio recording and speaker configuration.
type AudioCfg struct {
	RecordEnabled bool
	Volume        int
}

// GetAudioCfg reads audio recording state and speaker volume.
func (c *Client) GetAudioCfg(ctx context.Context, channel int) (*AudioCfg, error) {
	var value struct {
		AudioCfg struct {
			Enable int `json:"enable"`
			Volume int `json:"volume"`
		} `json:"AudioCfg"`
	}
	if err := c.call(ctx, "GetAudioCfg", channelParam{Channel: channel}, &value); err != nil {
		return nil, err
	}
	return &AudioCfg{
		RecordEnabled: value.AudioCfg.Enable != 0,
		Volume:        value.AudioCfg.Volume,
	}, nil
}

// SetAudioRecording toggles audio capture on recordings.
func (c *Client) SetAudioRecording(ctx context.Context, channel int, enable bool) error {
	param := map[string]any{
		"AudioCfg": map[string]any{
			"channel": channel,
			"enable":  boolToInt(enable),
		},
	}
	return c.call(ctx, "SetAudioCfg", param, nil)
}

// SetVolume sets the speaker volume (0-100).
func (c *Client) SetVolume(ctx context.Context, channel, volume int) error {
	param := map[string]any{
		"AudioCfg": map[string]any{
			"channel": channel,
			"volume":  volume,
		},
	}
	return c.call(ctx, "SetAudioCfg", param, nil)
}

// GetAudioAlarm reads whether the sound-triggered alarm is enabled.
func (c *Client) GetAudioAlarm(ctx context.Context, channel int) (bool, error) {
	var value struct {
		Audio struct {
			Enable int `json:"enable"`
		} `json:"Audio"`
	}
	if err := c.call(ctx, "GetAudioAlarmV20", channelParam{Channel: channel}, &value); err != nil {
		return false, err
	}
	return value.Audio.Enable != 0, nil
}

// SetAudioAlarm toggles the sound-triggered alarm.
func (c *Client) SetAudioAlarm(ctx context.Context, channel int, enable bool) error {
	param := map[string]any{
		"Audio": map[string]any{
			"channel": channel,
			"enable":  boolToInt(enable),
		},
	}
	return c.call(ctx, "SetAudioAlarmV20", param, nil)
}

// Siren triggers (or silences) the built-in siren. duration is in
// seconds and only sent when starting.
func (c *Client) Siren(ctx context.Context, channel int, on bool, duration int) error {
	param := map[string]any{
		"alarm_mode":    "manul",
		"channel":       channel,
		"manual_switch": boolToInt(on),
	}
	if on && duration > 0 {
		param["times"] = duration
	}
	return c.call(ctx, "AudioAlarmPlay", param, nil)
}

// PlayQuickReply plays a stored quick-reply audio file through the
// speaker.
func (c *Client) PlayQuickReply(ctx context.Context, channel, fileID int) error {
	param := map[string]any{
		"channel": channel,
		"id":      fileID,
		"timeout": 0,
	}
	return c.call(ctx, "QuickReplyPlay", param, nil)
}
