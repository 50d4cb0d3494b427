// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ManuGH/reolinkctl/internal/config"
	"github.com/ManuGH/reolinkctl/internal/output"
	"github.com/ManuGH/reolinkctl/internal/reolink"
)

// configSections lists the dump sections in output order.
var configSections = []string{
	"device", "image", "audio", "detection",
	"lighting", "notifications", "ptz", "system",
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config [section]",
		Short: "Dump readable camera configuration, grouped by section",
		Long: `Dump every readable setting, or a single section of them.

Settings a camera model does not support are silently left out, so the
dump works across the whole product range.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: configSections,
		RunE: func(cmd *cobra.Command, args []string) error {
			section := ""
			if len(args) == 1 {
				section = args[0]
			}
			if section != "" && configBuilders[section] == nil {
				return fmt.Errorf("unknown section %q: use one of %s",
					section, strings.Join(configSections, ", "))
			}
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				fields, err := buildConfigSections(ctx, c, conn.Channel, section)
				if err != nil {
					return err
				}
				printer().Result(fields)
				return nil
			})
		},
	}
}

type configBuilder func(ctx context.Context, c *reolink.Client, channel int) []output.Field

var configBuilders = map[string]configBuilder{
	"device":        configDevice,
	"image":         configImage,
	"audio":         configAudio,
	"detection":     configDetection,
	"lighting":      configLighting,
	"notifications": configNotifications,
	"ptz":           configPtz,
	"system":        configSystem,
}

// buildConfigSections collects the requested section, or all of them
// with section-prefixed keys. Individual reads are best-effort: a
// getter the camera rejects just drops its fields from the dump.
func buildConfigSections(ctx context.Context, c *reolink.Client, channel int, section string) ([]output.Field, error) {
	if section != "" {
		b := configBuilders[section]
		if b == nil {
			return nil, fmt.Errorf("unknown section %q: use one of %s",
				section, strings.Join(configSections, ", "))
		}
		return b(ctx, c, channel), nil
	}

	var fields []output.Field
	for _, name := range configSections {
		for _, f := range configBuilders[name](ctx, c, channel) {
			fields = append(fields, output.Field{Key: name + "." + f.Key, Value: f.Value})
		}
	}
	return fields, nil
}

func configDevice(ctx context.Context, c *reolink.Client, channel int) []output.Field {
	var fields []output.Field
	if dev, err := c.GetDeviceInfo(ctx); err == nil {
		fields = append(fields,
			output.Field{Key: "name", Value: dev.Name},
			output.Field{Key: "model", Value: dev.Model},
			output.Field{Key: "serial", Value: dev.Serial},
			output.Field{Key: "firmware", Value: dev.Firmware},
			output.Field{Key: "hardware", Value: dev.Hardware},
			output.Field{Key: "channels", Value: dev.ChannelNum},
		)
	}
	if link, err := c.GetLocalLink(ctx); err == nil {
		fields = append(fields,
			output.Field{Key: "ip", Value: link.IP},
			output.Field{Key: "mac", Value: link.Mac},
			output.Field{Key: "link", Value: link.Type},
		)
	}
	return fields
}

func configImage(ctx context.Context, c *reolink.Client, channel int) []output.Field {
	var fields []output.Field
	if img, err := c.GetImageSettings(ctx, channel); err == nil {
		fields = append(fields,
			output.Field{Key: "brightness", Value: img.Brightness},
			output.Field{Key: "contrast", Value: img.Contrast},
			output.Field{Key: "saturation", Value: img.Saturation},
			output.Field{Key: "hue", Value: img.Hue},
			output.Field{Key: "sharpness", Value: img.Sharpness},
		)
	}
	if isp, err := c.GetIspSettings(ctx, channel); err == nil {
		fields = append(fields,
			output.Field{Key: "daynight", Value: isp.DayNight},
			output.Field{Key: "hdr", Value: onOff(isp.HDR != 0)},
		)
	}
	return fields
}

func configAudio(ctx context.Context, c *reolink.Client, channel int) []output.Field {
	var fields []output.Field
	if cfg, err := c.GetAudioCfg(ctx, channel); err == nil {
		fields = append(fields,
			output.Field{Key: "record", Value: onOff(cfg.RecordEnabled)},
			output.Field{Key: "volume", Value: cfg.Volume},
		)
	}
	if enabled, err := c.GetAudioAlarm(ctx, channel); err == nil {
		fields = append(fields, output.Field{Key: "alarm", Value: onOff(enabled)})
	}
	return fields
}

func configDetection(ctx context.Context, c *reolink.Client, channel int) []output.Field {
	var fields []output.Field
	if alarm, err := c.GetMdAlarm(ctx, channel); err == nil {
		fields = append(fields,
			output.Field{Key: "motion", Value: onOff(alarm.Enabled)},
			output.Field{Key: "sensitivity", Value: alarm.Sensitivity},
		)
	}
	if active, err := c.MotionState(ctx, channel); err == nil {
		fields = append(fields, output.Field{Key: "motion_now", Value: onOff(active)})
	}
	if pir, err := c.GetPirInfo(ctx, channel); err == nil {
		fields = append(fields,
			output.Field{Key: "pir", Value: onOff(pir.Enabled)},
			output.Field{Key: "pir_sensitivity", Value: pir.Sensitivity},
		)
	}
	return fields
}

func configLighting(ctx context.Context, c *reolink.Client, channel int) []output.Field {
	var fields []output.Field
	if state, err := c.GetIrLights(ctx, channel); err == nil {
		fields = append(fields, output.Field{Key: "ir", Value: state})
	}
	if led, err := c.GetWhiteLed(ctx, channel); err == nil {
		fields = append(fields,
			output.Field{Key: "spotlight", Value: onOff(led.State != 0)},
			output.Field{Key: "spotlight_mode", Value: led.Mode},
			output.Field{Key: "spotlight_brightness", Value: led.Brightness},
		)
	}
	if state, err := c.GetStatusLed(ctx, channel); err == nil {
		fields = append(fields, output.Field{Key: "status_led", Value: state})
	}
	return fields
}

func configNotifications(ctx context.Context, c *reolink.Client, channel int) []output.Field {
	var fields []output.Field
	for _, kind := range reolink.NotifyKinds() {
		if enabled, err := c.GetNotify(ctx, channel, kind); err == nil {
			fields = append(fields, output.Field{Key: kind, Value: onOff(enabled)})
		}
	}
	return fields
}

func configPtz(ctx context.Context, c *reolink.Client, channel int) []output.Field {
	var fields []output.Field
	if presets, err := c.GetPtzPresets(ctx, channel); err == nil {
		fields = append(fields, output.Field{Key: "presets", Value: len(presets)})
	}
	if pos, err := c.GetPtzPosition(ctx, channel); err == nil {
		fields = append(fields, output.Field{Key: "pan_position", Value: pos})
	}
	if guard, err := c.GetPtzGuard(ctx, channel); err == nil {
		fields = append(fields,
			output.Field{Key: "guard", Value: onOff(guard.Enabled)},
			output.Field{Key: "guard_timeout", Value: guard.Timeout},
		)
	}
	return fields
}

func configSystem(ctx context.Context, c *reolink.Client, channel int) []output.Field {
	var fields []output.Field
	if ntp, err := c.GetNtp(ctx); err == nil {
		fields = append(fields,
			output.Field{Key: "ntp_server", Value: ntp.Server},
			output.Field{Key: "ntp_port", Value: ntp.Port},
			output.Field{Key: "ntp", Value: onOff(ntp.Enable != 0)},
		)
	}
	if disks, err := c.GetHddInfo(ctx); err == nil {
		fields = append(fields, output.Field{Key: "storage_devices", Value: len(disks)})
		for _, d := range disks {
			fields = append(fields, output.Field{
				Key: fmt.Sprintf("storage%d", d.Number),
				Value: fmt.Sprintf("%.1f/%.1f GB free",
					float64(d.Size)/1024, float64(d.Capacity)/1024),
			})
		}
	}
	return fields
}
