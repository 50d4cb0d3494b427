// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ManuGH/reolinkctl/internal/config"
	"github.com/ManuGH/reolinkctl/internal/output"
	"github.com/ManuGH/reolinkctl/internal/reolink"
)

func newImageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "image",
		Short: "Picture tuning, day/night mode and HDR",
	}
	cmd.AddCommand(newImageGetCmd(), newImageSetCmd(), newImageDayNightCmd(), newImageHdrCmd())
	return cmd
}

func newImageGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show current picture settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				img, err := c.GetImageSettings(ctx, conn.Channel)
				if err != nil {
					return err
				}
				fields := []output.Field{
					{Key: "Brightness", Value: img.Brightness},
					{Key: "Contrast", Value: img.Contrast},
					{Key: "Saturation", Value: img.Saturation},
					{Key: "Hue", Value: img.Hue},
					{Key: "Sharpness", Value: img.Sharpness},
				}
				if isp, err := c.GetIspSettings(ctx, conn.Channel); err == nil {
					fields = append(fields,
						output.Field{Key: "Day/night", Value: isp.DayNight},
						output.Field{Key: "HDR", Value: onOff(isp.HDR != 0)},
					)
				}
				printer().Result(fields)
				return nil
			})
		},
	}
}

func newImageSetCmd() *cobra.Command {
	var brightness, contrast, saturation, hue, sharpness int
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change picture settings (values 0-255, omitted ones keep current)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fl := cmd.Flags()
			touched := false
			for _, name := range []string{"brightness", "contrast", "saturation", "hue", "sharpness"} {
				touched = touched || fl.Changed(name)
			}
			if !touched {
				return fmt.Errorf("nothing to set: give at least one of --brightness/--contrast/--saturation/--hue/--sharpness")
			}
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				// The device wants the full block back.
				img, err := c.GetImageSettings(ctx, conn.Channel)
				if err != nil {
					return err
				}
				if fl.Changed("brightness") {
					img.Brightness = brightness
				}
				if fl.Changed("contrast") {
					img.Contrast = contrast
				}
				if fl.Changed("saturation") {
					img.Saturation = saturation
				}
				if fl.Changed("hue") {
					img.Hue = hue
				}
				if fl.Changed("sharpness") {
					img.Sharpness = sharpness
				}
				if err := c.SetImageSettings(ctx, conn.Channel, *img); err != nil {
					return err
				}
				printer().Success("OK")
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&brightness, "brightness", 128, "brightness")
	cmd.Flags().IntVar(&contrast, "contrast", 128, "contrast")
	cmd.Flags().IntVar(&saturation, "saturation", 128, "saturation")
	cmd.Flags().IntVar(&hue, "hue", 128, "hue")
	cmd.Flags().IntVar(&sharpness, "sharpness", 128, "sharpness")
	return cmd
}

func newImageDayNightCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daynight <auto|color|blackwhite>",
		Short: "Select the day/night mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var mode string
			switch args[0] {
			case "auto":
				mode = "Auto"
			case "color":
				mode = "Color"
			case "blackwhite":
				mode = "Black&White"
			default:
				return fmt.Errorf("unknown day/night mode %q", args[0])
			}
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				if err := c.SetDayNight(ctx, conn.Channel, mode); err != nil {
					return err
				}
				printer().Success("OK")
				return nil
			})
		},
	}
}

func newImageHdrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hdr <on|off>",
		Short: "Toggle high dynamic range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enable, err := parseOnOff(args[0])
			if err != nil {
				return err
			}
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				if err := c.SetHDR(ctx, conn.Channel, enable); err != nil {
					return err
				}
				printer().Success("OK")
				return nil
			})
		},
	}
}
