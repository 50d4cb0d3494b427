// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ManuGH/reolinkctl/internal/config"
	"github.com/ManuGH/reolinkctl/internal/output"
	"github.com/ManuGH/reolinkctl/internal/reolink"
)

func newAudioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audio",
		Short: "Audio recording, volume, alarms and siren",
	}
	cmd.AddCommand(
		newAudioRecordCmd(),
		newAudioVolumeCmd(),
		newAudioAlarmCmd(),
		newAudioSirenCmd(),
		newAudioQuickReplyCmd(),
	)
	return cmd
}

func newAudioRecordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "record <on|off|status>",
		Short: "Audio capture on recordings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				if args[0] == "status" {
					cfg, err := c.GetAudioCfg(ctx, conn.Channel)
					if err != nil {
						return err
					}
					printer().Result([]output.Field{
						{Key: "Recording", Value: onOff(cfg.RecordEnabled)},
						{Key: "Volume", Value: cfg.Volume},
					})
					return nil
				}
				enable, err := parseOnOff(args[0])
				if err != nil {
					return err
				}
				if err := c.SetAudioRecording(ctx, conn.Channel, enable); err != nil {
					return err
				}
				printer().Success("OK")
				return nil
			})
		},
	}
}

func newAudioVolumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "volume [0-100]",
		Short: "Get or set the speaker volume",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				if len(args) == 0 {
					cfg, err := c.GetAudioCfg(ctx, conn.Channel)
					if err != nil {
						return err
					}
					printer().Result([]output.Field{{Key: "Volume", Value: cfg.Volume}})
					return nil
				}
				vol, err := strconv.Atoi(args[0])
				if err != nil || vol < 0 || vol > 100 {
					return fmt.Errorf("volume must be 0-100")
				}
				if err := c.SetVolume(ctx, conn.Channel, vol); err != nil {
					return err
				}
				printer().Success("OK")
				return nil
			})
		},
	}
}

func newAudioAlarmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alarm <on|off|status>",
		Short: "Sound-triggered alarm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				if args[0] == "status" {
					enabled, err := c.GetAudioAlarm(ctx, conn.Channel)
					if err != nil {
						return err
					}
					printer().Result([]output.Field{{Key: "Audio alarm", Value: onOff(enabled)}})
					return nil
				}
				enable, err := parseOnOff(args[0])
				if err != nil {
					return err
				}
				if err := c.SetAudioAlarm(ctx, conn.Channel, enable); err != nil {
					return err
				}
				printer().Success("OK")
				return nil
			})
		},
	}
}

func newAudioSirenCmd() *cobra.Command {
	var duration int
	cmd := &cobra.Command{
		Use:   "siren <on|off>",
		Short: "Trigger or silence the siren",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := parseOnOff(args[0])
			if err != nil {
				return err
			}
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				if err := c.Siren(ctx, conn.Channel, on, duration); err != nil {
					return err
				}
				printer().Success("OK")
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&duration, "duration", 0, "seconds to sound (device default when 0)")
	return cmd
}

func newAudioQuickReplyCmd() *cobra.Command {
	var id int
	cmd := &cobra.Command{
		Use:   "quick-reply",
		Short: "Play a stored quick reply message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if id <= 0 {
				return fmt.Errorf("--id is required")
			}
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				if err := c.PlayQuickReply(ctx, conn.Channel, id); err != nil {
					return err
				}
				printer().Success("OK")
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "quick reply file id")
	return cmd
}
