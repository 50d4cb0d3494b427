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

func newSystemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "system",
		Short: "Reboot, time, OSD and firmware",
	}
	cmd.AddCommand(newSystemRebootCmd(), newSystemNtpCmd(), newSystemTimeCmd(), newSystemOsdCmd(), newSystemFirmwareCmd())
	return cmd
}

func newSystemRebootCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reboot",
		Short: "Restart the device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to reboot without --yes")
			}
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				if err := c.Reboot(ctx); err != nil {
					return err
				}
				printer().Success("Rebooting")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reboot")
	return cmd
}

func newSystemNtpCmd() *cobra.Command {
	var (
		server string
		port   int
	)
	cmd := &cobra.Command{
		Use:   "ntp <status|set|sync>",
		Short: "Time synchronisation source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				switch args[0] {
				case "status":
					ntp, err := c.GetNtp(ctx)
					if err != nil {
						return err
					}
					printer().Result([]output.Field{
						{Key: "Server", Value: ntp.Server},
						{Key: "Port", Value: ntp.Port},
						{Key: "Enabled", Value: onOff(ntp.Enable != 0)},
					})
					return nil
				case "set":
					if server == "" && port <= 0 {
						return fmt.Errorf("give --server and/or --port")
					}
					if err := c.SetNtp(ctx, server, port); err != nil {
						return err
					}
				case "sync":
					if err := c.SyncNtp(ctx); err != nil {
						return err
					}
				default:
					return fmt.Errorf("unknown ntp action %q", args[0])
				}
				printer().Success("OK")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&server, "server", "", "NTP server hostname")
	cmd.Flags().IntVar(&port, "port", 0, "NTP server port")
	return cmd
}

func newSystemTimeCmd() *cobra.Command {
	var offsetHours int
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Set the timezone offset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("utc-offset") {
				return fmt.Errorf("give --utc-offset")
			}
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				if err := c.SetTimezone(ctx, offsetHours*3600); err != nil {
					return err
				}
				printer().Success("OK")
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&offsetHours, "utc-offset", 0, "timezone offset from UTC in hours")
	return cmd
}

func newSystemOsdCmd() *cobra.Command {
	var (
		namePos   string
		datePos   string
		watermark string
	)
	cmd := &cobra.Command{
		Use:   "osd",
		Short: "Position the on-screen overlays",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := reolink.OsdSettings{NamePos: namePos, DatePos: datePos}
			if watermark != "" {
				on, err := parseOnOff(watermark)
				if err != nil {
					return err
				}
				s.Watermark = &on
			}
			if s.NamePos == "" && s.DatePos == "" && s.Watermark == nil {
				return fmt.Errorf("nothing to set: give --name-pos, --date-pos or --watermark")
			}
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				if err := c.SetOsd(ctx, conn.Channel, s); err != nil {
					return err
				}
				printer().Success("OK")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&namePos, "name-pos", "", "camera name position (e.g. Upper Left)")
	cmd.Flags().StringVar(&datePos, "date-pos", "", "timestamp position")
	cmd.Flags().StringVar(&watermark, "watermark", "", "toggle the logo watermark (on|off)")
	return cmd
}

func newSystemFirmwareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "firmware <check|update|progress>",
		Short: "Firmware updates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				p := printer()
				switch args[0] {
				case "check":
					newVer, err := c.CheckFirmware(ctx)
					if err != nil {
						return err
					}
					if newVer == "" {
						p.Success("Firmware is up to date")
					} else {
						p.Result([]output.Field{{Key: "New firmware", Value: newVer}})
					}
				case "update":
					if err := c.UpgradeFirmware(ctx); err != nil {
						return err
					}
					p.Success("Update started; check progress with 'system firmware progress'")
				case "progress":
					percent, err := c.UpgradeStatus(ctx)
					if err != nil {
						return err
					}
					p.Result([]output.Field{{Key: "Progress", Value: fmt.Sprintf("%d%%", percent)}})
				default:
					return fmt.Errorf("unknown firmware action %q", args[0])
				}
				return nil
			})
		},
	}
}
