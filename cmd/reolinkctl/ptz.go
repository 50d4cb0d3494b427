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

func newPtzCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ptz",
		Short: "Pan, tilt, zoom and preset control",
	}
	cmd.AddCommand(
		newPtzMoveCmd(),
		newPtzZoomCmd(),
		newPtzFocusCmd(),
		newPtzPresetCmd(),
		newPtzPatrolCmd(),
		newPtzGuardCmd(),
		newPtzTrackCmd(),
		newPtzPositionCmd(),
		newPtzCalibrateCmd(),
	)
	return cmd
}

var ptzOps = map[string]string{
	"left":  reolink.PtzLeft,
	"right": reolink.PtzRight,
	"up":    reolink.PtzUp,
	"down":  reolink.PtzDown,
	"stop":  reolink.PtzStop,
}

func newPtzMoveCmd() *cobra.Command {
	var speed int
	cmd := &cobra.Command{
		Use:   "move <left|right|up|down|stop>",
		Short: "Start or stop a pan/tilt movement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := ptzOps[args[0]]
			if !ok {
				return fmt.Errorf("unknown direction %q", args[0])
			}
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				if err := c.PtzCtrl(ctx, conn.Channel, op, speed); err != nil {
					return err
				}
				printer().Success("OK")
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&speed, "speed", 0, "movement speed (device default when 0)")
	return cmd
}

func newPtzZoomCmd() *cobra.Command {
	var pos int
	cmd := &cobra.Command{
		Use:   "zoom <in|out|stop|to>",
		Short: "Zoom in/out, or jump to an absolute zoom position with --pos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				var err error
				switch args[0] {
				case "in":
					err = c.PtzCtrl(ctx, conn.Channel, reolink.PtzZoomIn, 0)
				case "out":
					err = c.PtzCtrl(ctx, conn.Channel, reolink.PtzZoomOut, 0)
				case "stop":
					err = c.PtzCtrl(ctx, conn.Channel, reolink.PtzStop, 0)
				case "to":
					err = c.SetZoom(ctx, conn.Channel, pos)
				default:
					return fmt.Errorf("unknown zoom action %q", args[0])
				}
				if err != nil {
					return err
				}
				printer().Success("OK")
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&pos, "pos", 0, "absolute zoom position for 'to'")
	return cmd
}

func newPtzFocusCmd() *cobra.Command {
	var (
		pos  int
		auto string
	)
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Set focus position or toggle autofocus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				if auto != "" {
					enable, err := parseOnOff(auto)
					if err != nil {
						return err
					}
					if err := c.SetAutoFocus(ctx, conn.Channel, enable); err != nil {
						return err
					}
				} else {
					if err := c.SetFocus(ctx, conn.Channel, pos); err != nil {
						return err
					}
				}
				printer().Success("OK")
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&pos, "pos", 0, "absolute focus position")
	cmd.Flags().StringVar(&auto, "auto", "", "toggle autofocus (on|off)")
	return cmd
}

func newPtzPresetCmd() *cobra.Command {
	var speed int
	cmd := &cobra.Command{
		Use:   "preset [id]",
		Short: "List presets, or move to one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				if len(args) == 0 {
					presets, err := c.GetPtzPresets(ctx, conn.Channel)
					if err != nil {
						return err
					}
					rows := make([][]string, 0, len(presets))
					for _, pr := range presets {
						rows = append(rows, []string{strconv.Itoa(pr.ID), pr.Name})
					}
					printer().Table([]string{"id", "name"}, rows)
					return nil
				}
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid preset id %q", args[0])
				}
				if err := c.PtzGotoPreset(ctx, conn.Channel, id, speed); err != nil {
					return err
				}
				printer().Success("OK")
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&speed, "speed", 0, "movement speed (device default when 0)")
	return cmd
}

func newPtzPatrolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patrol <list|start|stop>",
		Short: "List or control patrol routes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				switch args[0] {
				case "list":
					patrols, err := c.GetPtzPatrols(ctx, conn.Channel)
					if err != nil {
						return err
					}
					rows := make([][]string, 0, len(patrols))
					for _, pa := range patrols {
						rows = append(rows, []string{
							strconv.Itoa(pa.ID),
							pa.Name,
							onOff(pa.Enable != 0),
							strconv.Itoa(len(pa.Presets)),
						})
					}
					printer().Table([]string{"id", "name", "enabled", "stops"}, rows)
					return nil
				case "start", "stop":
					if err := c.PtzPatrolControl(ctx, conn.Channel, args[0] == "start"); err != nil {
						return err
					}
					printer().Success("OK")
					return nil
				default:
					return fmt.Errorf("unknown patrol action %q", args[0])
				}
			})
		},
	}
}

func newPtzGuardCmd() *cobra.Command {
	var timeout int
	cmd := &cobra.Command{
		Use:   "guard <status|set|goto|on|off>",
		Short: "Manage the guard (home) position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				switch args[0] {
				case "status":
					g, err := c.GetPtzGuard(ctx, conn.Channel)
					if err != nil {
						return err
					}
					printer().Result([]output.Field{
						{Key: "Enabled", Value: onOff(g.Enabled)},
						{Key: "Position set", Value: onOff(g.Exists)},
						{Key: "Return after", Value: fmt.Sprintf("%ds", g.Timeout)},
					})
					return nil
				case "set":
					return ptzGuardOK(c.SetPtzGuard(ctx, conn.Channel, true, "setPos", timeout))
				case "goto":
					return ptzGuardOK(c.SetPtzGuard(ctx, conn.Channel, true, "toPos", -1))
				case "on":
					return ptzGuardOK(c.SetPtzGuard(ctx, conn.Channel, true, "", timeout))
				case "off":
					return ptzGuardOK(c.SetPtzGuard(ctx, conn.Channel, false, "", -1))
				default:
					return fmt.Errorf("unknown guard action %q", args[0])
				}
			})
		},
	}
	cmd.Flags().IntVar(&timeout, "timeout", -1, "seconds before returning to guard position")
	return cmd
}

func ptzGuardOK(err error) error {
	if err != nil {
		return err
	}
	printer().Success("OK")
	return nil
}

func newPtzTrackCmd() *cobra.Command {
	var (
		method string
		left   int
		right  int
		limits bool
	)
	cmd := &cobra.Command{
		Use:   "track <on|off>",
		Short: "Toggle AI auto-tracking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enable, err := parseOnOff(args[0])
			if err != nil {
				return err
			}
			m, err := trackMethod(method)
			if err != nil {
				return err
			}
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				if err := c.SetAutoTracking(ctx, conn.Channel, enable, m); err != nil {
					return err
				}
				if limits {
					if err := c.SetAutoTrackLimits(ctx, conn.Channel, left, right); err != nil {
						return err
					}
				}
				printer().Success("OK")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&method, "method", "digital", "tracking method (digital|digital-first|pan-tilt-first)")
	cmd.Flags().IntVar(&left, "limit-left", 0, "left pan limit")
	cmd.Flags().IntVar(&right, "limit-right", 0, "right pan limit")
	cmd.Flags().BoolVar(&limits, "set-limits", false, "also write the pan limits")
	return cmd
}

func trackMethod(s string) (int, error) {
	switch s {
	case "digital":
		return reolink.TrackDigital, nil
	case "digital-first":
		return reolink.TrackDigitalFirst, nil
	case "pan-tilt-first":
		return reolink.TrackPanTiltFirst, nil
	default:
		return 0, fmt.Errorf("unknown tracking method %q", s)
	}
}

func newPtzPositionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "position",
		Short: "Show the current pan position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				pos, err := c.GetPtzPosition(ctx, conn.Channel)
				if err != nil {
					return err
				}
				printer().Result([]output.Field{{Key: "Position", Value: pos}})
				return nil
			})
		},
	}
}

func newPtzCalibrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calibrate",
		Short: "Run the PTZ motor calibration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				if err := c.PtzCalibrate(ctx, conn.Channel); err != nil {
					return err
				}
				printer().Success("Calibration started")
				return nil
			})
		},
	}
}
