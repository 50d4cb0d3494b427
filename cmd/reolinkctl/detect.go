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

func newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Motion, AI and PIR detection settings",
	}
	cmd.AddCommand(newDetectMotionCmd(), newDetectAiCmd(), newDetectPirCmd())
	return cmd
}

func newDetectMotionCmd() *cobra.Command {
	var sensitivity int
	cmd := &cobra.Command{
		Use:   "motion <on|off|status|sensitivity>",
		Short: "Classic motion detection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				switch args[0] {
				case "status":
					alarm, err := c.GetMdAlarm(ctx, conn.Channel)
					if err != nil {
						return err
					}
					active, err := c.MotionState(ctx, conn.Channel)
					if err != nil {
						return err
					}
					printer().Result([]output.Field{
						{Key: "Enabled", Value: onOff(alarm.Enabled)},
						{Key: "Sensitivity", Value: alarm.Sensitivity},
						{Key: "Motion now", Value: onOff(active)},
					})
					return nil
				case "sensitivity":
					if sensitivity < 1 || sensitivity > 50 {
						return fmt.Errorf("--value must be 1-50")
					}
					if err := c.SetMdSensitivity(ctx, conn.Channel, sensitivity); err != nil {
						return err
					}
				case "on", "off":
					if err := c.SetMotionDetection(ctx, conn.Channel, args[0] == "on"); err != nil {
						return err
					}
				default:
					return fmt.Errorf("unknown motion action %q", args[0])
				}
				printer().Success("OK")
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&sensitivity, "value", 0, "sensitivity 1-50 for the sensitivity action")
	return cmd
}

func aiType(s string) (string, error) {
	switch s {
	case "person", "people":
		return reolink.AiTypePeople, nil
	case "vehicle":
		return reolink.AiTypeVehicle, nil
	case "pet", "dog_cat":
		return reolink.AiTypeDogCat, nil
	default:
		return "", fmt.Errorf("unknown AI type %q: use person, vehicle or pet", s)
	}
}

func newDetectAiCmd() *cobra.Command {
	var (
		typeFlag string
		value    int
	)
	cmd := &cobra.Command{
		Use:   "ai <status|sensitivity|delay>",
		Short: "AI detection per type (person, vehicle, pet)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := aiType(typeFlag)
			if err != nil {
				return err
			}
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				switch args[0] {
				case "status":
					alarm, err := c.GetAiAlarm(ctx, conn.Channel, at)
					if err != nil {
						return err
					}
					printer().Result([]output.Field{
						{Key: "Type", Value: alarm.Type},
						{Key: "Sensitivity", Value: alarm.Sensitivity},
						{Key: "Delay", Value: fmt.Sprintf("%ds", alarm.Delay)},
					})
					return nil
				case "sensitivity":
					if err := c.SetAiSensitivity(ctx, conn.Channel, at, value); err != nil {
						return err
					}
				case "delay":
					if err := c.SetAiDelay(ctx, conn.Channel, at, value); err != nil {
						return err
					}
				default:
					return fmt.Errorf("unknown ai action %q", args[0])
				}
				printer().Success("OK")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&typeFlag, "type", "person", "AI type (person|vehicle|pet)")
	cmd.Flags().IntVar(&value, "value", 0, "sensitivity (0-100) or delay seconds")
	return cmd
}

func newDetectPirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pir <on|off|status>",
		Short: "Passive infrared sensor (battery cameras)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				if args[0] == "status" {
					pir, err := c.GetPirInfo(ctx, conn.Channel)
					if err != nil {
						return err
					}
					printer().Result([]output.Field{
						{Key: "Enabled", Value: onOff(pir.Enabled)},
						{Key: "Sensitivity", Value: strconv.Itoa(pir.Sensitivity)},
					})
					return nil
				}
				enable, err := parseOnOff(args[0])
				if err != nil {
					return err
				}
				if err := c.SetPir(ctx, conn.Channel, enable); err != nil {
					return err
				}
				printer().Success("OK")
				return nil
			})
		},
	}
}
