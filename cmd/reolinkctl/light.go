// SPDX-License-Identifier: MIT

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ManuGH/reolinkctl/internal/config"
	"github.com/ManuGH/reolinkctl/internal/output"
	"github.com/ManuGH/reolinkctl/internal/reolink"
)

func newLightCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "light",
		Short: "Control IR lights, spotlight and status LED",
	}
	cmd.AddCommand(newLightIrCmd(), newLightSpotlightCmd(), newLightStatusLedCmd())
	return cmd
}

func newLightIrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ir <on|off|status>",
		Short: "Infrared illuminators (on means automatic night mode)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				if args[0] == "status" {
					state, err := c.GetIrLights(ctx, conn.Channel)
					if err != nil {
						return err
					}
					printer().Result([]output.Field{{Key: "IR lights", Value: state}})
					return nil
				}
				enable, err := parseOnOff(args[0])
				if err != nil {
					return err
				}
				if err := c.SetIrLights(ctx, conn.Channel, enable); err != nil {
					return err
				}
				printer().Success("OK")
				return nil
			})
		},
	}
}

func newLightSpotlightCmd() *cobra.Command {
	var brightness int
	cmd := &cobra.Command{
		Use:   "spotlight <on|off|status>",
		Short: "White LED spotlight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				if args[0] == "status" {
					led, err := c.GetWhiteLed(ctx, conn.Channel)
					if err != nil {
						return err
					}
					printer().Result([]output.Field{
						{Key: "State", Value: onOff(led.State != 0)},
						{Key: "Mode", Value: led.Mode},
						{Key: "Brightness", Value: led.Brightness},
					})
					return nil
				}
				enable, err := parseOnOff(args[0])
				if err != nil {
					return err
				}
				if err := c.SetWhiteLed(ctx, conn.Channel, enable, brightness); err != nil {
					return err
				}
				printer().Success("OK")
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&brightness, "brightness", -1, "brightness 0-100 (unchanged when omitted)")
	return cmd
}

func newLightStatusLedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status-led <on|off|status>",
		Short: "Indicator LED on the camera body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				if args[0] == "status" {
					state, err := c.GetStatusLed(ctx, conn.Channel)
					if err != nil {
						return err
					}
					printer().Result([]output.Field{{Key: "Status LED", Value: state}})
					return nil
				}
				enable, err := parseOnOff(args[0])
				if err != nil {
					return err
				}
				if err := c.SetStatusLed(ctx, conn.Channel, enable); err != nil {
					return err
				}
				printer().Success("OK")
				return nil
			})
		},
	}
}
