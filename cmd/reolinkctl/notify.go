// SPDX-License-Identifier: MIT

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ManuGH/reolinkctl/internal/config"
	"github.com/ManuGH/reolinkctl/internal/output"
	"github.com/ManuGH/reolinkctl/internal/reolink"
)

func newNotifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Push, email, FTP and buzzer notification channels",
	}
	cmd.AddCommand(newNotifyStatusCmd())
	for _, kind := range reolink.NotifyKinds() {
		cmd.AddCommand(newNotifyToggleCmd(kind))
	}
	return cmd
}

func newNotifyStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show all notification channels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				fields := make([]output.Field, 0, 4)
				for _, kind := range reolink.NotifyKinds() {
					enabled, err := c.GetNotify(ctx, conn.Channel, kind)
					if err != nil {
						// Not every model has every channel.
						fields = append(fields, output.Field{Key: kind, Value: "unsupported"})
						continue
					}
					fields = append(fields, output.Field{Key: kind, Value: onOff(enabled)})
				}
				printer().Result(fields)
				return nil
			})
		},
	}
}

func newNotifyToggleCmd(kind string) *cobra.Command {
	return &cobra.Command{
		Use:   kind + " <on|off>",
		Short: "Toggle " + kind + " notifications",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enable, err := parseOnOff(args[0])
			if err != nil {
				return err
			}
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				if err := c.SetNotify(ctx, conn.Channel, kind, enable); err != nil {
					return err
				}
				printer().Success("OK")
				return nil
			})
		},
	}
}
