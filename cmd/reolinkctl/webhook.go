// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ManuGH/reolinkctl/internal/config"
	"github.com/ManuGH/reolinkctl/internal/reolink"
)

func newWebhookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhook",
		Short: "Manage event webhook targets",
	}
	cmd.AddCommand(newWebhookListCmd())
	for _, action := range []struct {
		name  string
		short string
		call  func(*reolink.Client, context.Context, int, string) error
	}{
		{"add", "Register a webhook URL", func(c *reolink.Client, ctx context.Context, ch int, url string) error {
			return c.AddWebhook(ctx, ch, url)
		}},
		{"remove", "Delete a webhook URL", func(c *reolink.Client, ctx context.Context, ch int, url string) error {
			return c.RemoveWebhook(ctx, ch, url)
		}},
		{"enable", "Enable a webhook URL", func(c *reolink.Client, ctx context.Context, ch int, url string) error {
			return c.EnableWebhook(ctx, ch, url)
		}},
		{"disable", "Disable a webhook URL", func(c *reolink.Client, ctx context.Context, ch int, url string) error {
			return c.DisableWebhook(ctx, ch, url)
		}},
		{"test", "Send a test event to a webhook URL", func(c *reolink.Client, ctx context.Context, ch int, url string) error {
			return c.TestWebhook(ctx, ch, url)
		}},
	} {
		cmd.AddCommand(newWebhookActionCmd(action.name, action.short, action.call))
	}
	return cmd
}

func newWebhookListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured webhooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				hooks, err := c.ListWebhooks(ctx, conn.Channel)
				if err != nil {
					return err
				}
				p := printer()
				if len(hooks) == 0 {
					p.Line("No webhooks configured")
					return nil
				}
				rows := make([][]string, 0, len(hooks))
				for _, h := range hooks {
					rows = append(rows, []string{strconv.Itoa(h.Index), h.URL, onOff(h.Enabled)})
				}
				p.Table([]string{"index", "url", "enabled"}, rows)
				return nil
			})
		},
	}
}

func newWebhookActionCmd(name, short string, call func(*reolink.Client, context.Context, int, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <url>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				if err := call(c, ctx, conn.Channel, args[0]); err != nil {
					return err
				}
				printer().Success("OK")
				return nil
			})
		},
	}
}
