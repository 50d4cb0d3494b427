// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"

	"github.com/ManuGH/reolinkctl/internal/config"
	"github.com/ManuGH/reolinkctl/internal/output"
	"github.com/ManuGH/reolinkctl/internal/reolink"
)

func newSnapshotCmd() *cobra.Command {
	var (
		outFile string
		stream  string
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Capture a still image from the camera",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stream != "main" && stream != "sub" {
				return fmt.Errorf("invalid --stream %q: use main or sub", stream)
			}
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				jpeg, err := c.Snap(ctx, conn.Channel, stream)
				if err != nil {
					return err
				}
				dest := outFile
				if dest == "" {
					dest = fmt.Sprintf("snapshot_%s.jpg", time.Now().Format("20060102_150405"))
				}
				if err := renameio.WriteFile(dest, jpeg, 0o644); err != nil {
					return fmt.Errorf("write snapshot: %w", err)
				}
				printer().Success(fmt.Sprintf("Saved: %s (%d bytes)", dest, len(jpeg)))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default snapshot_<timestamp>.jpg)")
	cmd.Flags().StringVar(&stream, "stream", "main", "stream to capture from (main|sub)")
	return cmd
}

func newStreamCmd() *cobra.Command {
	var stream string
	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Print live stream URLs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := config.Resolve(config.Flags{
				Host:     flagHost,
				User:     flagUser,
				Password: flagPassword,
				Channel:  flagChannel,
			})
			if err != nil {
				return err
			}
			// URLs are derived from host and channel; no session needed.
			c := reolink.New(conn.Host, conn.User, conn.Password)
			urls := c.LiveStreamURLs(conn.Host, conn.Channel, stream)
			protos := make([]string, 0, len(urls))
			for proto := range urls {
				protos = append(protos, proto)
			}
			sort.Strings(protos)
			fields := make([]output.Field, 0, len(protos))
			for _, proto := range protos {
				fields = append(fields, output.Field{Key: proto, Value: urls[proto]})
			}
			printer().Result(fields)
			return nil
		},
	}
	cmd.Flags().StringVar(&stream, "stream", "main", "stream profile (main|sub)")
	return cmd
}
