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

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show device, network and channel information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, runInfo)
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "storage",
		Short: "Show SD card / disk status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, runInfoStorage)
		},
	})
	return cmd
}

func runInfo(ctx context.Context, c *reolink.Client, conn config.Connection) error {
	p := printer()

	dev, err := c.GetDeviceInfo(ctx)
	if err != nil {
		return err
	}
	fields := []output.Field{
		{Key: "Name", Value: dev.Name},
		{Key: "Model", Value: dev.Model},
		{Key: "Serial", Value: dev.Serial},
		{Key: "Firmware", Value: dev.Firmware},
		{Key: "Hardware", Value: dev.Hardware},
		{Key: "Channels", Value: dev.ChannelNum},
	}

	if link, err := c.GetLocalLink(ctx); err == nil {
		fields = append(fields,
			output.Field{Key: "IP", Value: link.IP},
			output.Field{Key: "MAC", Value: link.Mac},
			output.Field{Key: "Link", Value: link.Type},
		)
	}
	p.Result(fields)

	if dev.ChannelNum > 1 {
		channels, err := c.GetChannelStatus(ctx)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(channels))
		for _, ch := range channels {
			rows = append(rows, []string{
				fmt.Sprintf("%d", ch.Channel),
				ch.Name,
				ch.Model,
				onOff(ch.Online),
			})
		}
		p.Line("")
		p.Table([]string{"channel", "name", "model", "online"}, rows)
	}
	return nil
}

func runInfoStorage(ctx context.Context, c *reolink.Client, conn config.Connection) error {
	disks, err := c.GetHddInfo(ctx)
	if err != nil {
		return err
	}
	p := printer()
	if len(disks) == 0 {
		p.Line("No storage devices found")
		return nil
	}
	rows := make([][]string, 0, len(disks))
	for _, d := range disks {
		rows = append(rows, []string{
			fmt.Sprintf("%d", d.Number),
			fmt.Sprintf("%.1f GB", float64(d.Capacity)/1024),
			fmt.Sprintf("%.1f GB", float64(d.Size)/1024),
			onOff(d.Mounted != 0),
			onOff(d.Format != 0),
		})
	}
	p.Table([]string{"disk", "capacity", "free", "mounted", "formatted"}, rows)
	return nil
}
