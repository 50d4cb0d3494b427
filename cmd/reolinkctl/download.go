// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ManuGH/reolinkctl/internal/config"
	"github.com/ManuGH/reolinkctl/internal/download"
	"github.com/ManuGH/reolinkctl/internal/reolink"
	"github.com/ManuGH/reolinkctl/internal/timeutil"
	"github.com/ManuGH/reolinkctl/internal/vod"
)

type downloadFlags struct {
	person  bool
	vehicle bool
	pet     bool
	motion  bool
	all     bool

	date  string
	from  string
	to    string
	since string

	latest   int
	outDir   string
	dryRun   bool
	stream   string
	progress bool
}

func newDownloadCmd() *cobra.Command {
	var f downloadFlags
	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download recorded clips, filtered by trigger and time",
		Long: `Download recorded clips from the camera's storage.

Recordings are grouped into one directory per day and named after the
trigger that started them, e.g. 2024-05-17/person_103000_104500.mp4.
Files that already exist locally are skipped. Without trigger flags
every recording in the window is taken.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := resolveWindow(f, time.Now())
			if err != nil {
				return err
			}
			return withSession(cmd, func(ctx context.Context, c *reolink.Client, conn config.Connection) error {
				return runDownload(ctx, c, conn, f, start, end)
			})
		},
	}

	fl := cmd.Flags()
	fl.BoolVar(&f.person, "person", false, "recordings triggered by person detection")
	fl.BoolVar(&f.vehicle, "vehicle", false, "recordings triggered by vehicle detection")
	fl.BoolVar(&f.pet, "pet", false, "recordings triggered by pet detection")
	fl.BoolVar(&f.motion, "motion", false, "recordings triggered by plain motion")
	fl.BoolVar(&f.all, "all", false, "all recordings regardless of trigger")
	fl.StringVar(&f.date, "date", "", "single day: YYYY-MM-DD, today or yesterday")
	fl.StringVar(&f.from, "from", "", "range start YYYY-MM-DD (requires --to)")
	fl.StringVar(&f.to, "to", "", "range end YYYY-MM-DD (requires --from)")
	fl.StringVar(&f.since, "since", "", "relative window, e.g. 30m, 2h, 3d")
	fl.IntVar(&f.latest, "latest", 0, "keep only the N most recent matches")
	fl.StringVar(&f.outDir, "output-dir", "downloads", "destination root directory")
	fl.BoolVar(&f.dryRun, "dry-run", false, "list matches without downloading")
	fl.StringVar(&f.stream, "stream", "main", "recording stream (main|sub)")
	fl.BoolVar(&f.progress, "progress", false, "show a transfer progress bar")
	return cmd
}

// resolveWindow validates the time selector flags and produces the
// search window. Validation failures here are usage errors and must
// surface before the session is opened.
func resolveWindow(f downloadFlags, now time.Time) (time.Time, time.Time, error) {
	if f.stream != "main" && f.stream != "sub" {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --stream %q: use main or sub", f.stream)
	}
	if f.latest < 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("--latest must be positive")
	}
	if (f.from == "") != (f.to == "") {
		return time.Time{}, time.Time{}, fmt.Errorf("--from and --to must be given together")
	}
	if f.since != "" {
		if f.date != "" || f.from != "" {
			return time.Time{}, time.Time{}, fmt.Errorf("--since cannot be combined with --date/--from/--to")
		}
		return timeutil.ParseSince(f.since, now)
	}
	return timeutil.ParseDateRange(f.date, f.from, f.to, now)
}

func runDownload(ctx context.Context, c *reolink.Client, conn config.Connection, f downloadFlags, start, end time.Time) error {
	p := printer()

	recs, err := c.Search(ctx, conn.Channel, start, end, f.stream)
	if err != nil {
		return err
	}
	p.Line("Found %d recording(s) between %s and %s",
		len(recs), start.Format("2006-01-02 15:04:05"), end.Format("2006-01-02 15:04:05"))

	filter := vod.BuildFilter(f.person, f.vehicle, f.pet, f.motion, f.all)
	matched := vod.FilterRecordings(recs, filter)
	if !filter.MatchAll() {
		p.Line("%d match trigger filter [%s]", len(matched), filter.Mask())
	}
	if f.latest > 0 {
		matched = vod.Latest(matched, f.latest)
	}
	if len(matched) == 0 {
		p.Line("Nothing to download")
		return nil
	}

	m := &download.Manager{
		Root:     f.outDir,
		DryRun:   f.dryRun,
		Progress: f.progress,
		Verbose:  flagVerbose,
		Printer:  p,
	}
	if f.dryRun {
		p.Line("Dry run - would download %d recording(s):", len(matched))
	}
	sum := m.Run(ctx, c, matched)
	if f.dryRun {
		return nil
	}

	p.Success(fmt.Sprintf("Done: %d downloaded, %d failed", sum.Downloaded, sum.Failed))
	if sum.Failed > 0 {
		return fmt.Errorf("%d download(s) failed", sum.Failed)
	}
	return nil
}
