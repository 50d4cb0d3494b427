// SPDX-License-Identifier: MIT

// Package download drives the sequential transfer of selected
// recordings to local disk.
package download

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/ManuGH/reolinkctl/internal/log"
	"github.com/ManuGH/reolinkctl/internal/output"
	"github.com/ManuGH/reolinkctl/internal/reolink"
	"github.com/ManuGH/reolinkctl/internal/vod"
)

// DefaultChunkSize is the read granularity for streaming transfers.
const DefaultChunkSize = 64 * 1024

// Opener opens the byte stream for one recording. *reolink.Client
// implements it.
type Opener interface {
	Download(ctx context.Context, sourceName string) (*reolink.Stream, error)
}

// Summary tallies one run. Skipped files count as downloaded: they are
// already present and correct, re-transferring would be wasted work.
type Summary struct {
	Downloaded int
	Failed     int
}

// Manager writes recordings under Root, one date directory per day.
// Verbose adds each recording's source name and full trigger set to the
// listing lines.
type Manager struct {
	Root      string
	DryRun    bool
	Progress  bool
	Verbose   bool
	ChunkSize int
	Printer   *output.Printer
}

func (m *Manager) chunkSize() int {
	if m.ChunkSize > 0 {
		return m.ChunkSize
	}
	return DefaultChunkSize
}

func (m *Manager) printer() *output.Printer {
	if m.Printer != nil {
		return m.Printer
	}
	return output.New(false)
}

// Run processes the recordings strictly in order. One recording's
// failure never aborts the batch; the final summary reports both
// counts so partial success is visible.
func (m *Manager) Run(ctx context.Context, opener Opener, recs []vod.Recording) Summary {
	logger := log.WithComponentFromContext(ctx, "download")
	p := m.printer()

	var sum Summary
	for i, rec := range recs {
		label := fmt.Sprintf("[%d/%d]", i+1, len(recs))
		name := vod.OutputFilename(rec)

		if m.DryRun {
			p.Line("  [%s] %s - %s (%ds)",
				vod.Classify(rec).PrimaryName(),
				rec.StartTime.Format("2006-01-02 15:04:05"),
				rec.EndTime.Format("2006-01-02 15:04:05"),
				int(rec.Duration().Seconds()))
			if m.Verbose {
				p.Line("      triggers: %s  source: %s", vod.Classify(rec), rec.SourceName)
			}
			continue
		}

		dir := filepath.Join(m.Root, rec.StartTime.Format("2006-01-02"))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error().Err(err).Str("dir", dir).Msg("cannot create destination directory")
			p.Line("  %s FAILED: %v", label, err)
			sum.Failed++
			continue
		}
		dest := filepath.Join(dir, name)

		if _, err := os.Stat(dest); err == nil {
			p.Line("  %s Skipping (exists): %s", label, dest)
			sum.Downloaded++
			continue
		}

		p.Line("  %s Downloading: %s...", label, name)
		if m.Verbose {
			p.Line("           triggers: %s  source: %s", vod.Classify(rec), rec.SourceName)
		}
		written, err := m.fetch(ctx, opener, rec, dest, name)
		if err != nil {
			logger.Error().Err(err).Str("source", rec.SourceName).Msg("download failed")
			p.Line("           FAILED: %v", err)
			sum.Failed++
			continue
		}
		p.Line("           Saved: %s (%.1f MB)", dest, float64(written)/(1024*1024))
		sum.Downloaded++
	}

	logger.Info().Int("downloaded", sum.Downloaded).Int("failed", sum.Failed).Msg("run complete")
	return sum
}

// fetch streams one recording into dest. Bytes land in a pending temp
// file that is renamed into place only after the stream completes, so
// a file at the final path always means a complete download — on any
// failure, and on an external kill, only the temp file can be left
// behind.
func (m *Manager) fetch(ctx context.Context, opener Opener, rec vod.Recording, dest, name string) (int64, error) {
	stream, err := opener.Download(ctx, rec.SourceName)
	if err != nil {
		return 0, err
	}
	defer stream.Body.Close()

	pending, err := renameio.NewPendingFile(dest)
	if err != nil {
		return 0, fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		// Removes the temp file unless it was committed.
		_ = pending.Cleanup()
	}()

	var bar *progressBar
	if m.Progress {
		bar = newProgressBar(m.printer().Err, name, stream.ContentLength)
	}

	buf := make([]byte, m.chunkSize())
	var received int64
	for {
		n, rerr := stream.Body.Read(buf)
		if n > 0 {
			if _, werr := pending.Write(buf[:n]); werr != nil {
				return 0, fmt.Errorf("write %s: %w", dest, werr)
			}
			received += int64(n)
			bar.update(received)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return 0, fmt.Errorf("read stream: %w", rerr)
		}
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return 0, fmt.Errorf("finalize %s: %w", dest, err)
	}
	return received, nil
}
