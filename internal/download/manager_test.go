// SPDX-License-Identifier: MIT

package download

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuGH/reolinkctl/internal/output"
	"github.com/ManuGH/reolinkctl/internal/reolink"
	"github.com/ManuGH/reolinkctl/internal/vod"
)

type fakeOpener struct {
	streams map[string]func() (*reolink.Stream, error)
	opened  []string
}

func (f *fakeOpener) Download(_ context.Context, sourceName string) (*reolink.Stream, error) {
	f.opened = append(f.opened, sourceName)
	mk, ok := f.streams[sourceName]
	if !ok {
		return nil, errors.New("no such recording")
	}
	return mk()
}

func okStream(data []byte) func() (*reolink.Stream, error) {
	return func() (*reolink.Stream, error) {
		return &reolink.Stream{
			ContentLength: int64(len(data)),
			Body:          io.NopCloser(bytes.NewReader(data)),
		}, nil
	}
}

// flakyReader serves its payload, then fails instead of reaching EOF.
type flakyReader struct {
	data []byte
	off  int
}

func (r *flakyReader) Read(p []byte) (int, error) {
	if r.off >= len(r.data) {
		return 0, errors.New("connection reset by peer")
	}
	n := copy(p, r.data[r.off:])
	r.off += n
	return n, nil
}

func brokenStream(data []byte, advertised int64) func() (*reolink.Stream, error) {
	return func() (*reolink.Stream, error) {
		return &reolink.Stream{
			ContentLength: advertised,
			Body:          io.NopCloser(&flakyReader{data: data}),
		}, nil
	}
}

func rec(name string, start time.Time) vod.Recording {
	return vod.Recording{
		StartTime:  start,
		EndTime:    start.Add(15 * time.Minute),
		SourceName: name,
		Size:       1 << 20,
	}
}

func quietManager(root string) *Manager {
	return &Manager{
		Root:    root,
		Printer: &output.Printer{Out: io.Discard, Err: io.Discard},
	}
}

func TestRun_DownloadsToDateDirectory(t *testing.T) {
	root := t.TempDir()
	start := time.Date(2024, 5, 17, 10, 30, 0, 0, time.Local)
	payload := bytes.Repeat([]byte("video"), 5000)

	opener := &fakeOpener{streams: map[string]func() (*reolink.Stream, error){
		"Rec/2024/Mp4Record_2024_abc_6D28C08000.mp4": okStream(payload),
	}}
	m := quietManager(root)

	sum := m.Run(context.Background(), opener, []vod.Recording{
		rec("Rec/2024/Mp4Record_2024_abc_6D28C08000.mp4", start),
	})

	assert.Equal(t, Summary{Downloaded: 1}, sum)
	dest := filepath.Join(root, "2024-05-17", "person_103000_104500.mp4")
	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestRun_DryRunTouchesNothing(t *testing.T) {
	root := t.TempDir()
	opener := &fakeOpener{}
	m := quietManager(root)
	m.DryRun = true

	sum := m.Run(context.Background(), opener, []vod.Recording{
		rec("a.mp4", time.Date(2024, 5, 17, 10, 0, 0, 0, time.Local)),
		rec("b.mp4", time.Date(2024, 5, 17, 11, 0, 0, 0, time.Local)),
	})

	assert.Equal(t, Summary{}, sum)
	assert.Empty(t, opener.opened)
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRun_VerboseListsSourceAndTriggers(t *testing.T) {
	root := t.TempDir()
	r := rec("Mp4Record/2024-05-17/RecM01_DST20240517_100000_101500_6D28C08000_1A2B3C.mp4",
		time.Date(2024, 5, 17, 10, 0, 0, 0, time.Local))

	var out bytes.Buffer
	m := &Manager{
		Root:    root,
		DryRun:  true,
		Verbose: true,
		Printer: &output.Printer{Out: &out, Err: io.Discard},
	}
	sum := m.Run(context.Background(), &fakeOpener{}, []vod.Recording{r})

	assert.Equal(t, Summary{}, sum)
	assert.Contains(t, out.String(), r.SourceName)
	assert.Contains(t, out.String(), "person,motion")
}

func TestRun_SkipsExistingFile(t *testing.T) {
	root := t.TempDir()
	start := time.Date(2024, 5, 17, 10, 30, 0, 0, time.Local)
	r := rec("a.mp4", start)

	dir := filepath.Join(root, "2024-05-17")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	dest := filepath.Join(dir, vod.OutputFilename(r))
	require.NoError(t, os.WriteFile(dest, []byte("already here"), 0o644))

	opener := &fakeOpener{}
	sum := quietManager(root).Run(context.Background(), opener, []vod.Recording{r})

	assert.Equal(t, Summary{Downloaded: 1}, sum)
	assert.Empty(t, opener.opened, "existing file must not be re-fetched")
	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, []byte("already here"), got, "existing file must not be overwritten")
}

func TestRun_SecondRunIsIdempotent(t *testing.T) {
	root := t.TempDir()
	start := time.Date(2024, 5, 17, 10, 30, 0, 0, time.Local)
	r := rec("a.mp4", start)
	payload := []byte("payload")

	first := &fakeOpener{streams: map[string]func() (*reolink.Stream, error){"a.mp4": okStream(payload)}}
	m := quietManager(root)
	require.Equal(t, Summary{Downloaded: 1}, m.Run(context.Background(), first, []vod.Recording{r}))

	second := &fakeOpener{}
	sum := m.Run(context.Background(), second, []vod.Recording{r})
	assert.Equal(t, Summary{Downloaded: 1}, sum)
	assert.Empty(t, second.opened)
}

func TestRun_FailedStreamLeavesNoFile(t *testing.T) {
	root := t.TempDir()
	start := time.Date(2024, 5, 17, 10, 30, 0, 0, time.Local)
	r := rec("a.mp4", start)

	opener := &fakeOpener{streams: map[string]func() (*reolink.Stream, error){
		"a.mp4": brokenStream(bytes.Repeat([]byte("x"), 100_000), 1<<20),
	}}
	sum := quietManager(root).Run(context.Background(), opener, []vod.Recording{r})

	assert.Equal(t, Summary{Failed: 1}, sum)
	dest := filepath.Join(root, "2024-05-17", vod.OutputFilename(r))
	_, err := os.Stat(dest)
	assert.True(t, os.IsNotExist(err), "partial download must never land at the final path")

	// Pending temp files are cleaned up too.
	entries, err := os.ReadDir(filepath.Join(root, "2024-05-17"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRun_OneFailureDoesNotAbortBatch(t *testing.T) {
	root := t.TempDir()
	good := rec("good.mp4", time.Date(2024, 5, 17, 10, 0, 0, 0, time.Local))
	bad := rec("bad.mp4", time.Date(2024, 5, 17, 11, 0, 0, 0, time.Local))

	opener := &fakeOpener{streams: map[string]func() (*reolink.Stream, error){
		"good.mp4": okStream([]byte("fine")),
	}}
	sum := quietManager(root).Run(context.Background(), opener, []vod.Recording{bad, good})

	assert.Equal(t, Summary{Downloaded: 1, Failed: 1}, sum)
	assert.Equal(t, []string{"bad.mp4", "good.mp4"}, opener.opened)
	assert.FileExists(t, filepath.Join(root, "2024-05-17", vod.OutputFilename(good)))
}

func TestRun_OpenFailureCountsAsFailed(t *testing.T) {
	root := t.TempDir()
	r := rec("missing.mp4", time.Date(2024, 5, 17, 10, 0, 0, 0, time.Local))

	sum := quietManager(root).Run(context.Background(), &fakeOpener{}, []vod.Recording{r})
	assert.Equal(t, Summary{Failed: 1}, sum)
}

func TestProgressBar_RendersAndCompletes(t *testing.T) {
	var buf bytes.Buffer
	bar := newProgressBar(&buf, "clip.mp4", 200)
	bar.update(100)
	bar.update(200)
	bar.update(250) // past total: ignored once done

	out := buf.String()
	assert.Contains(t, out, " 50.0%")
	assert.Contains(t, out, "100.0%")
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))
}

func TestProgressBar_NilAndUnknownTotalAreSafe(t *testing.T) {
	var bar *progressBar
	bar.update(10) // no panic

	var buf bytes.Buffer
	newProgressBar(&buf, "clip.mp4", -1).update(10)
	assert.Empty(t, buf.String())
}
