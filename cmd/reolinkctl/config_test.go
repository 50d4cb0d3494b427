// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuGH/reolinkctl/internal/output"
	"github.com/ManuGH/reolinkctl/internal/reolink"
)

func keysOf(fields []output.Field) []string {
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	return keys
}

func valueOf(fields []output.Field, key string) any {
	for _, f := range fields {
		if f.Key == key {
			return f.Value
		}
	}
	return nil
}

func newConfigTestClient(t *testing.T, m *reolink.MockServer) *reolink.Client {
	t.Helper()
	c := reolink.New(m.URL, "admin", "secret")
	require.NoError(t, c.Login(context.Background()))
	return c
}

func TestBuildConfigSections_FullDump(t *testing.T) {
	m := reolink.NewMockServer("secret")
	defer m.Close()
	c := newConfigTestClient(t, m)

	fields, err := buildConfigSections(context.Background(), c, 0, "")
	require.NoError(t, err)

	assert.Equal(t, "RLC-810A", valueOf(fields, "device.model"))
	keys := keysOf(fields)
	assert.Contains(t, keys, "image.brightness")
	assert.Contains(t, keys, "audio.record")
	assert.Contains(t, keys, "detection.motion")
	assert.Contains(t, keys, "lighting.spotlight")
	assert.Contains(t, keys, "notifications.push")
	assert.Contains(t, keys, "system.ntp")
}

func TestBuildConfigSections_SingleSection(t *testing.T) {
	m := reolink.NewMockServer("secret")
	defer m.Close()
	c := newConfigTestClient(t, m)

	fields, err := buildConfigSections(context.Background(), c, 0, "audio")
	require.NoError(t, err)
	require.NotEmpty(t, fields)

	for _, key := range keysOf(fields) {
		assert.False(t, strings.Contains(key, "."), "single section uses bare keys, got %q", key)
	}
	assert.Contains(t, keysOf(fields), "record")
	assert.Contains(t, keysOf(fields), "volume")
}

func TestBuildConfigSections_FailedReadDropsOnlyItsFields(t *testing.T) {
	m := reolink.NewMockServer("secret")
	defer m.Close()
	c := newConfigTestClient(t, m)

	// A model without picture tuning must not break the rest of the dump.
	m.FailCommand("GetImage", -9)

	fields, err := buildConfigSections(context.Background(), c, 0, "")
	require.NoError(t, err)

	keys := keysOf(fields)
	assert.NotContains(t, keys, "image.brightness")
	assert.Contains(t, keys, "image.daynight", "other reads in the same section survive")
	assert.Contains(t, keys, "device.model")
	assert.Contains(t, keys, "audio.record")
}

func TestBuildConfigSections_UnknownSection(t *testing.T) {
	m := reolink.NewMockServer("secret")
	defer m.Close()
	c := newConfigTestClient(t, m)

	_, err := buildConfigSections(context.Background(), c, 0, "network")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown section")
}
