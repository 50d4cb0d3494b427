// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestConfigureOnce(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf, Service: "test"})
	// Second call must be a no-op.
	Configure(Config{Level: "error", Output: nil, Service: "other"})

	lg := WithComponent("ingest")
	lg.Info().Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["service"] != "test" {
		t.Errorf("service = %v, want test", entry["service"])
	}
	if entry["component"] != "ingest" {
		t.Errorf("component = %v, want ingest", entry["component"])
	}
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	attached := zerolog.New(&buf).With().Str("scope", "ctx").Logger()
	ctx := attached.WithContext(context.Background())

	FromContext(ctx).Info().Msg("via context")
	if !bytes.Contains(buf.Bytes(), []byte(`"scope":"ctx"`)) {
		t.Errorf("context logger not used: %s", buf.String())
	}

	// Background context falls back to the base logger without panicking.
	FromContext(context.Background()).Debug().Msg("fallback")
}
