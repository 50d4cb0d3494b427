// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"testing"
)

func TestResolve_FlagsWinOverEnv(t *testing.T) {
	t.Setenv(EnvHost, "10.0.0.2")
	t.Setenv(EnvUser, "envuser")
	t.Setenv(EnvPassword, "envpass")

	conn, err := Resolve(Flags{Host: "10.0.0.9", User: "cli", Password: "clipass", Channel: 3})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if conn.Host != "10.0.0.9" || conn.User != "cli" || conn.Password != "clipass" || conn.Channel != 3 {
		t.Errorf("unexpected connection: %+v", conn)
	}
}

func TestResolve_EnvFallback(t *testing.T) {
	t.Setenv(EnvHost, "192.168.1.50")
	t.Setenv(EnvPassword, "secret")
	t.Setenv(EnvUser, "")
	t.Setenv(EnvChannel, "2")

	conn, err := Resolve(Flags{Channel: -1})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if conn.Host != "192.168.1.50" {
		t.Errorf("host = %q", conn.Host)
	}
	if conn.User != DefaultUser {
		t.Errorf("user = %q, want default %q", conn.User, DefaultUser)
	}
	if conn.Channel != 2 {
		t.Errorf("channel = %d, want 2", conn.Channel)
	}
}

func TestResolve_MissingHost(t *testing.T) {
	t.Setenv(EnvHost, "")
	t.Setenv(EnvPassword, "secret")

	_, err := Resolve(Flags{Channel: -1})
	if !errors.Is(err, ErrMissingHost) {
		t.Errorf("err = %v, want ErrMissingHost", err)
	}
}

func TestResolve_MissingPassword(t *testing.T) {
	t.Setenv(EnvHost, "192.168.1.50")
	t.Setenv(EnvPassword, "")

	_, err := Resolve(Flags{Channel: -1})
	if !errors.Is(err, ErrMissingPassword) {
		t.Errorf("err = %v, want ErrMissingPassword", err)
	}
}

func TestResolve_InvalidEnvChannelIgnored(t *testing.T) {
	t.Setenv(EnvHost, "192.168.1.50")
	t.Setenv(EnvPassword, "secret")
	t.Setenv(EnvChannel, "not-a-number")

	conn, err := Resolve(Flags{Channel: -1})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if conn.Channel != 0 {
		t.Errorf("channel = %d, want 0", conn.Channel)
	}
}
