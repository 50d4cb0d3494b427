// SPDX-License-Identifier: MIT

// Package config resolves camera connection settings from CLI flags with
// environment fallback. A .env file in the working directory is honoured
// so credentials can stay out of shell history.
package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/ManuGH/reolinkctl/internal/log"
)

// Environment variable names recognised as flag fallbacks.
const (
	EnvHost     = "REOLINK_HOST"
	EnvUser     = "REOLINK_USER"
	EnvPassword = "REOLINK_PASSWORD"
	EnvChannel  = "REOLINK_CHANNEL"
)

// DefaultUser is assumed when neither flag nor environment supplies one.
const DefaultUser = "admin"

var (
	ErrMissingHost     = errors.New("camera host required: use --host or set REOLINK_HOST")
	ErrMissingPassword = errors.New("password required: use --password or set REOLINK_PASSWORD")
)

// Connection holds everything needed to reach one camera channel.
type Connection struct {
	Host     string
	User     string
	Password string
	Channel  int
}

// Flags carries the raw connection flags as given on the command line.
// Empty strings mean "not set"; Channel uses -1 as the unset marker so
// channel 0 stays expressible.
type Flags struct {
	Host     string
	User     string
	Password string
	Channel  int
}

// Resolve merges flags with environment variables, flags winning.
// Validation errors are precondition failures: they must surface before
// any camera interaction.
func Resolve(f Flags) (Connection, error) {
	logger := log.WithComponent("config")

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Debug().Err(err).Msg("skipping .env file")
	}

	conn := Connection{
		Host:     firstNonEmpty(f.Host, os.Getenv(EnvHost)),
		User:     firstNonEmpty(f.User, os.Getenv(EnvUser), DefaultUser),
		Password: firstNonEmpty(f.Password, os.Getenv(EnvPassword)),
		Channel:  f.Channel,
	}

	if conn.Channel < 0 {
		conn.Channel = 0
		if env := os.Getenv(EnvChannel); env != "" {
			ch, err := strconv.Atoi(env)
			if err != nil || ch < 0 {
				logger.Warn().Str("value", env).Msg("ignoring invalid REOLINK_CHANNEL")
			} else {
				conn.Channel = ch
			}
		}
	}

	if conn.Host == "" {
		return Connection{}, ErrMissingHost
	}
	if conn.Password == "" {
		return Connection{}, ErrMissingPassword
	}

	logger.Debug().
		Str("host", conn.Host).
		Str("user", conn.User).
		Int("channel", conn.Channel).
		Msg("resolved connection settings")

	return conn, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
