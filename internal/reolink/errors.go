// SPDX-License-Identifier: MIT

package reolink

import (
	"errors"
	"fmt"
)

var (
	// Sentinel errors for errors.Is checks at the boundary.
	ErrAuthFailed   = errors.New("camera: authentication failed")
	ErrNotFound     = errors.New("camera: resource not found")
	ErrUnreachable  = errors.New("camera: host unreachable or transport failure")
	ErrCameraError  = errors.New("camera: device reported an error")
	ErrBadResponse  = errors.New("camera: invalid response format or malformed data")
	ErrTimeout      = errors.New("camera: request timed out")
	ErrNotLoggedIn  = errors.New("camera: no active session")
	ErrNotSupported = errors.New("camera: command not supported by this device")
)

// Camera-side rspCode values with a known meaning.
const (
	rspCodeLoginRequired = -6
	rspCodeLoginFailed   = -7
	rspCodeNotSupported  = -9
	rspCodeNotExist      = -12
)

// APIError wraps a sentinel with the operation, HTTP status and the
// camera's own error payload for diagnostics.
type APIError struct {
	Sentinel  error
	Operation string
	Status    int
	RspCode   int
	Detail    string
	Err       error // nested lower-level error (e.g. net.Error)
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("reolink: %s: %v", e.Operation, e.Sentinel)
	if e.Status > 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	if e.RspCode != 0 {
		msg = fmt.Sprintf("%s (rspCode %d)", msg, e.RspCode)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return e.Sentinel
}

// sentinelForRspCode maps a camera error payload onto a sentinel.
func sentinelForRspCode(code int) error {
	switch code {
	case rspCodeLoginRequired, rspCodeLoginFailed:
		return ErrAuthFailed
	case rspCodeNotSupported:
		return ErrNotSupported
	case rspCodeNotExist:
		return ErrNotFound
	default:
		return ErrCameraError
	}
}
