// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import "errors"

var (
	ErrUnknownMethod     = errors.New("unknown tally method")
	ErrUnsupportedMethod = errors.New("unsupported tally method")
	ErrUnknownKind       = errors.New("unknown poll kind")
	ErrNoOptions         = errors.New("poll has no options")
	ErrTooManyOptions    = errors.New("too many options")
	ErrDuplicateOption   = errors.New("duplicate option")
)
