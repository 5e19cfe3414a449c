// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lexscore

package lexscore

import "errors"

// Sentinel errors for lexscore operations.
var (
	// ErrInvalidRule indicates malformed or unsupported rule input.
	ErrInvalidRule = errors.New("invalid rule")
	// ErrInvalidClass indicates malformed or unknown character class.
	ErrInvalidClass = errors.New("invalid class")
	// ErrInvalidProfileName indicates profile name that is empty or escapes profiles directory.
	ErrInvalidProfileName = errors.New("invalid profile name")
	// ErrProfileNotFound indicates missing profile rules file.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrNilProvider indicates a nil Provider receiver.
	ErrNilProvider = errors.New("provider is nil")
)
