// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides small helpers for logging errors that have
// nowhere better to go, layered on log/slog.
package errors

import "log/slog"

// Log logs the given error if it is non-nil and returns it unchanged,
// so call sites can log and propagate in one expression.
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Log1 logs the error if it is non-nil and returns the first value,
// for wrapping two-value calls where only the value is needed.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error())
	}
	return v
}

// Ignore1 returns the first value, discarding the error.
// Use only where the error is genuinely irrelevant.
func Ignore1[T any](v T, _ error) T {
	return v
}
