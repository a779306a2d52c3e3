// SPDX-License-Identifier: MIT

// Package logging builds the slog loggers used by the command-line tools.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lmittmann/tint"
)

// ErrInvalidLevel indicates a level name slog does not understand.
var ErrInvalidLevel = errors.New("logging: invalid level")

// TimeFormat is the clock layout of console records.
const TimeFormat = "15:04:05"

// ParseLevel maps debug, info, warn or error (any case, optional +/-N
// offset as accepted by slog) to a level. The empty name is info.
func ParseLevel(name string) (slog.Level, error) {
	if strings.TrimSpace(name) == "" {
		return slog.LevelInfo, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("ParseLevel: %q: %w", name, ErrInvalidLevel)
	}

	return lvl, nil
}

// New returns a tint console logger writing to w at level.
// noColor disables ANSI escapes, e.g. when w is not a terminal.
func New(w io.Writer, level slog.Level, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: TimeFormat,
		NoColor:    noColor,
	}))
}
