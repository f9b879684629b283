// Package envutil reads typed configuration from environment variables.
package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrInvalidChoice   = errors.New("value is not one of the allowed choices")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// get returns a Reader for the given environment variable key.
func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(key string, opts ...Option[string]) Reader[string] {
	return apply(get(key), opts)
}

// Bool accepts the forms strconv.ParseBool does: 1, t, true, 0, f, false...
func Bool(key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(key), strconv.ParseBool), opts)
}

func Int(key string, opts ...Option[int]) Reader[int] {
	return apply(Map(get(key), func(value string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(value))
	}), opts)
}

// SlogLevel parses debug, info, warn or error, ignoring case and surrounding space.
func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(key), parseLevel), opts)
}

// OneOf reads a string that must be one of choices.
func OneOf(key string, choices []string, opts ...Option[string]) Reader[string] {
	return apply(Map(get(key), func(value string) (string, error) {
		if slices.Contains(choices, value) {
			return value, nil
		}

		return value, fmt.Errorf("%w: %q not in %v", ErrInvalidChoice, value, choices)
	}), opts)
}

func parseLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}
