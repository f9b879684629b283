package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// AnnotateError attaches slog key-value pairs to err. Loggers configured by
// this package print them next to the error. Returns nil if err is nil.
//
//	return logger.AnnotateError(err, "len", tree.Len())
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Now(), slog.LevelDebug, "", 0)
	r.Add(args...)

	var errAttrs []slog.Attr

	r.Attrs(func(attr slog.Attr) bool {
		errAttrs = append(errAttrs, attr)

		return true
	})

	return &slogError{
		err:   err,
		attrs: errAttrs,
	}
}

// slogError is an error carrying log attributes.
type slogError struct {
	err   error       // The underlying error
	attrs []slog.Attr // Structured logging attributes attached to this error
}

// Error returns the error message from the underlying error.
func (s *slogError) Error() string {
	return s.err.Error()
}

// Unwrap returns the underlying error, supporting error chain traversal.
func (s *slogError) Unwrap() error {
	return s.err
}

// Compile-time check that slogError implements error interface.
var _ error = (*slogError)(nil)

// slogErrorLogger unpacks errors made by AnnotateError into record attributes.
type slogErrorLogger struct {
	inner slog.Handler // The wrapped handler that performs actual logging
}

// Compile-time check that slogErrorLogger implements slog.Handler interface.
var _ slog.Handler = (*slogErrorLogger)(nil)

func (s *slogErrorLogger) Enabled(ctx context.Context, level slog.Level) bool {
	return s.inner.Enabled(ctx, level)
}

func (s *slogErrorLogger) Handle(ctx context.Context, record slog.Record) error {
	var (
		baseAttrs []slog.Attr
		errAttrs  []slog.Attr
	)

	record.Attrs(func(attr slog.Attr) bool {
		val := attr.Value.Any()

		switch v := val.(type) {
		case error:
			var se *slogError

			if errors.As(v, &se) {
				errAttr := slog.Attr{
					Key:   attr.Key,
					Value: slog.AnyValue(se.err),
				}

				baseAttrs = append(baseAttrs, errAttr)

				errAttrs = append(errAttrs, se.attrs...)
			} else {
				baseAttrs = append(baseAttrs, attr)
			}
		default:
			baseAttrs = append(baseAttrs, attr)
		}

		return true
	})

	if len(errAttrs) > 0 {
		r := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
		r.AddAttrs(baseAttrs...)
		r.AddAttrs(errAttrs...)

		return s.inner.Handle(ctx, r)
	}

	return s.inner.Handle(ctx, record)
}

func (s *slogErrorLogger) WithAttrs(attrs []slog.Attr) slog.Handler {
	handler := s.inner.WithAttrs(attrs)

	return &slogErrorLogger{
		inner: handler,
	}
}

func (s *slogErrorLogger) WithGroup(name string) slog.Handler {
	handler := s.inner.WithGroup(name)

	return &slogErrorLogger{
		inner: handler,
	}
}
