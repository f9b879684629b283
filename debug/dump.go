// Package debug provides helpers for looking inside trees while developing.
// Nothing here is needed for normal use of the containers.
package debug

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dakv/rb-tree/logger"
)

// Renderer is any container that can draw its tree.
type Renderer interface {
	Render() string
}

// Verifier is a Renderer that can also check its red-black invariants.
type Verifier interface {
	Renderer
	Verify() error
}

// DumpTree writes the rendered tree to w, followed by a newline.
func DumpTree(w io.Writer, tree Renderer) error {
	_, err := fmt.Fprintln(w, tree.Render())

	return err
}

// LogTree logs the rendered tree at debug level. The render is skipped
// entirely when debug logging is off.
func LogTree(ctx context.Context, msg string, tree Renderer) {
	log := logger.Get(ctx)
	if !log.Enabled(ctx, slog.LevelDebug) {
		return
	}

	log.DebugContext(ctx, msg, "tree", tree.Render())
}

// CheckTree verifies tree and logs any violation at error level. The returned
// error carries the rendered tree as a log attribute.
func CheckTree(ctx context.Context, tree Verifier) error {
	err := tree.Verify()
	if err == nil {
		return nil
	}

	err = logger.AnnotateError(err, "tree", tree.Render())

	logger.Get(ctx).ErrorContext(ctx, "red-black invariants violated", "error", err)

	return err
}

// DumpJSON dumps the given value as indented JSON to the given writer.
func DumpJSON(v any, w io.Writer) error {
	encoder := json.NewEncoder(w)

	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("error marshaling to JSON: %w", err)
	}

	return nil
}

// PrettyJSONString returns v as indented JSON, or "" if it cannot be encoded.
func PrettyJSONString(v any) string {
	var buf strings.Builder

	if err := DumpJSON(v, &buf); err != nil {
		return ""
	}

	return strings.TrimSuffix(buf.String(), "\n")
}
