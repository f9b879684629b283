package rbtree

import (
	"fmt"
	"log/slog"
	"strings"
)

// terminalMarker stands for a nil child in Render output.
const terminalMarker = "___"

// logValueLimit caps how many values LogValue spells out.
const logValueLimit = 32

// Render draws the tree one level per line. Each internal node is written as
// color:value (B:2, R:4) and prefixed with its parent's value, terminals as ___:
//
//	B:2
//	2->B:1 2->B:3
//	1->___ 1->___ 3->___ 3->R:4
//	4->___ 4->___
//
// The format is meant for people debugging the tree, not for parsing.
func (t *Tree[T]) Render() string {
	var levels []*strings.Builder

	levels = renderLevel(t.root, "", 0, levels)

	lines := make([]string, len(levels))
	for i, level := range levels {
		lines[i] = level.String()
	}

	return strings.Join(lines, "\n")
}

func renderLevel[T any](h *node[T], prefix string, depth int, levels []*strings.Builder) []*strings.Builder {
	if depth == len(levels) {
		levels = append(levels, &strings.Builder{})
	} else {
		levels[depth].WriteByte(' ')
	}

	line := levels[depth]
	line.WriteString(prefix)

	if h == nil {
		line.WriteString(terminalMarker)

		return levels
	}

	fmt.Fprintf(line, "%s:%v", h.color.tag(), h.value)

	childPrefix := fmt.Sprintf("%v->", h.value)
	levels = renderLevel(h.left, childPrefix, depth+1, levels)

	return renderLevel(h.right, childPrefix, depth+1, levels)
}

// LogValue implements slog.LogValuer. Small trees log every value; larger ones
// log their size and bounds.
func (t *Tree[T]) LogValue() slog.Value {
	attrs := []slog.Attr{slog.Int("len", t.contained)}

	if t.contained <= logValueLimit {
		attrs = append(attrs, slog.Any("values", t.Ordered()))
	} else {
		attrs = append(attrs,
			slog.Any("min", t.Min().GetOrPanic()),
			slog.Any("max", t.Max().GetOrPanic()))
	}

	return slog.GroupValue(attrs...)
}
