package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dakv/rb-tree/compare"
	"golang.org/x/text/language"
)

var errUnknownOrder = errors.New("unknown order")

// orderNames lists the plain --order values; collate:<tag> comes on top.
var orderNames = []string{"lexical", "natural", "reverse", "collate:en"} //nolint:gochecknoglobals

// parseOrder turns an --order value into a key comparator.
func parseOrder(name string) (compare.Func[string], error) {
	if tag, ok := strings.CutPrefix(name, "collate:"); ok {
		parsed, err := language.Parse(tag)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", errUnknownOrder, name, err)
		}

		return compare.Collated(parsed), nil
	}

	switch name {
	case "lexical":
		return compare.Natural[string], nil
	case "natural":
		return compare.NaturalString, nil
	case "reverse":
		return compare.Reverse(compare.Natural[string]), nil
	default:
		return nil, fmt.Errorf("%w %q (want one of %v or collate:<bcp47 tag>)",
			errUnknownOrder, name, orderNames)
	}
}
