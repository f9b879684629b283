package compare

import (
	"sync"

	"facette.io/natsort"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NaturalString orders strings the way humans expect embedded numbers to sort,
// so "file2" comes before "file10".
func NaturalString(a, b string) Ordering {
	switch {
	case a == b:
		return Equal
	case natsort.Compare(a, b):
		return Less
	case natsort.Compare(b, a):
		return Greater
	default:
		// natsort treats some distinct strings (e.g. "a01" and "a1") as
		// equivalent; fall back to byte order so the result stays a total order.
		return Natural(a, b)
	}
}

// Collated returns a comparator that orders strings according to the collation
// rules of the given language. Strings the collator considers equal are ordered
// bytewise so distinct strings never compare Equal.
//
// The collate.Collator keeps internal buffers, so calls are serialized and the
// comparator is safe for concurrent use.
func Collated(tag language.Tag, opts ...collate.Option) Func[string] {
	var mu sync.Mutex

	coll := collate.New(tag, opts...)

	return func(a, b string) Ordering {
		mu.Lock()
		result := coll.CompareString(a, b)
		mu.Unlock()

		if o := FromInt(result); o != Equal {
			return o
		}

		return Natural(a, b)
	}
}
