package compare_test

import (
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/dakv/rb-tree/compare"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func sortWith[T any](values []T, f compare.Func[T]) []T {
	out := slices.Clone(values)
	slices.SortFunc(out, func(a, b T) int { return int(f(a, b)) })

	return out
}

func TestOrdering(t *testing.T) {
	t.Parallel()

	t.Run("string", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Less", compare.Less.String())
		assert.Equal(t, "Equal", compare.Equal.String())
		assert.Equal(t, "Greater", compare.Greater.String())
		assert.Equal(t, "Ordering(invalid)", compare.Ordering(7).String())
	})

	t.Run("reverse", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, compare.Greater, compare.Less.Reverse())
		assert.Equal(t, compare.Less, compare.Greater.Reverse())
		assert.Equal(t, compare.Equal, compare.Equal.Reverse())
	})

	t.Run("from int", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, compare.Less, compare.FromInt(-42))
		assert.Equal(t, compare.Equal, compare.FromInt(0))
		assert.Equal(t, compare.Greater, compare.FromInt(9))
	})
}

func TestNatural(t *testing.T) {
	t.Parallel()

	assert.Equal(t, compare.Less, compare.Natural(1, 2))
	assert.Equal(t, compare.Equal, compare.Natural("a", "a"))
	assert.Equal(t, compare.Greater, compare.Natural(2.5, 1.0))

	f := compare.Func[int](compare.Natural[int])
	assert.True(t, f.Less(1, 2))
	assert.False(t, f.Less(2, 2))
	assert.Equal(t, compare.Greater, f.Compare(3, 2))
}

func TestInt(t *testing.T) {
	t.Parallel()

	// Larger values first, expressed C-style.
	desc := compare.Int(func(a, b int) int { return b - a })

	assert.Equal(t, []int{3, 2, 1}, sortWith([]int{1, 3, 2}, desc))
	assert.Equal(t, compare.Equal, desc(5, 5))
}

func TestReverse(t *testing.T) {
	t.Parallel()

	rev := compare.Reverse(compare.Natural[int])

	assert.Equal(t, []int{9, 5, 1}, sortWith([]int{5, 1, 9}, rev))
}

func TestByAndThen(t *testing.T) {
	t.Parallel()

	type person struct {
		Name string
		Age  int
	}

	people := []person{
		{Name: "carol", Age: 30},
		{Name: "alice", Age: 30},
		{Name: "bob", Age: 25},
	}

	byAge := compare.By(func(p person) int { return p.Age }, compare.Natural[int])
	byName := compare.By(func(p person) string { return p.Name }, compare.Natural[string])

	assert.Equal(t, compare.Equal, byAge(people[0], people[1]))

	sorted := sortWith(people, compare.Then(byAge, byName))
	assert.Equal(t, []person{
		{Name: "bob", Age: 25},
		{Name: "alice", Age: 30},
		{Name: "carol", Age: 30},
	}, sorted)
}

func TestNaturalString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, compare.Less, compare.NaturalString("file2", "file10"))
	assert.Equal(t, compare.Greater, compare.NaturalString("file10", "file2"))
	assert.Equal(t, compare.Equal, compare.NaturalString("file", "file"))

	sorted := sortWith([]string{"img12", "img10", "img2", "img1"}, compare.NaturalString)
	assert.Equal(t, []string{"img1", "img2", "img10", "img12"}, sorted)
}

func TestCollated(t *testing.T) {
	t.Parallel()

	english := compare.Collated(language.English)

	// Bytewise order would put "B" first.
	assert.Equal(t, []string{"a", "B", "c"}, sortWith([]string{"c", "B", "a"}, english))
	assert.Equal(t, compare.Equal, english("same", "same"))

	// Distinct strings never compare equal, even if they collate together.
	a, b := "x", strings.ToUpper("x")
	assert.NotEqual(t, compare.Equal, english(a, b))
	assert.Equal(t, english(a, b), english(b, a).Reverse())
}

func TestCollated_Concurrent(t *testing.T) {
	t.Parallel()

	english := compare.Collated(language.English)

	var wg sync.WaitGroup

	for range 8 {
		wg.Go(func() {
			for range 500 {
				assert.Equal(t, compare.Less, english("apple", "Banana"))
				assert.Equal(t, compare.Greater, english("cherry", "Banana"))
			}
		})
	}

	wg.Wait()
}
