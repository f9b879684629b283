package cli

import (
	"strings"

	"github.com/dakv/rb-tree/set"
	"github.com/manifoldco/promptui"
)

const doneItem = "[Done]"

// Select asks for one of choices, listed in natural order.
func Select(label string, choices ...string) (string, error) {
	names := set.NewStringSet(choices...).Entries()

	sel := &promptui.Select{
		Label:    label,
		Items:    names,
		Searcher: prefixSearcher(names, false),
	}

	_, value, err := sel.Run()

	return value, err
}

// MultiSelect repeatedly asks for one of the remaining choices until the user
// picks [Done] or nothing is left. The picks come back in natural order.
func MultiSelect(label string, choices ...string) ([]string, error) {
	if len(choices) == 0 {
		return nil, nil
	}

	remaining := set.NewStringSet(choices...)
	selections := set.NewStringSet()

	for !remaining.IsEmpty() {
		names := append([]string{doneItem}, remaining.Entries()...)

		sel := &promptui.Select{
			Label:    label,
			Items:    names,
			Searcher: prefixSearcher(names, true),
		}

		idx, value, err := sel.Run()
		if err != nil {
			return nil, err
		}

		if idx == 0 {
			break
		}

		selections.Add(value)
		remaining.Remove(value)
	}

	return selections.Entries(), nil
}

func prefixSearcher(names []string, skipFirst bool) func(input string, index int) bool {
	return func(input string, index int) bool {
		if skipFirst && index == 0 {
			return false
		}

		if len(input) == 0 {
			return false
		}

		return strings.HasPrefix(names[index], input)
	}
}
