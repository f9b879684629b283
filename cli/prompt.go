package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrEmptyInput is reported by PromptString when nothing was entered.
var ErrEmptyInput = errors.New("you must enter something")

// PromptConfirm asks a yes/no question. Answering no is not an error.
func PromptConfirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
	}
	_, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// PromptString asks for a non-empty line.
func PromptString(label string) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: nonEmpty,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
	}

	return prompt.Run()
}

func nonEmpty(s string) error {
	if len(s) == 0 {
		return ErrEmptyInput
	}

	return nil
}

func parseInt32(s string) (int, error) {
	val, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid integer: %w", err)
	}

	return int(val), nil
}

// PromptInt asks for a 32-bit integer.
func PromptInt(label string) (int, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(s string) error {
			_, err := parseInt32(s)

			return err
		},
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}

	txt, err := prompt.Run()
	if err != nil {
		return 0, err
	}

	return parseInt32(txt)
}

// PromptStringEmptyOk asks for a line that may be empty. The prompt starts
// out holding def.
func PromptStringEmptyOk(label string, def string) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: true,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
	}

	return prompt.Run()
}
