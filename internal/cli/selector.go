package cli

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

// Selector presents choices to the user and returns the chosen one, or
// none when the user declined to pick anything.
type Selector interface {
	Select(label string, options []string) (choice string, ok bool, err error)
}

// PromptSelector asks interactively via an arrow-key driven list.
type PromptSelector struct {
	// Size is the amount of visible list entries, promptui's default when
	// zero.
	Size int
}

func (selector PromptSelector) Select(label string, options []string) (string, bool, error) {
	prompt := promptui.Select{
		Label: label,
		Items: options,
		Size:  selector.Size,
	}

	_, choice, err := prompt.Run()
	if err != nil {
		// Ctrl-C and friends simply mean the user wants none of it.
		if errors.Is(err, promptui.ErrInterrupt) ||
			errors.Is(err, promptui.ErrAbort) ||
			errors.Is(err, promptui.ErrEOF) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("error running selection prompt: %w", err)
	}

	return choice, true, nil
}

// FirstSelector prints all options and takes the first one. It serves
// --first and environments without a terminal.
type FirstSelector struct{}

func (FirstSelector) Select(label string, options []string) (string, bool, error) {
	if len(options) == 0 {
		return "", false, nil
	}

	fmt.Println(label + ":")
	for _, option := range options {
		fmt.Println("  " + option)
	}

	return options[0], true, nil
}
