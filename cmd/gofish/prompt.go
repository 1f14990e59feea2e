package main

import (
	"errors"
	"slices"
	"strings"

	"github.com/pterm/pterm"
)

var errNoSelection = errors.New("no option selected")

// terminal reads answers from the interactive pterm inputs.
type terminal struct{}

func (terminal) Line(validate func(string) bool, prompt, errText string) (string, error) {
	for {
		answer, err := pterm.DefaultInteractiveTextInput.WithDefaultText(strings.TrimSuffix(prompt, "\n")).Show()
		if err != nil {
			return "", err
		}
		if validate(answer) {
			return answer, nil
		}
		pterm.Error.Print(errText)
	}
}

func (terminal) Choice(options []string) (int, error) {
	selected, err := pterm.DefaultInteractiveSelect.WithDefaultText("Select an option").WithOptions(options).Show()
	if err != nil {
		return 0, err
	}
	i := slices.Index(options, selected)
	if i < 0 {
		return 0, errNoSelection
	}
	return i, nil
}

// validName accepts names that fit both the wire format and a socket file name.
func validName(name string) bool {
	return strings.TrimSpace(name) != "" && !strings.ContainsAny(name, ",/")
}
