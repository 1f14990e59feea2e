package protocol

import (
	"fmt"
	"slices"
	"strings"

	"github.com/luca-patrignani/go-fish/domain/cards"
)

// Requester reads validated input from whoever operates a player.
type Requester interface {
	// Line prompts until validate accepts the answer, printing errText
	// after every rejected one.
	Line(validate func(string) bool, prompt, errText string) (string, error)
	// Choice shows a numbered list and returns the index picked.
	Choice(options []string) (int, error)
}

const (
	valuePrompt  = "What card do you want to guess?\n"
	valueError   = "Please enter a valid card value.\nValid card values are 2-10, jack, queen, king, and ace.\n"
	targetPrompt = "Which player do you want to ask?\n"
)

// AskGuess prompts for a card value and for one of targets. Both answers are
// validated before returning, so the result always encodes to a well-formed
// reply. The target is returned lower case.
func AskGuess(r Requester, targets []string) (Guess, error) {
	answer, err := r.Line(cards.IsValueName, valuePrompt, valueError)
	if err != nil {
		return Guess{}, err
	}
	value, err := cards.ParseValue(answer)
	if err != nil {
		return Guess{}, err
	}
	lowered := make([]string, len(targets))
	for i, t := range targets {
		lowered[i] = strings.ToLower(t)
	}
	isTarget := func(s string) bool {
		return slices.Contains(lowered, strings.ToLower(s))
	}
	targetError := fmt.Sprintf("Please enter a valid player.\nValid players are %s.\n", strings.Join(targets, ", "))
	target, err := r.Line(isTarget, targetPrompt, targetError)
	if err != nil {
		return Guess{}, err
	}
	return Guess{Value: value, Target: strings.ToLower(target)}, nil
}
