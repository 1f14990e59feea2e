package protocol

import (
	"errors"
	"fmt"
	"strings"

	"github.com/luca-patrignani/go-fish/domain/cards"
)

const (
	// Sentinel tells the remote peer it is its turn to guess.
	Sentinel   = "🃏"
	HandHeader = "Your hand is:\n"
)

var ErrProtocolViolation = errors.New("protocol violation")

// Channel is the transport the protocol runs over. *network.Conn implements it.
type Channel interface {
	Send(payload []byte) error
	Receive() ([]byte, error)
	Close() error
}

// Guess is a request for every card of Value held by the player named Target.
type Guess struct {
	Value  cards.Value
	Target string
}

// EncodeGuess renders the reply a remote peer sends: "<value>,<target>",
// lower case.
func EncodeGuess(g Guess) string {
	return strings.ToLower(g.Value.String() + "," + g.Target)
}

// ParseGuess reads a reply produced by EncodeGuess.
func ParseGuess(msg string) (Guess, error) {
	value, target, ok := strings.Cut(msg, ",")
	if !ok {
		return Guess{}, fmt.Errorf("%w: guess %q has no target", ErrProtocolViolation, msg)
	}
	if !cards.IsValueName(value) {
		return Guess{}, fmt.Errorf("%w: unknown card value %q", ErrProtocolViolation, value)
	}
	v, err := cards.ParseValue(value)
	if err != nil {
		return Guess{}, fmt.Errorf("%w: %w", ErrProtocolViolation, err)
	}
	if target == "" || strings.TrimSpace(target) != target {
		return Guess{}, fmt.Errorf("%w: invalid target %q", ErrProtocolViolation, target)
	}
	return Guess{Value: v, Target: target}, nil
}

// FormatHand renders the hand listing sent before the Sentinel.
func FormatHand(h *cards.Hand) string {
	return HandHeader + h.String()
}
