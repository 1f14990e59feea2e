package cards

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidValue = errors.New("invalid card value")
	ErrInvalidSuit  = errors.New("invalid card suit")
)

// Value is the rank of a card, from Ace (1) to King (13).
type Value uint8

// Card value constants for ace and face cards
const (
	Ace   Value = 1  // A (lowest)
	Jack  Value = 11 // J
	Queen Value = 12 // Q
	King  Value = 13 // K
)

// Suit of a card, in canonical order.
type Suit uint8

const (
	Spades   Suit = iota // ♠
	Hearts               // ♥
	Diamonds             // ♦
	Clubs                // ♣
)

var valueNames = [...]string{"ace", "2", "3", "4", "5", "6", "7", "8", "9", "10", "jack", "queen", "king"}

var suitNames = [...]string{"spades", "hearts", "diamonds", "clubs"}

var suitGlyphs = [...]string{"♠", "♥", "♦", "♣"}

// Values returns the 13 card values from ace to king.
func Values() []Value {
	values := make([]Value, 0, len(valueNames))
	for v := Ace; v <= King; v++ {
		values = append(values, v)
	}
	return values
}

// Suits returns the four suits in canonical order.
func Suits() []Suit {
	return []Suit{Spades, Hearts, Diamonds, Clubs}
}

// Valid reports whether v is one of the 13 card values.
func (v Value) Valid() bool {
	return v >= Ace && v <= King
}

// String returns the lower-case name of the value ("ace", "7", "queen").
func (v Value) String() string {
	if !v.Valid() {
		return "?"
	}
	return valueNames[v-1]
}

// Plural returns the name used when speaking about several cards of this
// value ("queens", "7s").
func (v Value) Plural() string {
	return v.String() + "s"
}

// Short returns the display abbreviation of the value (A, J, Q, K or the number).
func (v Value) Short() string {
	switch v {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if !v.Valid() {
		return "?"
	}
	return strconv.Itoa(int(v))
}

func (v Value) index() int {
	return int(v) - 1
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s <= Clubs
}

func (s Suit) String() string {
	if !s.Valid() {
		return "?"
	}
	return suitNames[s]
}

// Glyph returns the unicode symbol of the suit.
func (s Suit) Glyph() string {
	if !s.Valid() {
		return "?"
	}
	return suitGlyphs[s]
}

// ParseValue converts user or wire input into a Value. It accepts the value
// names ("queen", "10"), the numbers 1 to 13 and the abbreviations A, J, Q
// and K, ignoring case and surrounding spaces.
func ParseValue(s string) (Value, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range valueNames {
		if s == name {
			return Value(i + 1), nil
		}
	}
	switch s {
	case "a":
		return Ace, nil
	case "j":
		return Jack, nil
	case "q":
		return Queen, nil
	case "k":
		return King, nil
	}
	if n, err := strconv.Atoi(s); err == nil && n >= int(Ace) && n <= int(King) {
		return Value(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidValue, s)
}

// IsValueName reports whether s is exactly one of the value names, ignoring
// case. It is the vocabulary guesses are validated against.
func IsValueName(s string) bool {
	s = strings.ToLower(s)
	for _, name := range valueNames {
		if s == name {
			return true
		}
	}
	return false
}

// ParseSuit accepts a suit name, its first letter or its glyph.
func ParseSuit(s string) (Suit, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i := range suitNames {
		if s == suitNames[i] || s == suitNames[i][:1] || s == suitGlyphs[i] {
			return Suit(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSuit, s)
}

// Card represents a playing card with value and suit.
type Card struct {
	value Value
	suit  Suit
}

// NewCard creates a new Card with validation.
func NewCard(value Value, suit Suit) (Card, error) {
	if !value.Valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidValue, value)
	}
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidSuit, suit)
	}
	return Card{value: value, suit: suit}, nil
}

// MustCard is like NewCard but panics on invalid input. It is meant for
// literals in tests and deck construction.
func MustCard(value Value, suit Suit) Card {
	c, err := NewCard(value, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCard is the inverse of Card.String: it reads the value abbreviation
// followed by the suit glyph, e.g. "10♥" or "Q♠".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	for i, glyph := range suitGlyphs {
		if rank, ok := strings.CutSuffix(s, glyph); ok {
			value, err := ParseValue(rank)
			if err != nil {
				return Card{}, err
			}
			return NewCard(value, Suit(i))
		}
	}
	return Card{}, fmt.Errorf("%w: %q", ErrInvalidSuit, s)
}

func (c Card) Value() Value {
	return c.value
}

func (c Card) Suit() Suit {
	return c.suit
}

// String returns the display form of the card: value abbreviation and suit glyph.
func (c Card) String() string {
	return c.value.Short() + c.suit.Glyph()
}

// Compare orders cards by value and then by suit. It returns a negative
// number when a < b, zero when a == b and a positive number when a > b.
func Compare(a, b Card) int {
	if a.value != b.value {
		return int(a.value) - int(b.value)
	}
	return int(a.suit) - int(b.suit)
}
