package cards

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

var ErrCardNotFound = errors.New("card not found in hand")

// SortMode selects the key a Hand is ordered by.
type SortMode int

const (
	ByValue SortMode = iota // value first, then suit
	BySuit                  // suit first, then value
)

func (m SortMode) String() string {
	if m == BySuit {
		return "suit"
	}
	return "value"
}

// Hand is a collection of cards kept sorted by its SortMode.
// keys[i] is the ordering key of cards[i].
type Hand struct {
	cards []Card
	keys  []int
	mode  SortMode
}

// NewHand creates a hand sorted by mode containing the given cards.
func NewHand(mode SortMode, cards ...Card) *Hand {
	h := &Hand{mode: mode}
	for _, c := range cards {
		h.AddCard(c)
	}
	return h
}

func (h *Hand) key(c Card) int {
	if h.mode == BySuit {
		return int(c.suit)*13 + c.value.index()
	}
	return c.value.index()*4 + int(c.suit)
}

// AddCard inserts c after every card with a key lower or equal to its own.
func (h *Hand) AddCard(c Card) {
	key := h.key(c)
	i := sort.Search(len(h.keys), func(i int) bool { return h.keys[i] > key })
	h.keys = slices.Insert(h.keys, i, key)
	h.cards = slices.Insert(h.cards, i, c)
}

// RemoveCard removes the first card equal to c.
func (h *Hand) RemoveCard(c Card) error {
	i := slices.Index(h.cards, c)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrCardNotFound, c)
	}
	h.cards = slices.Delete(h.cards, i, i+1)
	h.keys = slices.Delete(h.keys, i, i+1)
	return nil
}

// ChangeSortMode reorders the hand under mode by re-inserting every card.
// It does nothing when the hand is already sorted by mode.
func (h *Hand) ChangeSortMode(mode SortMode) {
	if h.mode == mode {
		return
	}
	old := h.cards
	h.mode = mode
	h.cards = make([]Card, 0, len(old))
	h.keys = make([]int, 0, len(old))
	for _, c := range old {
		h.AddCard(c)
	}
}

func (h *Hand) SortMode() SortMode {
	return h.mode
}

// Cards returns a copy of the cards in hand order.
func (h *Hand) Cards() []Card {
	return slices.Clone(h.cards)
}

func (h *Hand) Len() int {
	return len(h.cards)
}

func (h *Hand) Contains(c Card) bool {
	return slices.Contains(h.cards, c)
}

// CountValue returns how many cards of value v are in the hand.
func (h *Hand) CountValue(v Value) int {
	n := 0
	for _, c := range h.cards {
		if c.value == v {
			n++
		}
	}
	return n
}

// TakeValue removes every card of value v and returns them in the order
// they were held.
func (h *Hand) TakeValue(v Value) []Card {
	var taken []Card
	for _, c := range h.Cards() {
		if c.value != v {
			continue
		}
		if err := h.RemoveCard(c); err != nil {
			// c was read from the hand itself
			panic(err)
		}
		taken = append(taken, c)
	}
	return taken
}

// HasSet reports whether the hand holds v in all four suits.
func (h *Hand) HasSet(v Value) bool {
	for _, s := range Suits() {
		if !h.Contains(Card{value: v, suit: s}) {
			return false
		}
	}
	return true
}

// Equal reports whether both hands hold the same cards, regardless of sort mode.
func (h *Hand) Equal(other *Hand) bool {
	a := h.Cards()
	b := other.Cards()
	slices.SortFunc(a, Compare)
	slices.SortFunc(b, Compare)
	return slices.Equal(a, b)
}

// String lists the cards in hand order separated by ", ".
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}
