package deck

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/go-fish/domain/cards"
)

// Size is the number of cards in a full deck.
const Size = 52

var ErrExhausted = errors.New("deck is empty")

// Receiver is anything a card can be dealt to. *cards.Hand implements it.
type Receiver interface {
	AddCard(c cards.Card)
}

// Deck is the draw pile of a game. Drawn cards are removed from it, so
// Remaining is always the number of cards still available.
type Deck struct {
	cards    []cards.Card
	shuffler Shuffler
}

type option func(Deck) Deck

// New creates a full deck in canonical order (spades to clubs, ace to king
// within each suit) and shuffles it once.
func New(opts ...option) *Deck {
	d := Deck{
		cards:    canonical(),
		shuffler: KyberShuffler{},
	}
	for _, opt := range opts {
		d = opt(d)
	}
	if d.shuffler != nil {
		d.shuffler.Shuffle(d.cards)
	}
	return &d
}

// WithShuffler replaces the default shuffler.
func WithShuffler(s Shuffler) option {
	return func(d Deck) Deck {
		d.shuffler = s
		return d
	}
}

// Unshuffled keeps the canonical order.
func Unshuffled() option {
	return WithShuffler(nil)
}

// WithCards stacks the deck with exactly the given cards, top card first.
// The cards are not shuffled.
func WithCards(stack ...cards.Card) option {
	return func(d Deck) Deck {
		d.cards = append([]cards.Card(nil), stack...)
		d.shuffler = nil
		return d
	}
}

func canonical() []cards.Card {
	all := make([]cards.Card, 0, Size)
	for _, s := range cards.Suits() {
		for _, v := range cards.Values() {
			all = append(all, cards.MustCard(v, s))
		}
	}
	return all
}

// Draw removes the top card from the deck and returns it.
func (d *Deck) Draw() (cards.Card, error) {
	if len(d.cards) == 0 {
		return cards.Card{}, ErrExhausted
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// Deal gives n cards to every receiver, one card per receiver per round in
// the given order. Running out of cards mid-deal is an error and the
// receivers are left with a partial deal.
func (d *Deck) Deal(n int, receivers ...Receiver) error {
	for round := 0; round < n; round++ {
		for i, r := range receivers {
			c, err := d.Draw()
			if err != nil {
				return fmt.Errorf("dealing round %d to receiver %d: %w", round+1, i, err)
			}
			r.AddCard(c)
		}
	}
	return nil
}
