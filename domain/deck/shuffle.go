package deck

import (
	"math/big"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"

	"github.com/luca-patrignani/go-fish/domain/cards"
)

// Shuffler permutes a slice of cards in place.
type Shuffler interface {
	Shuffle(c []cards.Card)
}

// ShufflerFunc adapts a function to the Shuffler interface.
type ShufflerFunc func(c []cards.Card)

func (f ShufflerFunc) Shuffle(c []cards.Card) {
	f(c)
}

var suite suites.Suite = suites.MustFind("Ed25519")

// KyberShuffler performs a Fisher-Yates shuffle drawing its indexes from the
// random stream of the Ed25519 suite.
type KyberShuffler struct{}

func (KyberShuffler) Shuffle(c []cards.Card) {
	stream := suite.RandomStream()
	for i := len(c) - 1; i > 0; i-- {
		j := random.Int(big.NewInt(int64(i+1)), stream).Int64()
		c[i], c[j] = c[j], c[i]
	}
}
