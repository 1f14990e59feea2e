package gofish

import (
	"github.com/luca-patrignani/go-fish/domain/cards"
	"github.com/luca-patrignani/go-fish/protocol"
)

// Kind tells how a player supplies its guesses.
type Kind int

const (
	Local Kind = iota
	Remote
)

func (k Kind) String() string {
	switch k {
	case Local:
		return "local"
	case Remote:
		return "remote"
	default:
		return "unknown"
	}
}

type Player struct {
	name      string
	kind      Kind
	hand      *cards.Hand
	matches   int
	requester protocol.Requester
	remote    *protocol.Remote
}

// NewLocalPlayer seats a player operated from this process through requester.
func NewLocalPlayer(name string, requester protocol.Requester) *Player {
	return &Player{
		name:      name,
		kind:      Local,
		hand:      cards.NewHand(cards.ByValue),
		requester: requester,
	}
}

// NewRemotePlayer seats the peer behind remote, named by its handshake.
func NewRemotePlayer(remote *protocol.Remote) *Player {
	return &Player{
		name:   remote.Name(),
		kind:   Remote,
		hand:   cards.NewHand(cards.ByValue),
		remote: remote,
	}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Kind() Kind {
	return p.kind
}

func (p *Player) Hand() *cards.Hand {
	return p.hand
}

// Matches returns the number of sets the player has put down.
func (p *Player) Matches() int {
	return p.matches
}

// AddCard puts c in the player's hand. It lets a Player receive a deal.
func (p *Player) AddCard(c cards.Card) {
	p.hand.AddCard(c)
}

func (p *Player) String() string {
	return p.name
}
