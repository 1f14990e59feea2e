package gofish

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"

	"github.com/luca-patrignani/go-fish/domain/cards"
	"github.com/luca-patrignani/go-fish/domain/deck"
	"github.com/luca-patrignani/go-fish/ledger"
	"github.com/luca-patrignani/go-fish/protocol"
)

const (
	DefaultHandSize = 7
	MaxPlayers      = 2
)

var (
	ErrPlayerCount     = errors.New("go fish needs exactly two players")
	ErrDuplicatePlayer = errors.New("player name already taken")
	ErrWrongStage      = errors.New("operation not allowed in the current stage")
)

// Game is the lifecycle driven by Play.
type Game interface {
	Pregame() error
	Players() []*Player
	Move(p *Player) error
	IsGameOver() bool
	Postgame() error
}

// Play runs g from pregame to postgame. Players move in seat order; the first
// move always happens and the game is checked for its end after every move.
func Play(g Game) error {
	if err := g.Pregame(); err != nil {
		return fmt.Errorf("pregame: %w", err)
	}
	players := g.Players()
	for turn := 0; ; turn++ {
		p := players[turn%len(players)]
		if err := g.Move(p); err != nil {
			return fmt.Errorf("move of %s: %w", p.Name(), err)
		}
		if g.IsGameOver() {
			break
		}
	}
	if err := g.Postgame(); err != nil {
		return fmt.Errorf("postgame: %w", err)
	}
	return nil
}

// Stage is where a GoFish game is in its lifecycle.
type Stage int

const (
	StagePregame Stage = iota
	StageTurn
	StagePostgame
	StageOver
)

func (s Stage) String() string {
	switch s {
	case StagePregame:
		return "pregame"
	case StageTurn:
		return "turn"
	case StagePostgame:
		return "postgame"
	case StageOver:
		return "over"
	default:
		return "unknown"
	}
}

// Output prints one message on the local console.
type Output func(msg string)

type GoFish struct {
	deck     *deck.Deck
	out      Output
	players  []*Player
	handSize int
	stage    Stage
	ledger   *ledger.Log
	logger   *slog.Logger
}

type option func(GoFish) GoFish

// WithHandSize sets how many cards each player is dealt.
func WithHandSize(n int) option {
	return func(g GoFish) GoFish {
		g.handSize = n
		return g
	}
}

func WithLogger(logger *slog.Logger) option {
	return func(g GoFish) GoFish {
		g.logger = logger
		return g
	}
}

// WithLedger records the turns in l instead of a fresh log.
func WithLedger(l *ledger.Log) option {
	return func(g GoFish) GoFish {
		g.ledger = l
		return g
	}
}

// New creates a game dealing from d and printing local messages to out.
func New(d *deck.Deck, out Output, opts ...option) *GoFish {
	g := GoFish{
		deck:     d,
		out:      out,
		handSize: DefaultHandSize,
		stage:    StagePregame,
		ledger:   ledger.New(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		g = opt(g)
	}
	return &g
}

// AddPlayer seats p. Names are compared case-insensitively.
func (g *GoFish) AddPlayer(p *Player) error {
	if g.stage != StagePregame {
		return fmt.Errorf("%w: adding a player in stage %s", ErrWrongStage, g.stage)
	}
	if len(g.players) >= MaxPlayers {
		return fmt.Errorf("%w: table is full", ErrPlayerCount)
	}
	if g.player(p.Name()) != nil {
		return fmt.Errorf("%w: %s", ErrDuplicatePlayer, p.Name())
	}
	g.players = append(g.players, p)
	g.logger.Debug("player seated", "player", p.Name(), "kind", p.Kind())
	return nil
}

func (g *GoFish) Players() []*Player {
	return append([]*Player(nil), g.players...)
}

func (g *GoFish) Stage() Stage {
	return g.stage
}

func (g *GoFish) Ledger() *ledger.Log {
	return g.ledger
}

func (g *GoFish) Deck() *deck.Deck {
	return g.deck
}

// Pregame deals every player a hand and puts down the sets dealt.
func (g *GoFish) Pregame() error {
	if g.stage != StagePregame {
		return fmt.Errorf("%w: pregame in stage %s", ErrWrongStage, g.stage)
	}
	if len(g.players) != MaxPlayers {
		return fmt.Errorf("%w: %d seated", ErrPlayerCount, len(g.players))
	}
	receivers := make([]deck.Receiver, len(g.players))
	for i, p := range g.players {
		receivers[i] = p
	}
	if err := g.deck.Deal(g.handSize, receivers...); err != nil {
		return fmt.Errorf("dealing %d cards: %w", g.handSize, err)
	}
	g.logger.Info("hands dealt", "hand_size", g.handSize, "deck_remaining", g.deck.Remaining())
	for _, p := range g.players {
		if _, err := g.CheckForMatches(p); err != nil {
			return err
		}
	}
	g.stage = StageTurn
	return nil
}

// Move plays one turn of p: it announces the turn, obtains a guess and
// resolves it.
func (g *GoFish) Move(p *Player) error {
	if g.stage != StageTurn {
		return fmt.Errorf("%w: move in stage %s", ErrWrongStage, g.stage)
	}
	if err := g.broadcast(fmt.Sprintf("It's %s's turn!\n", p.Name())); err != nil {
		return err
	}
	guess, err := g.guess(p)
	if err != nil {
		return err
	}
	target := g.player(guess.Target)
	if target == nil || target == p {
		return fmt.Errorf("%w: %s cannot ask %q", protocol.ErrProtocolViolation, p.Name(), guess.Target)
	}
	_, err = g.Ask(p, target, guess.Value)
	return err
}

func (g *GoFish) guess(p *Player) (protocol.Guess, error) {
	switch p.Kind() {
	case Remote:
		return p.remote.RequestGuess(p.hand)
	case Local:
		g.out(protocol.FormatHand(p.hand))
		var targets []string
		for _, other := range g.players {
			if other != p {
				targets = append(targets, other.Name())
			}
		}
		guess, err := protocol.AskGuess(p.requester, targets)
		if err != nil {
			return protocol.Guess{}, fmt.Errorf("reading guess of %s: %w", p.Name(), err)
		}
		g.out("")
		return guess, nil
	default:
		return protocol.Guess{}, fmt.Errorf("player %s has unknown kind %d", p.Name(), p.Kind())
	}
}

// Ask moves every card of value from target to mover. When target has none
// the mover draws a card, if any is left. The mover is then checked for sets
// and the turn is recorded. It returns the number of cards handed over.
func (g *GoFish) Ask(mover, target *Player, value cards.Value) (int, error) {
	if err := g.broadcast(fmt.Sprintf("%s, do you have any %s?", target.Name(), value.Plural())); err != nil {
		return 0, err
	}
	matches := target.hand.TakeValue(value)
	for _, c := range matches {
		mover.hand.AddCard(c)
	}
	turn := ledger.Turn{
		Mover:    mover.Name(),
		Target:   target.Name(),
		Value:    value.String(),
		Received: len(matches),
	}

	var msg string
	switch len(matches) {
	case 0:
		if err := g.broadcast(fmt.Sprintf("%s didn't have any %s\nGo fish!", target.Name(), value.Plural())); err != nil {
			return 0, err
		}
		if g.deck.Empty() {
			msg = "There are no cards left in the deck"
			break
		}
		c, err := g.deck.Draw()
		if err != nil {
			return 0, err
		}
		mover.hand.AddCard(c)
		turn.Drew = true
	case 1:
		msg = fmt.Sprintf("%s gave %s one %s", target.Name(), mover.Name(), value)
	case 2:
		msg = fmt.Sprintf("%s gave %s two %s", target.Name(), mover.Name(), value.Plural())
	case 3:
		msg = fmt.Sprintf("%s gave %s three %s", target.Name(), mover.Name(), value.Plural())
	default:
		msg = fmt.Sprintf("%s gave %s four %s", target.Name(), mover.Name(), value.Plural())
	}
	if msg != "" {
		if err := g.broadcast(msg); err != nil {
			return 0, err
		}
	}

	sets, err := g.CheckForMatches(mover)
	if err != nil {
		return 0, err
	}
	turn.Sets = sets
	record := g.ledger.Append(turn)
	g.logger.Debug("turn recorded", "index", record.Index, "mover", turn.Mover, "target", turn.Target,
		"value", turn.Value, "received", turn.Received, "drew", turn.Drew, "sets", turn.Sets)
	return len(matches), nil
}

// CheckForMatches puts down every complete set in p's hand and returns how
// many were found.
func (g *GoFish) CheckForMatches(p *Player) (int, error) {
	found := 0
	for _, v := range cards.Values() {
		if !p.hand.HasSet(v) {
			continue
		}
		p.hand.TakeValue(v)
		p.matches++
		found++
		if err := g.broadcast(fmt.Sprintf("%s put down four %s", p.Name(), v.Plural())); err != nil {
			return found, err
		}
	}
	return found, nil
}

// IsGameOver reports whether the deck and every hand are empty.
func (g *GoFish) IsGameOver() bool {
	if !g.deck.Empty() {
		return false
	}
	for _, p := range g.players {
		if p.hand.Len() > 0 {
			return false
		}
	}
	return true
}

// Winners returns the players with the most sets, in seat order.
func (g *GoFish) Winners() []*Player {
	best := -1
	var winners []*Player
	for _, p := range g.players {
		switch {
		case p.matches > best:
			best = p.matches
			winners = []*Player{p}
		case p.matches == best:
			winners = append(winners, p)
		}
	}
	return winners
}

// Postgame announces the winners and ends the session of every remote player.
func (g *GoFish) Postgame() error {
	if g.stage != StageTurn {
		return fmt.Errorf("%w: postgame in stage %s", ErrWrongStage, g.stage)
	}
	g.stage = StagePostgame
	announceErr := g.broadcast(announcement(g.Winners()))
	if err := g.ledger.Verify(); err != nil {
		g.logger.Error("turn ledger is inconsistent", "error", err)
	}
	var errs []error
	if announceErr != nil {
		errs = append(errs, announceErr)
	}
	for _, p := range g.players {
		if p.Kind() != Remote {
			continue
		}
		if err := p.remote.Terminate(); err != nil {
			errs = append(errs, fmt.Errorf("terminating %s: %w", p.Name(), err))
		}
	}
	g.stage = StageOver
	g.logger.Info("game over", "game", g.ledger.ID(), "turns", g.ledger.Len())
	return errors.Join(errs...)
}

func announcement(winners []*Player) string {
	names := make([]string, len(winners))
	for i, w := range winners {
		names[i] = w.Name()
	}
	if len(names) == 1 {
		return fmt.Sprintf("The winner is %s", names[0])
	}
	return fmt.Sprintf("The winners are %s, and %s", strings.Join(names[:len(names)-1], ", "), names[len(names)-1])
}

// broadcast prints msg once on the console if a local player is seated and
// sends it to every remote player.
func (g *GoFish) broadcast(msg string) error {
	printed := false
	for _, p := range g.players {
		switch p.Kind() {
		case Local:
			if !printed {
				g.out(msg)
				printed = true
			}
		case Remote:
			if err := p.remote.Notify(msg); err != nil {
				return fmt.Errorf("notifying %s: %w", p.Name(), err)
			}
		}
	}
	return nil
}

// player finds a seated player by case-folded name.
func (g *GoFish) player(name string) *Player {
	folded := cases.Fold().String(name)
	for _, p := range g.players {
		if cases.Fold().String(p.Name()) == folded {
			return p
		}
	}
	return nil
}
