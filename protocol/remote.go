package protocol

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/luca-patrignani/go-fish/domain/cards"
)

type option func(*slog.Logger) *slog.Logger

func WithLogger(logger *slog.Logger) option {
	return func(l *slog.Logger) *slog.Logger {
		if logger == nil {
			return l
		}
		return logger
	}
}

func newLogger(opts []option) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, opt := range opts {
		logger = opt(logger)
	}
	return logger
}

// Remote is the host's view of a peer playing from another process.
type Remote struct {
	ch     Channel
	name   string
	logger *slog.Logger
}

// Accept completes the handshake on the host side: it reads the remote
// player's name, which must be the first message on the channel.
func Accept(ch Channel, opts ...option) (*Remote, error) {
	logger := newLogger(opts)
	msg, err := ch.Receive()
	if err != nil {
		return nil, fmt.Errorf("reading remote player name: %w", err)
	}
	name := string(msg)
	if strings.TrimSpace(name) == "" || strings.Contains(name, ",") {
		return nil, fmt.Errorf("%w: invalid player name %q", ErrProtocolViolation, name)
	}
	logger.Info("remote player joined", "player", name)
	return &Remote{ch: ch, name: name, logger: logger}, nil
}

func (r *Remote) Name() string {
	return r.name
}

// RequestGuess sends the hand listing and the Sentinel, then waits for the
// remote player's reply.
func (r *Remote) RequestGuess(hand *cards.Hand) (Guess, error) {
	if err := r.ch.Send([]byte(FormatHand(hand))); err != nil {
		return Guess{}, err
	}
	if err := r.ch.Send([]byte(Sentinel)); err != nil {
		return Guess{}, err
	}
	msg, err := r.ch.Receive()
	if errors.Is(err, io.EOF) {
		return Guess{}, fmt.Errorf("%s left the game: %w", r.name, err)
	}
	if err != nil {
		return Guess{}, err
	}
	g, err := ParseGuess(string(msg))
	if err != nil {
		return Guess{}, err
	}
	r.logger.Debug("guess received", "player", r.name, "value", g.Value, "target", g.Target)
	return g, nil
}

// Notify sends one narrative line.
func (r *Remote) Notify(msg string) error {
	if msg == "" {
		// an empty frame would read as the end of the game
		msg = "\n"
	}
	return r.ch.Send([]byte(msg))
}

// Terminate sends the end-of-game message and closes the channel.
func (r *Remote) Terminate() error {
	sendErr := r.ch.Send(nil)
	return errors.Join(sendErr, r.ch.Close())
}
