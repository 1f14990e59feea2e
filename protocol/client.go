package protocol

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Client is the remote peer's side of the protocol.
type Client struct {
	ch       Channel
	name     string
	opponent string
	logger   *slog.Logger
}

// Join sends the handshake: the player name, before anything else.
func Join(ch Channel, name, opponent string, opts ...option) (*Client, error) {
	if err := ch.Send([]byte(name)); err != nil {
		return nil, fmt.Errorf("sending player name: %w", err)
	}
	return &Client{
		ch:       ch,
		name:     name,
		opponent: opponent,
		logger:   newLogger(opts),
	}, nil
}

// Run displays the host's messages and answers every guess request until
// the host ends the game. It closes the channel before returning.
func (c *Client) Run(r Requester, display func(string)) error {
	for {
		msg, err := c.ch.Receive()
		if errors.Is(err, io.EOF) || (err == nil && len(msg) == 0) {
			c.logger.Info("game over, leaving", "player", c.name)
			return c.ch.Close()
		}
		if err != nil {
			return errors.Join(fmt.Errorf("receiving from host: %w", err), c.ch.Close())
		}
		text := string(msg)
		if listing, ok := strings.CutSuffix(text, Sentinel); ok {
			if listing != "" {
				display(listing)
			}
			if err := c.answer(r); err != nil {
				return errors.Join(err, c.ch.Close())
			}
			display("")
			continue
		}
		display(text)
	}
}

func (c *Client) answer(r Requester) error {
	g, err := AskGuess(r, []string{c.opponent})
	if err != nil {
		return fmt.Errorf("asking for a guess: %w", err)
	}
	c.logger.Debug("sending guess", "value", g.Value, "target", g.Target)
	return c.ch.Send([]byte(EncodeGuess(g)))
}
