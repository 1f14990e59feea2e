package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/go-fish/config"
	"github.com/luca-patrignani/go-fish/discovery"
	"github.com/luca-patrignani/go-fish/domain/deck"
	"github.com/luca-patrignani/go-fish/domain/gofish"
	"github.com/luca-patrignani/go-fish/network"
	"github.com/luca-patrignani/go-fish/protocol"
)

const reloadGames = "reload games"

type session struct {
	cfg    config.Config
	name   string
	term   terminal
	logger *slog.Logger
}

func (s session) connOptions() []network.ConnOption {
	return []network.ConnOption{
		network.WithMaxMessageSize(s.cfg.MaxMessageSize),
		network.WithLogger(s.logger),
	}
}

// hostAddress is the socket this process advertises its game on.
func hostAddress(cfg config.Config, name string, pid int) string {
	return network.SocketPath(cfg.SocketDir, network.SocketName(cfg.GameID, name, pid))
}

// host advertises a game, waits for one player to join and runs the game.
func (s session) host() error {
	address := hostAddress(s.cfg, s.name, os.Getpid())
	l, err := network.Bind(address, s.connOptions()...)
	if err != nil {
		return err
	}
	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Waiting for another player on %s ...", address))
	conn, err := l.Accept()
	if err != nil {
		spinner.Fail()
		return errors.Join(err, l.Close())
	}
	remote, err := protocol.Accept(conn, protocol.WithLogger(s.logger))
	if err != nil {
		spinner.Fail()
		return errors.Join(err, conn.Close())
	}
	spinner.Success(fmt.Sprintf("%s joined the game", remote.Name()))

	g := s.newGame()
	if err := g.AddPlayer(gofish.NewLocalPlayer(s.name, s.term)); err != nil {
		return errors.Join(err, conn.Close())
	}
	if err := g.AddPlayer(gofish.NewRemotePlayer(remote)); err != nil {
		return errors.Join(err, remote.Terminate())
	}
	if err := s.play(g); err != nil {
		// the address stays advertised until the connection is closed
		return errors.Join(err, conn.Close())
	}
	return nil
}

// join lists the advertised games until one can be reached, then plays as
// the remote peer of its host.
func (s session) join() error {
	d := discovery.New(s.cfg.GameID, discovery.WithDir(s.cfg.SocketDir))
	var (
		conn  *network.Conn
		entry discovery.Entry
	)
	for conn == nil {
		entries, err := d.List()
		if err != nil {
			return err
		}
		options := make([]string, 0, len(entries)+1)
		for _, e := range entries {
			options = append(options, e.String())
		}
		options = append(options, reloadGames)
		choice, err := s.term.Choice(options)
		if err != nil {
			return err
		}
		if choice == len(entries) {
			continue
		}
		entry = entries[choice]
		conn, err = network.Connect(entry.Path, s.connOptions()...)
		if errors.Is(err, network.ErrUnreachable) {
			pterm.Warning.Printfln("The game hosted by %s is gone", entry.Host)
			s.logger.Debug("stale game address", "address", entry.Path, "error", err)
			continue
		}
		if err != nil {
			return err
		}
	}
	if strings.EqualFold(entry.Host, s.name) {
		pterm.Warning.Printfln("%s is already playing in this game, the host will refuse you", entry.Host)
	}
	client, err := protocol.Join(conn, s.name, entry.Host, protocol.WithLogger(s.logger))
	if err != nil {
		return errors.Join(err, conn.Close())
	}
	pterm.Success.Printfln("Joined the game hosted by %s", entry.Host)
	return client.Run(s.term, printMessage)
}

// local seats two players sharing this terminal.
func (s session) local() error {
	other, err := s.term.Line(validName, "What is the other player's name?\n", "Please enter a name without commas or slashes.\n")
	if err != nil {
		return err
	}
	g := s.newGame()
	if err := g.AddPlayer(gofish.NewLocalPlayer(s.name, s.term)); err != nil {
		return err
	}
	if err := g.AddPlayer(gofish.NewLocalPlayer(other, s.term)); err != nil {
		return err
	}
	return s.play(g)
}

func (s session) newGame() *gofish.GoFish {
	return gofish.New(deck.New(), printMessage,
		gofish.WithHandSize(s.cfg.HandSize),
		gofish.WithLogger(s.logger),
	)
}

func (s session) play(g *gofish.GoFish) error {
	if err := gofish.Play(g); err != nil {
		return err
	}
	pterm.Println(scorePanel(g.Players(), g.Ledger().Len()))
	return nil
}
