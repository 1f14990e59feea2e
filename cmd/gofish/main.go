package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/go-fish/config"
	"github.com/luca-patrignani/go-fish/protocol"
)

const (
	roleCreate = "create"
	roleJoin   = "join"
	roleLocal  = "local"
)

var roles = []string{roleCreate, roleJoin, roleLocal}

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("gofish: %v", err)
	}

	logger := slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(cfg.LogLevel))))

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Go ", pterm.FgLightBlue.ToStyle()),
		putils.LettersFromStringWithStyle("Fish", pterm.FgCyan.ToStyle()),
	).Render()
	pterm.Info.Println("Welcome to Go Fish!")

	var term terminal
	name, err := term.Line(validName, "What is your name?\n", "Please enter a name without commas or slashes.\n")
	if err != nil {
		config.Exitf("gofish: %v", err)
	}
	pterm.Info.Printfln("Would you like to create a game or join a game, %s?", name)
	role, err := term.Choice(roles)
	if err != nil {
		config.Exitf("gofish: %v", err)
	}

	s := session{cfg: cfg, name: name, term: term, logger: logger}
	switch roles[role] {
	case roleCreate:
		err = s.host()
	case roleJoin:
		err = s.join()
	case roleLocal:
		err = s.local()
	}
	if errors.Is(err, protocol.ErrProtocolViolation) {
		logger.Error("the other player broke the protocol", "error", err)
		os.Exit(1)
	}
	if err != nil {
		logger.Error("game aborted", "error", err)
		os.Exit(1)
	}
}

func ptermLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case level <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case level <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
