package main

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/go-fish/domain/gofish"
	"github.com/luca-patrignani/go-fish/protocol"
)

// styleMessage renders a game message for the console. Hand listings are
// boxed, everything else is printed as is.
func styleMessage(msg string) string {
	if listing, ok := strings.CutPrefix(msg, protocol.HandHeader); ok {
		pbox := pterm.DefaultBox.WithHorizontalPadding(2)
		return pbox.WithTitle(pterm.LightCyan("Your hand")).WithTitleTopLeft().Sprint(listing)
	}
	return msg
}

func printMessage(msg string) {
	pterm.Println(styleMessage(msg))
}

// scorePanel summarizes the sets of every player and the number of turns played.
func scorePanel(players []*gofish.Player, turns int) string {
	var b strings.Builder
	for _, p := range players {
		b.WriteString(pterm.Sprintfln("%s: %d sets", pterm.LightCyan(p.Name()), p.Matches()))
	}
	b.WriteString(pterm.Sprintf("%d turns played", turns))
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(pterm.LightGreen("|SCORE|")).WithTitleTopCenter().Sprint(b.String())
}
