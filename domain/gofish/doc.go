// Package gofish implements the Go Fish game engine for two players.
//
// # Core Components
//
// Game: The lifecycle every game follows: Pregame, a strictly alternating
// sequence of moves, and Postgame. Play drives any Game through it.
//
// GoFish: The concrete Game. It owns the deck and the seated players, resolves
// asks, detects completed sets and records every resolved turn in a ledger.
//
// Player: A seat at the table. A Local player answers through a
// protocol.Requester in this process; a Remote player answers over a
// protocol.Remote channel. The kind is fixed at construction.
//
// # Game Flow
//
// Pregame deals the hands and puts down any set already held. Each move asks
// the mover for a card value and a target, hands over every matching card or
// sends the mover fishing, then checks the mover for completed sets. The game
// ends once the deck and both hands are empty, and the players with the most
// sets win.
//
// # Broadcasting
//
// Every narrative message is printed once on the console when a local player
// is seated, and sent to every remote player over its channel.
package gofish
