// Package protocol keeps a remote player's turn in step with the host.
//
// The host runs the game. The remote peer only answers guess requests and
// displays what the host tells it. Every message is one UTF-8 text frame.
//
// # Handshake
//
// The connecting peer sends its player name as the very first message. The
// host reads exactly that one message before play begins.
//
// # Turn
//
//  1. When the remote player moves, the host sends the hand listing
//     ("Your hand is:\n...") and then the Sentinel as its own message.
//  2. The remote peer prompts its operator, validates the answer locally and
//     replies "<value>,<target>" in lower case.
//  3. The host parses the reply and resolves the turn as for a local player.
//  4. Narrative lines are sent one per message and displayed verbatim.
//
// # End of game
//
// The host sends an empty message and closes the channel. The remote peer
// stops on the empty message or on io.EOF, closes its side and returns.
//
// A reply the host cannot parse, or that names anyone but the host player,
// is an ErrProtocolViolation and ends the game.
package protocol
