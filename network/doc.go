// Package network provides the byte channel two Go Fish processes talk
// over. It is a unix stream socket bound to a named address in a shared
// directory, so the host can be found by listing that directory.
//
// # Core Components
//
// Conn: One end of an established channel. It carries framed messages:
// every Send is delivered by exactly one Receive on the other end.
//
// Listen: Binds the address, waits for exactly one peer and returns the
// connected Conn. The Conn owns the address and removes it on Close.
//
// Connect: Dials an existing address. Missing or stale addresses are
// reported as ErrUnreachable.
//
// # Framing
//
// Messages are separated by the ASCII record separator (0x1E). A message
// may be empty; an empty message is how the host signals the end of a game.
// A peer closing its side is reported as io.EOF by Receive.
//
// # Blocking
//
// Listen, Send and Receive block without timeout. A hung peer stalls the
// caller; there is no reconnection.
package network
