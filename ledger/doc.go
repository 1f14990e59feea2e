// Package ledger keeps an append-only record of the turns played in a game.
//
// # Core Components
//
// Log: A hash chain of records. Each record stores the hash of the record
// before it, so any later modification breaks the chain.
//
// Record: One resolved turn together with its position and hashes.
//
// # Usage
//
// Create a Log with New, Append one Turn per resolved ask, and call Verify
// to check that the chain is intact. The log lives in memory only and is
// discarded with the game.
package ledger
