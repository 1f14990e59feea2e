package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
)

const genesisPrevHash = "0"

var ErrBrokenChain = errors.New("broken turn chain")

// Log is a hash chain of turns. Record 0 is the genesis record and holds no turn.
type Log struct {
	id      string
	records []Record
	mu      sync.RWMutex
}

// New creates a log for a new game, containing only the genesis record.
func New() *Log {
	id := uuid.New().String()
	genesis := Record{Index: 0, GameID: id, PrevHash: genesisPrevHash}
	genesis.Hash = calculateHash(genesis)
	return &Log{id: id, records: []Record{genesis}}
}

// ID identifies the game the log belongs to.
func (l *Log) ID() string {
	return l.id
}

// Append links turn after the latest record and returns the new record.
func (l *Log) Append(turn Turn) Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	latest := l.records[len(l.records)-1]
	r := Record{
		Index:    latest.Index + 1,
		GameID:   l.id,
		PrevHash: latest.Hash,
		Turn:     turn,
	}
	r.Hash = calculateHash(r)
	l.records = append(l.records, r)
	return r
}

// Latest returns the most recent record.
func (l *Log) Latest() Record {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.records[len(l.records)-1]
}

// Len returns the number of turns recorded, genesis excluded.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records) - 1
}

// Records returns a copy of every record, genesis first.
func (l *Log) Records() []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.records)
}

// Turns returns the recorded turns in order.
func (l *Log) Turns() []Turn {
	l.mu.RLock()
	defer l.mu.RUnlock()
	turns := make([]Turn, 0, len(l.records)-1)
	for _, r := range l.records[1:] {
		turns = append(turns, r.Turn)
	}
	return turns
}

// Verify checks the genesis record and the link and hash of every record.
func (l *Log) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.records) == 0 || l.records[0].PrevHash != genesisPrevHash {
		return fmt.Errorf("%w: invalid genesis record", ErrBrokenChain)
	}
	for i, r := range l.records {
		if r.Hash != calculateHash(r) {
			return fmt.Errorf("%w: record %d has hash %s, expected %s", ErrBrokenChain, i, r.Hash, calculateHash(r))
		}
		if i == 0 {
			continue
		}
		if r.GameID != l.id {
			return fmt.Errorf("%w: record %d belongs to game %s", ErrBrokenChain, i, r.GameID)
		}
		previous := l.records[i-1]
		if r.Index != previous.Index+1 {
			return fmt.Errorf("%w: record %d has index %d", ErrBrokenChain, i, r.Index)
		}
		if r.PrevHash != previous.Hash {
			return fmt.Errorf("%w: record %d does not link to record %d", ErrBrokenChain, i, i-1)
		}
	}
	return nil
}

// calculateHash hashes the index, the game id, the previous hash and the
// JSON encoding of the turn.
func calculateHash(r Record) string {
	turnBytes, _ := json.Marshal(r.Turn)
	data := fmt.Sprintf("%d%s%s%s", r.Index, r.GameID, r.PrevHash, turnBytes)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
