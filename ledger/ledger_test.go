package ledger

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewLog(t *testing.T) {
	l := New()
	if l.Len() != 0 {
		t.Fatalf("expected empty log, got %d turns", l.Len())
	}
	if l.Latest().Index != 0 || l.Latest().PrevHash != "0" {
		t.Fatalf("unexpected genesis record %+v", l.Latest())
	}
	if _, err := uuid.Parse(l.ID()); err != nil {
		t.Fatalf("expected a uuid game id, got %q: %v", l.ID(), err)
	}
	if New().ID() == l.ID() {
		t.Fatal("expected every log to get its own game id")
	}
	if err := l.Verify(); err != nil {
		t.Fatal(err)
	}
}

func TestAppendLinksRecords(t *testing.T) {
	l := New()
	genesis := l.Latest()
	first := l.Append(Turn{Mover: "alice", Target: "bob", Value: "queen", Received: 2})
	second := l.Append(Turn{Mover: "bob", Target: "alice", Value: "3", Drew: true})

	if first.Index != 1 || second.Index != 2 {
		t.Fatalf("expected indexes 1 and 2, got %d and %d", first.Index, second.Index)
	}
	if first.PrevHash != genesis.Hash || second.PrevHash != first.Hash {
		t.Fatal("records are not linked")
	}
	if l.Len() != 2 {
		t.Fatalf("expected 2 turns, got %d", l.Len())
	}
	turns := l.Turns()
	if turns[0].Mover != "alice" || turns[1].Mover != "bob" {
		t.Fatalf("unexpected turns %+v", turns)
	}
	if err := l.Verify(); err != nil {
		t.Fatal(err)
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	l := New()
	l.Append(Turn{Mover: "alice", Target: "bob", Value: "queen", Received: 1})
	l.Append(Turn{Mover: "bob", Target: "alice", Value: "king", Drew: true})

	l.records[1].Turn.Received = 3
	if err := l.Verify(); !errors.Is(err, ErrBrokenChain) {
		t.Fatalf("expected ErrBrokenChain, got %v", err)
	}
}

func TestVerifyDetectsRelinking(t *testing.T) {
	l := New()
	l.Append(Turn{Mover: "alice", Target: "bob", Value: "2"})
	l.Append(Turn{Mover: "bob", Target: "alice", Value: "5"})

	forged := l.records[2]
	forged.PrevHash = l.records[0].Hash
	forged.Hash = calculateHash(forged)
	l.records[2] = forged
	if err := l.Verify(); !errors.Is(err, ErrBrokenChain) {
		t.Fatalf("expected ErrBrokenChain, got %v", err)
	}
}

func TestRecordsIsCopy(t *testing.T) {
	l := New()
	l.Append(Turn{Mover: "alice"})
	records := l.Records()
	records[1].Turn.Mover = "mallory"
	if err := l.Verify(); err != nil {
		t.Fatal(err)
	}
}

func TestVerifyDetectsForeignRecord(t *testing.T) {
	l := New()
	other := New()
	l.Append(Turn{Mover: "alice"})
	foreign := other.Append(Turn{Mover: "bob"})
	foreign.Index = 2
	foreign.PrevHash = l.Latest().Hash
	foreign.Hash = calculateHash(foreign)
	l.records = append(l.records, foreign)
	if err := l.Verify(); !errors.Is(err, ErrBrokenChain) {
		t.Fatalf("expected ErrBrokenChain, got %v", err)
	}
}
