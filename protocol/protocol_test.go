package protocol

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/luca-patrignani/go-fish/domain/cards"
	"github.com/luca-patrignani/go-fish/network"
)

// pipe is an in-memory Channel. Closing one end makes the other end
// receive io.EOF.
type pipe struct {
	in   <-chan []byte
	out  chan<- []byte
	once sync.Once
}

func newPipe() (*pipe, *pipe) {
	a := make(chan []byte, 64)
	b := make(chan []byte, 64)
	return &pipe{in: a, out: b}, &pipe{in: b, out: a}
}

func (p *pipe) Send(payload []byte) error {
	p.out <- append([]byte(nil), payload...)
	return nil
}

func (p *pipe) Receive() ([]byte, error) {
	msg, ok := <-p.in
	if !ok {
		return nil, io.EOF
	}
	return msg, nil
}

func (p *pipe) Close() error {
	p.once.Do(func() { close(p.out) })
	return nil
}

// scriptedRequester answers prompts from a fixed list, skipping the
// answers the validator rejects.
type scriptedRequester struct {
	answers  []string
	rejected int
}

func (s *scriptedRequester) Line(validate func(string) bool, prompt, errText string) (string, error) {
	for len(s.answers) > 0 {
		a := s.answers[0]
		s.answers = s.answers[1:]
		if validate(a) {
			return a, nil
		}
		s.rejected++
	}
	return "", errors.New("out of answers")
}

func (s *scriptedRequester) Choice(options []string) (int, error) {
	return 0, nil
}

func TestParseGuess(t *testing.T) {
	g, err := ParseGuess("queen,alice")
	if err != nil {
		t.Fatal(err)
	}
	if g.Value != cards.Queen || g.Target != "alice" {
		t.Fatalf("expected (queen, alice), got (%s, %s)", g.Value, g.Target)
	}
	for _, bad := range []string{"", "queen", "joker,alice", "q,alice", "queen,", "queen, alice"} {
		if _, err := ParseGuess(bad); !errors.Is(err, ErrProtocolViolation) {
			t.Fatalf("expected ErrProtocolViolation for %q, got %v", bad, err)
		}
	}
}

func TestEncodeGuess(t *testing.T) {
	msg := EncodeGuess(Guess{Value: cards.Queen, Target: "Alice"})
	if msg != "queen,alice" {
		t.Fatalf("expected queen,alice, got %s", msg)
	}
	g, err := ParseGuess(EncodeGuess(Guess{Value: 10, Target: "bob"}))
	if err != nil {
		t.Fatal(err)
	}
	if g.Value != 10 || g.Target != "bob" {
		t.Fatalf("unexpected guess %+v", g)
	}
}

func TestAskGuess(t *testing.T) {
	r := &scriptedRequester{answers: []string{"joker", "Queen", "carol", "ALICE"}}
	g, err := AskGuess(r, []string{"Alice"})
	if err != nil {
		t.Fatal(err)
	}
	if g.Value != cards.Queen || g.Target != "alice" {
		t.Fatalf("expected (queen, alice), got (%s, %s)", g.Value, g.Target)
	}
	if r.rejected != 2 {
		t.Fatalf("expected 2 rejected answers, got %d", r.rejected)
	}
}

func TestHostRequestsGuess(t *testing.T) {
	host, remote := newPipe()
	hand := cards.NewHand(cards.ByValue, cards.MustCard(cards.Queen, cards.Hearts), cards.MustCard(3, cards.Clubs))
	errChan := make(chan error, 1)
	go func() {
		if err := remote.Send([]byte("bob")); err != nil {
			errChan <- err
			return
		}
		listing, _ := remote.Receive()
		if string(listing) != "Your hand is:\n3♣, Q♥" {
			errChan <- fmt.Errorf("unexpected listing %q", listing)
			return
		}
		sentinel, _ := remote.Receive()
		if string(sentinel) != Sentinel {
			errChan <- fmt.Errorf("expected sentinel, got %q", sentinel)
			return
		}
		errChan <- remote.Send([]byte("queen,alice"))
	}()
	r, err := Accept(host)
	if err != nil {
		t.Fatal(err)
	}
	if r.Name() != "bob" {
		t.Fatalf("expected bob, got %s", r.Name())
	}
	g, err := r.RequestGuess(hand)
	if err != nil {
		t.Fatal(err)
	}
	if g.Value != cards.Queen || g.Target != "alice" {
		t.Fatalf("expected (queen, alice), got (%s, %s)", g.Value, g.Target)
	}
	if err := <-errChan; err != nil {
		t.Fatal(err)
	}
}

func TestHostRejectsMalformedReply(t *testing.T) {
	host, remote := newPipe()
	_ = remote.Send([]byte("bob"))
	r, err := Accept(host)
	if err != nil {
		t.Fatal(err)
	}
	_ = remote.Send([]byte("queen;alice"))
	_, err = r.RequestGuess(cards.NewHand(cards.ByValue))
	if !errors.Is(err, ErrProtocolViolation) {
		t.Fatalf("expected ErrProtocolViolation, got %v", err)
	}
}

func TestAcceptRejectsEmptyName(t *testing.T) {
	host, remote := newPipe()
	_ = remote.Send([]byte("  "))
	if _, err := Accept(host); !errors.Is(err, ErrProtocolViolation) {
		t.Fatalf("expected ErrProtocolViolation, got %v", err)
	}
}

func TestClientRun(t *testing.T) {
	host, remote := newPipe()
	r := &scriptedRequester{answers: []string{"jack", "alice"}}
	var shown []string
	done := make(chan error, 1)
	go func() {
		c, err := Join(remote, "bob", "alice")
		if err != nil {
			done <- err
			return
		}
		done <- c.Run(r, func(s string) { shown = append(shown, s) })
	}()

	name, _ := host.Receive()
	if string(name) != "bob" {
		t.Fatalf("expected bob, got %q", name)
	}
	_ = host.Send([]byte("It's bob's turn!\n"))
	_ = host.Send([]byte(FormatHand(cards.NewHand(cards.ByValue, cards.MustCard(cards.Jack, cards.Spades)))))
	_ = host.Send([]byte(Sentinel))
	reply, err := host.Receive()
	if err != nil {
		t.Fatal(err)
	}
	if string(reply) != "jack,alice" {
		t.Fatalf("expected jack,alice, got %q", reply)
	}
	_ = host.Send([]byte("alice gave bob one jack"))
	_ = host.Send(nil)

	if err := <-done; err != nil {
		t.Fatal(err)
	}
	expected := []string{"It's bob's turn!\n", "Your hand is:\nJ♠", "", "alice gave bob one jack"}
	if len(shown) != len(expected) {
		t.Fatalf("expected %q, got %q", expected, shown)
	}
	for i := range expected {
		if shown[i] != expected[i] {
			t.Fatalf("expected %q, got %q", expected[i], shown[i])
		}
	}
	if _, err := host.Receive(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected client to close its side, got %v", err)
	}
}

func TestClientStopsOnEOF(t *testing.T) {
	host, remote := newPipe()
	c, err := Join(remote, "bob", "alice")
	if err != nil {
		t.Fatal(err)
	}
	_ = host.Close()
	if err := c.Run(&scriptedRequester{}, func(string) {}); err != nil {
		t.Fatal(err)
	}
}

func TestProtocolOverSocket(t *testing.T) {
	address := filepath.Join(t.TempDir(), network.SocketName("gofish", "alice", os.Getpid()))
	l, err := network.Bind(address)
	if err != nil {
		t.Fatal(err)
	}
	errChan := make(chan error, 1)
	go func() {
		conn, err := network.Connect(address)
		if err != nil {
			errChan <- err
			return
		}
		c, err := Join(conn, "bob", "alice")
		if err != nil {
			errChan <- err
			return
		}
		errChan <- c.Run(&scriptedRequester{answers: []string{"7", "alice"}}, func(string) {})
	}()
	conn, err := l.Accept()
	if err != nil {
		t.Fatal(err)
	}
	r, err := Accept(conn)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Notify("It's bob's turn!\n"); err != nil {
		t.Fatal(err)
	}
	g, err := r.RequestGuess(cards.NewHand(cards.ByValue, cards.MustCard(7, cards.Diamonds)))
	if err != nil {
		t.Fatal(err)
	}
	if g.Value != 7 || g.Target != "alice" {
		t.Fatalf("expected (7, alice), got (%s, %s)", g.Value, g.Target)
	}
	if err := r.Terminate(); err != nil {
		t.Fatal(err)
	}
	if err := <-errChan; err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(address); err == nil {
		t.Fatalf("expected %s to be removed", address)
	}
}
