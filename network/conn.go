package network

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net"
	"os"
)

// Separator terminates every frame on the wire.
const Separator byte = 0x1E

var (
	ErrUnreachable      = errors.New("address unreachable")
	ErrMessageTooLarge  = errors.New("message too large")
	ErrSeparatorInFrame = errors.New("message contains the frame separator")
)

// Conn is one end of a channel between two processes.
type Conn struct {
	conn     net.Conn
	reader   *bufio.Reader
	listener *Listener // set on the accepting side only
	maxSize  int
	logger   *slog.Logger
}

func newConn(c net.Conn, l *Listener, cfg connConfig) *Conn {
	return &Conn{
		conn: c,
		// one extra byte leaves room for the separator of a full-size frame
		reader:   bufio.NewReaderSize(c, cfg.maxMessageSize+1),
		listener: l,
		maxSize:  cfg.maxMessageSize,
		logger:   cfg.logger,
	}
}

// Listener owns a bound address until it is closed.
type Listener struct {
	l       *net.UnixListener
	address string
	cfg     connConfig
}

// Bind removes any stale file at address and binds a unix stream socket
// there. The address becomes visible to Connect as soon as Bind returns.
func Bind(address string, opts ...ConnOption) (*Listener, error) {
	cfg := newConnConfig(opts)
	if err := os.Remove(address); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("removing stale address %s: %w", address, err)
	}
	l, err := net.ListenUnix("unix", &net.UnixAddr{Name: address, Net: "unix"})
	if err != nil {
		return nil, fmt.Errorf("binding %s: %w", address, err)
	}
	l.SetUnlinkOnClose(true)
	cfg.logger.Debug("address bound", "address", address)
	return &Listener{l: l, address: address, cfg: cfg}, nil
}

// Accept blocks until a peer connects. The returned Conn takes ownership of
// the listener: closing the Conn also closes the listener and removes the
// address.
func (l *Listener) Accept() (*Conn, error) {
	c, err := l.l.Accept()
	if err != nil {
		return nil, fmt.Errorf("accepting on %s: %w", l.address, err)
	}
	l.cfg.logger.Debug("peer connected", "address", l.address)
	return newConn(c, l, l.cfg), nil
}

func (l *Listener) Address() string {
	return l.address
}

// Close stops listening and removes the address from the filesystem.
func (l *Listener) Close() error {
	err := l.l.Close()
	if rmErr := os.Remove(l.address); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
		err = errors.Join(err, rmErr)
	}
	return err
}

// Listen binds address and blocks until exactly one peer has connected.
func Listen(address string, opts ...ConnOption) (*Conn, error) {
	l, err := Bind(address, opts...)
	if err != nil {
		return nil, err
	}
	c, err := l.Accept()
	if err != nil {
		return nil, errors.Join(err, l.Close())
	}
	return c, nil
}

// Connect dials a listening address. Any failure to reach it, including an
// address that vanished after being discovered, wraps ErrUnreachable.
func Connect(address string, opts ...ConnOption) (*Conn, error) {
	cfg := newConnConfig(opts)
	c, err := net.Dial("unix", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreachable, address, err)
	}
	cfg.logger.Debug("connected", "address", address)
	return newConn(c, nil, cfg), nil
}

// Send writes payload as a single frame.
func (c *Conn) Send(payload []byte) error {
	if len(payload) > c.maxSize {
		return fmt.Errorf("%w: %d bytes, limit is %d", ErrMessageTooLarge, len(payload), c.maxSize)
	}
	if bytes.IndexByte(payload, Separator) >= 0 {
		return ErrSeparatorInFrame
	}
	frame := make([]byte, 0, len(payload)+1)
	frame = append(frame, payload...)
	frame = append(frame, Separator)
	if _, err := c.conn.Write(frame); err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	c.logger.Debug("message sent", "bytes", len(payload))
	return nil
}

// Receive blocks until a whole frame has arrived and returns it without
// the separator. It returns io.EOF once the peer has closed the channel.
func (c *Conn) Receive() ([]byte, error) {
	frame, err := c.reader.ReadSlice(Separator)
	switch {
	case errors.Is(err, bufio.ErrBufferFull):
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrMessageTooLarge, c.maxSize)
	case errors.Is(err, io.EOF):
		if len(frame) > 0 {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, io.EOF
	case err != nil:
		return nil, fmt.Errorf("receiving message: %w", err)
	}
	msg := bytes.Clone(frame[:len(frame)-1])
	c.logger.Debug("message received", "bytes", len(msg))
	return msg, nil
}

// Address returns the socket address: the bound one on the accepting side,
// the dialed one on the connecting side.
func (c *Conn) Address() string {
	if c.listener != nil {
		return c.listener.address
	}
	return c.conn.RemoteAddr().String()
}

// Close closes the channel. On the accepting side it also closes the
// listener and removes the address.
func (c *Conn) Close() error {
	err := c.conn.Close()
	if c.listener != nil {
		err = errors.Join(err, c.listener.Close())
	}
	return err
}
