package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DefaultDir is the directory games are advertised in when none is set.
const DefaultDir = "/tmp"

// Entry is a hosted game found in the socket directory.
type Entry struct {
	Name string // socket file name
	Path string // full socket address
	Host string // name of the hosting player
	PID  int    // process id of the host
}

func (e Entry) String() string {
	return fmt.Sprintf("%s (pid %d)", e.Host, e.PID)
}

// Discover lists the games advertised under one game identifier.
type Discover struct {
	gameID string
	dir    string
}

type option func(Discover) Discover

func New(gameID string, opts ...option) *Discover {
	d := Discover{
		gameID: gameID,
		dir:    DefaultDir,
	}
	for _, opt := range opts {
		d = opt(d)
	}
	return &d
}

func WithDir(dir string) option {
	return func(d Discover) Discover {
		if dir != "" {
			d.dir = dir
		}
		return d
	}
}

func (d *Discover) Dir() string {
	return d.dir
}

// List returns the well-formed entries of the directory that contain the
// game identifier, sorted by name. A missing directory is not an error.
func (d *Discover) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(d.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", d.dir, err)
	}
	var entries []Entry
	for _, de := range dirEntries {
		if de.IsDir() || !strings.Contains(de.Name(), d.gameID) {
			continue
		}
		if e, ok := ParseEntry(d.dir, d.gameID, de.Name()); ok {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// ParseEntry splits a socket name of the form <gameID>_<host>_<pid>.
// The host may itself contain underscores.
func ParseEntry(dir, gameID, name string) (Entry, bool) {
	rest, ok := strings.CutPrefix(name, gameID+"_")
	if !ok {
		return Entry{}, false
	}
	sep := strings.LastIndexByte(rest, '_')
	if sep <= 0 {
		return Entry{}, false
	}
	pid, err := strconv.Atoi(rest[sep+1:])
	if err != nil || pid <= 0 {
		return Entry{}, false
	}
	return Entry{
		Name: name,
		Path: filepath.Join(dir, name),
		Host: rest[:sep],
		PID:  pid,
	}, true
}
