// Package discovery finds the games hosted on this machine by listing the
// shared socket directory. Hosts advertise a game simply by binding a socket
// named <gameID>_<host>_<pid> there; nothing else is announced.
//
// Typical usage:
//
//	d := discovery.New("gofish", discovery.WithDir("/tmp"))
//	entries, err := d.List()
//	if err != nil {
//		return err
//	}
//	for _, e := range entries {
//		fmt.Printf("%s hosted by %s\n", e.Path, e.Host)
//	}
//
// Listing is a snapshot: an entry may disappear before a client connects to
// it, so callers must be ready to list again.
package discovery
