package network

import (
	"fmt"
	"path/filepath"
)

// SocketName builds the name a host advertises its game under:
// <gameID>_<host>_<pid>. The pid keeps names unique when the same player
// hosts several games.
func SocketName(gameID, host string, pid int) string {
	return fmt.Sprintf("%s_%s_%d", gameID, host, pid)
}

// SocketPath joins the shared directory and a socket name.
func SocketPath(dir, name string) string {
	return filepath.Join(dir, name)
}
