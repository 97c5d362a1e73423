package ssh

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

const scheme = "scp://"

// Target identifies a file on a remote host.
type Target struct {
	User    string
	Host    string
	Port    string
	Path    string
	KeyPath string
}

// IsRemote reports whether arg names a remote file.
func IsRemote(arg string) bool {
	return strings.HasPrefix(arg, scheme)
}

// ParseTarget parses scp://[user@]host[:port]/path. A path starting with
// /~/ is taken relative to the remote home directory.
func ParseTarget(raw string) (Target, error) {
	if !IsRemote(raw) {
		return Target{}, fmt.Errorf("%q is not an %s URL", raw, scheme)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Target{}, fmt.Errorf("parse %q: %w", raw, err)
	}
	if u.Hostname() == "" {
		return Target{}, fmt.Errorf("%q: missing host", raw)
	}

	path := u.Path
	switch {
	case path == "" || path == "/":
		return Target{}, fmt.Errorf("%q: missing file path", raw)
	case strings.HasPrefix(path, "/~/"):
		path = path[len("/~/"):]
	}

	t := Target{
		Host: u.Hostname(),
		Port: u.Port(),
		Path: path,
	}
	if u.User != nil {
		t.User = u.User.Username()
	}
	return t, nil
}

// String formats the target back into scp:// form with the port omitted
// when it is the default.
func (t Target) String() string {
	host := t.Host
	if t.Port != "" && t.Port != "22" {
		host = net.JoinHostPort(t.Host, t.Port)
	} else if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	if t.User != "" {
		host = t.User + "@" + host
	}
	path := t.Path
	if !strings.HasPrefix(path, "/") {
		path = "/~/" + path
	}
	return scheme + host + path
}
