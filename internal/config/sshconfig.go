package config

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// SSHHost is one alias from a Host block in ~/.ssh/config.
type SSHHost struct {
	Alias        string // the Host alias (e.g. "myserver")
	HostName     string // HostName directive (actual hostname / IP)
	Port         string // Port directive
	User         string // User directive
	IdentityFile string // IdentityFile path (~ expanded)
}

// DisplayHost returns the effective hostname (HostName if set, otherwise Alias).
func (h SSHHost) DisplayHost() string {
	if h.HostName != "" {
		return h.HostName
	}
	return h.Alias
}

// MatchSSHHost returns the entry whose alias is name, or nil.
func MatchSSHHost(hosts []SSHHost, name string) *SSHHost {
	for i := range hosts {
		if strings.EqualFold(hosts[i].Alias, name) {
			return &hosts[i]
		}
	}
	return nil
}

// sshConfigPath returns ~/.ssh/config.
func sshConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".ssh", "config")
}

// LoadSSHConfig reads and parses ~/.ssh/config. A missing or unreadable file
// yields no hosts.
func LoadSSHConfig() []SSHHost {
	return LoadSSHConfigFrom(sshConfigPath())
}

// LoadSSHConfigFrom reads and parses an SSH config file at the given path.
func LoadSSHConfigFrom(path string) []SSHHost {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer func() { _ = f.Close() }()

	return ParseSSHConfig(f)
}

// ParseSSHConfig parses SSH config content from a reader. A Host line naming
// several aliases yields one entry per alias; wildcard patterns are skipped.
// As in ssh(1), the first value given for a directive wins.
func ParseSSHConfig(r io.Reader) []SSHHost {
	var hosts []SSHHost
	var block []SSHHost

	home, _ := os.UserHomeDir()
	flush := func() {
		hosts = append(hosts, block...)
		block = nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value := splitSSHConfigLine(line)
		if key == "" {
			continue
		}

		key = strings.ToLower(key)
		if key == "host" || key == "match" {
			flush()
			if key == "host" {
				for _, alias := range strings.Fields(value) {
					if !isWildcard(alias) {
						block = append(block, SSHHost{Alias: alias})
					}
				}
			}
			continue
		}

		for i := range block {
			h := &block[i]
			switch key {
			case "hostname":
				setOnce(&h.HostName, value)
			case "port":
				setOnce(&h.Port, value)
			case "user":
				setOnce(&h.User, value)
			case "identityfile":
				setOnce(&h.IdentityFile, expandTilde(value, home))
			}
		}
	}
	flush()

	return hosts
}

func setOnce(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// splitSSHConfigLine splits a line like "HostName example.com" or
// "HostName=example.com" into key and value.
func splitSSHConfigLine(line string) (string, string) {
	if idx := strings.IndexAny(line, "= \t"); idx >= 0 {
		key := strings.TrimSpace(line[:idx])
		val := strings.TrimSpace(strings.TrimLeft(line[idx:], "= \t"))
		return key, val
	}
	return line, ""
}

// isWildcard returns true if the host alias contains glob characters.
func isWildcard(alias string) bool {
	return strings.ContainsAny(alias, "*?!")
}

// expandTilde replaces a leading ~ with the user's home directory.
func expandTilde(path, home string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	if path == "~" {
		return home
	}
	return path
}
