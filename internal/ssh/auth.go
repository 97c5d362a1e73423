package ssh

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

// PasswordAuth returns an AuthMethod for password authentication.
func PasswordAuth(password string) ssh.AuthMethod {
	return ssh.Password(password)
}

// PasswordCallbackAuth returns an AuthMethod that asks for the password only
// when the server requests it.
func PasswordCallbackAuth(prompt func() (string, error)) ssh.AuthMethod {
	return ssh.PasswordCallback(prompt)
}

// KeyboardInteractiveAuth answers keyboard-interactive challenges with the
// same prompt used for passwords.
func KeyboardInteractiveAuth(prompt func(question string) (string, error)) ssh.AuthMethod {
	return ssh.KeyboardInteractive(func(user, instruction string, questions []string, echos []bool) ([]string, error) {
		answers := make([]string, len(questions))
		for i, q := range questions {
			a, err := prompt(q)
			if err != nil {
				return nil, err
			}
			answers[i] = a
		}
		return answers, nil
	})
}

// PubKeyAuth returns an AuthMethod for public key authentication from a key file.
func PubKeyAuth(keyPath string) (ssh.AuthMethod, error) {
	key, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, err
	}
	signer, err := ssh.ParsePrivateKey(key)
	if err != nil {
		return nil, err
	}
	return ssh.PublicKeys(signer), nil
}

// AgentAuth returns an AuthMethod backed by the agent at $SSH_AUTH_SOCK.
func AgentAuth() (ssh.AuthMethod, error) {
	sock := os.Getenv("SSH_AUTH_SOCK")
	if sock == "" {
		return nil, errors.New("SSH_AUTH_SOCK not set")
	}
	conn, err := net.Dial("unix", sock)
	if err != nil {
		return nil, fmt.Errorf("connect to agent: %w", err)
	}
	return ssh.PublicKeysCallback(agent.NewClient(conn).Signers), nil
}

// DefaultKeyPaths returns the standard private key locations under ~/.ssh
// that exist.
func DefaultKeyPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	var paths []string
	for _, name := range []string{"id_ed25519", "id_ecdsa", "id_rsa"} {
		p := filepath.Join(home, ".ssh", name)
		if _, err := os.Stat(p); err == nil {
			paths = append(paths, p)
		}
	}
	return paths
}

// AuthMethods assembles the auth chain tried for a connection: the explicit
// key file, the agent, default keys, then password and keyboard-interactive
// through prompt.
func AuthMethods(keyPath string, prompt func(question string) (string, error)) []ssh.AuthMethod {
	var methods []ssh.AuthMethod

	if keyPath != "" {
		if am, err := PubKeyAuth(keyPath); err == nil {
			methods = append(methods, am)
		} else {
			log.Printf("[ssh] identity file %s: %v", keyPath, err)
		}
	}

	if am, err := AgentAuth(); err == nil {
		methods = append(methods, am)
	}

	for _, kp := range DefaultKeyPaths() {
		if kp == keyPath {
			continue
		}
		if am, err := PubKeyAuth(kp); err == nil {
			methods = append(methods, am)
		}
	}

	if prompt != nil {
		methods = append(methods,
			PasswordCallbackAuth(func() (string, error) { return prompt("Password: ") }),
			KeyboardInteractiveAuth(prompt),
		)
	}
	return methods
}

// DefaultKnownHostsPath returns ~/.ssh/known_hosts.
func DefaultKnownHostsPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".ssh", "known_hosts")
}

// HostKeyCallback verifies host keys against the known_hosts file at path.
// Unknown hosts are passed to confirm; accepted keys are appended to the file.
// A key that differs from a recorded one is always rejected.
func HostKeyCallback(path string, confirm func(hostname string, key ssh.PublicKey) bool) ssh.HostKeyCallback {
	return func(hostname string, remote net.Addr, key ssh.PublicKey) error {
		check, err := knownhosts.New(path)
		if err == nil {
			err = check(hostname, remote, key)
			if err == nil {
				return nil
			}
			var keyErr *knownhosts.KeyError
			if !errors.As(err, &keyErr) || len(keyErr.Want) > 0 {
				return fmt.Errorf("host key verification failed for %s: %w", hostname, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("read known hosts: %w", err)
		}

		if confirm == nil || !confirm(hostname, key) {
			return fmt.Errorf("host key for %s rejected", hostname)
		}
		if err := appendKnownHost(path, hostname, key); err != nil {
			log.Printf("[ssh] could not record host key: %v", err)
		}
		return nil
	}
}

func appendKnownHost(path, hostname string, key ssh.PublicKey) (retErr error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return err
	}
	defer func() {
		if cErr := f.Close(); cErr != nil {
			retErr = errors.Join(retErr, fmt.Errorf("close known hosts: %w", cErr))
		}
	}()
	line := knownhosts.Line([]string{knownhosts.Normalize(hostname)}, key)
	_, err = fmt.Fprintln(f, line)
	return err
}
