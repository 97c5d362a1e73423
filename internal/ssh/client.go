package ssh

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/bramvdbogaerde/go-scp"
	"golang.org/x/crypto/ssh"
)

// defaultFileMode is used for remote files whose mode cannot be read.
const defaultFileMode = "0644"

// Client wraps an SSH connection.
type Client struct {
	client  *ssh.Client
	config  *ssh.ClientConfig
	address string
}

// New creates a new SSH client connected to host:port with the given auth methods.
func New(host, port, username string, authMethods []ssh.AuthMethod, hkCallback ssh.HostKeyCallback) (*Client, error) {
	cfg := &ssh.ClientConfig{
		User:            username,
		Auth:            authMethods,
		HostKeyCallback: hkCallback,
		Timeout:         10 * time.Second,
	}
	address := net.JoinHostPort(host, port)
	log.Printf("[ssh] dialling %s@%s", username, address)
	client, err := ssh.Dial("tcp", address, cfg)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", address, err)
	}
	return &Client{
		client:  client,
		config:  cfg,
		address: address,
	}, nil
}

// Address returns the host:port the client is connected to.
func (c *Client) Address() string { return c.address }

// Close closes the SSH connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// NewSession creates a new SSH session.
func (c *Client) NewSession() (*ssh.Session, error) {
	return c.client.NewSession()
}

// ReadFile copies the remote file at path into memory over SCP.
func (c *Client) ReadFile(ctx context.Context, path string) ([]byte, error) {
	scpClient, err := scp.NewClientBySSH(c.client)
	if err != nil {
		return nil, fmt.Errorf("scp session: %w", err)
	}
	defer scpClient.Close()

	var buf bytes.Buffer
	if err := scpClient.CopyFromRemotePassThru(ctx, &buf, path, nil); err != nil {
		return nil, fmt.Errorf("scp read %s: %w", path, err)
	}
	log.Printf("[ssh] read %s (%d bytes)", path, buf.Len())
	return buf.Bytes(), nil
}

// WriteFile replaces the remote file at path with data over SCP. perm is an
// octal mode string such as "0644".
func (c *Client) WriteFile(ctx context.Context, path string, data []byte, perm string) error {
	scpClient, err := scp.NewClientBySSH(c.client)
	if err != nil {
		return fmt.Errorf("scp session: %w", err)
	}
	defer scpClient.Close()

	if err := scpClient.CopyFile(ctx, bytes.NewReader(data), path, perm); err != nil {
		return fmt.Errorf("scp write %s: %w", path, err)
	}
	log.Printf("[ssh] wrote %s (%d bytes, mode %s)", path, len(data), perm)
	return nil
}

// FileMode returns the permission bits of the remote file at path as an
// octal string, for use with WriteFile.
func (c *Client) FileMode(path string) (mode string, retErr error) {
	session, err := c.client.NewSession()
	if err != nil {
		return "", err
	}
	defer func() {
		if cErr := session.Close(); cErr != nil && !errors.Is(cErr, io.EOF) {
			retErr = errors.Join(retErr, fmt.Errorf("close session: %w", cErr))
		}
	}()

	out, err := session.Output("stat -c %a " + shellQuote(path))
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	return parseMode(string(out))
}

// parseMode turns `stat -c %a` output such as "644\n" into "0644".
func parseMode(s string) (string, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseUint(s, 8, 32)
	if err != nil || n > 0o7777 {
		return "", fmt.Errorf("unexpected mode %q", s)
	}
	return fmt.Sprintf("0%o", n), nil
}

// shellQuote wraps a path in single quotes and escapes any single quotes within it,
// preventing shell injection when the path is used in a remote command.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}
