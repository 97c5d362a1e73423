package ssh

import (
	"context"
	"log"
	"time"
)

// transferTimeout bounds a single SCP read or write.
const transferTimeout = 30 * time.Second

// RemoteFile is a buffer backend for a file reached over SCP.
type RemoteFile struct {
	client *Client
	target Target
	mode   string
}

// NewRemoteFile returns a backend for target over client.
func NewRemoteFile(client *Client, target Target) *RemoteFile {
	return &RemoteFile{client: client, target: target}
}

// Name returns the scp:// URL of the file.
func (r *RemoteFile) Name() string { return r.target.String() }

// Read fetches the file and remembers its mode so a later Write keeps it.
func (r *RemoteFile) Read() ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), transferTimeout)
	defer cancel()

	if mode, err := r.client.FileMode(r.target.Path); err == nil {
		r.mode = mode
	} else {
		log.Printf("[ssh] mode of %s: %v", r.target.Path, err)
	}
	return r.client.ReadFile(ctx, r.target.Path)
}

// Write replaces the remote file, keeping the mode seen by Read.
func (r *RemoteFile) Write(data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), transferTimeout)
	defer cancel()

	mode := r.mode
	if mode == "" {
		mode = defaultFileMode
	}
	return r.client.WriteFile(ctx, r.target.Path, data, mode)
}
