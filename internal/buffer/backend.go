package buffer

import (
	"errors"
	"fmt"
	"os"
)

// Backend is the storage a Buffer is loaded from and written back to.
type Backend interface {
	// Name is the path shown to the user.
	Name() string
	Read() ([]byte, error)
	Write(data []byte) error
}

// LocalFile is a Backend for a file on the local filesystem.
type LocalFile struct {
	Path string
}

func (f LocalFile) Name() string { return f.Path }

// Read returns the whole file.
func (f LocalFile) Read() ([]byte, error) {
	return os.ReadFile(f.Path)
}

// Write truncates and rewrites the file. An existing file keeps its mode;
// a new one is created 0644.
func (f LocalFile) Write(data []byte) (retErr error) {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(f.Path); err == nil {
		mode = info.Mode().Perm()
	}
	file, err := os.OpenFile(f.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer func() {
		if cErr := file.Close(); cErr != nil {
			retErr = errors.Join(retErr, fmt.Errorf("close %s: %w", f.Path, cErr))
		}
	}()
	_, err = file.Write(data)
	return err
}
