package buffer

import "fmt"

// ReadError reports that a buffer's backing file could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read file '%s': %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports that a buffer could not be written to its backing file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write file '%s': %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
