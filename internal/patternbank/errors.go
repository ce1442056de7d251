package patternbank

import "fmt"

// StorageError indicates the pattern bank's backing store could not be read,
// parsed, or written. At load time this is fatal: no transactions can be
// classified without the bank.
type StorageError struct {
	Path string
	Op   string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("pattern bank %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NotFoundError indicates a lookup by a contents value that is not in the
// bank. Because the caller always picks from AllContents, this is a
// consistency bug, not a user error.
type NotFoundError struct {
	Contents string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no pattern with contents %q", e.Contents)
}
