package particles

import "fmt"

// CreationError is returned when the backend fails to allocate one of the
// ring's buffers. Buffers allocated before the failure have been released.
type CreationError struct {
	Label  string
	Buffer int
	Err    error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("particles: create buffer %d of %q: %v", e.Buffer, e.Label, e.Err)
}

func (e *CreationError) Unwrap() error { return e.Err }
