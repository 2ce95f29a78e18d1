package repositories

import "fmt"

type ErrNotFound struct {
}

func (e *ErrNotFound) Error() string {
	return "not found"
}

func IsNotFound(err error) bool {
	_, ok := err.(*ErrNotFound)
	return ok
}

// ErrMalformed is returned when a stored save document cannot be decoded.
type ErrMalformed struct {
	Slot string
	Err  error
}

func (e *ErrMalformed) Error() string {
	return fmt.Sprintf("malformed save for slot %s: %v", e.Slot, e.Err)
}

func (e *ErrMalformed) Unwrap() error {
	return e.Err
}

func IsMalformed(err error) bool {
	_, ok := err.(*ErrMalformed)
	return ok
}
