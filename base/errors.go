package base

import "errors"

// ErrUnsupported is returned by operations that an implementation does not allow,
// for example removing elements through a read-only iterator.
var ErrUnsupported = errors.New("unsupported operation")

var _ error = ErrRegistered{}

// ErrRegistered is returned when trying to register an implementation with a name that is already registered.
type ErrRegistered struct {
	Name string
}

func (e ErrRegistered) Error() string {
	return "already registered: " + e.Name
}
