package port

import "errors"

// ErrNotFound is returned by stores when no record exists yet.
var ErrNotFound = errors.New("not found")
