package store

import "errors"

// ErrNotImported is returned by Raw for a stream with no snapshot.
var ErrNotImported = errors.New("stream not imported")
