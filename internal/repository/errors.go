package repository

import "errors"

// ErrStaleRevision is returned by conditional updates when the row changed
// (or vanished) since it was read.
var ErrStaleRevision = errors.New("record was modified concurrently")
