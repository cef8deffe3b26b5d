package repository

import "errors"

// ErrNotFound is the sentinel wrapped by repositories when a lookup
// matches no row.
var ErrNotFound = errors.New("not found")
