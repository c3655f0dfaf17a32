package repository

import "errors"

// ErrNotFound is returned by all repositories when no document matches.
var ErrNotFound = errors.New("not found")
