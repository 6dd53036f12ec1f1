package repository

import "errors"

// ErrDuplicateKey is returned by Create when a row with the same key already exists.
var ErrDuplicateKey = errors.New("duplicate key")
