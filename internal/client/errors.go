package client

import "errors"

// ErrNotFound marks an upstream 404 for a specific record.
var ErrNotFound = errors.New("not found")
