package storage

import "errors"

// ErrDraftNotFound indicates that no draft exists for the entity
var ErrDraftNotFound = errors.New("draft not found")
