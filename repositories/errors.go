package repositories

import "errors"

// ErrNotFound covers both a missing document and a malformed hex id;
// callers cannot distinguish the two cases.
var ErrNotFound = errors.New("record not found")
