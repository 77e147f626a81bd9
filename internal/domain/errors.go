package domain

import "errors"

// ErrNotFound indicates a requested user, video, or embedding does not
// exist. It is surfaced to the caller as a request-level failure rather than
// silently defaulted.
var ErrNotFound = errors.New("not found")
