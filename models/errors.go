package models

import "errors"

// Error taxonomy shared by services and controllers.
var (
    // ErrUnauthenticated means no user identity could be resolved for an
    // operation that requires one. Never retried.
    ErrUnauthenticated = errors.New("unauthenticated")

    // ErrUnavailable marks a transient store failure. Callers may fall back
    // to the local cache mirror.
    ErrUnavailable = errors.New("store unavailable")

    // ErrNotFound is returned on update/delete of a missing record.
    ErrNotFound = errors.New("record not found")
)
