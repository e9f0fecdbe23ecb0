package domain

import "errors"

// ErrSuperseded is returned from a pending modal open when another modal takes
// over the current slot before the first one is closed.
var ErrSuperseded = errors.New("modal superseded")

// ErrNotLoggedIn is returned when an operation requires an authenticated user.
var ErrNotLoggedIn = errors.New("not logged in")

// ErrNoSandbox is returned when an operation requires an active sandbox.
var ErrNoSandbox = errors.New("no active sandbox")

// ErrKeyNotFound is returned by key-value stores for missing keys.
var ErrKeyNotFound = errors.New("key not found")
