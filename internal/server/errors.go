package server

import "errors"

var (
	// ErrAlreadyStarted is returned by Start on a running server.
	ErrAlreadyStarted = errors.New("server already started")

	// ErrNotStarted is returned by Stop before Start.
	ErrNotStarted = errors.New("server not started")
)
