package domain

import "errors"

var (
	// ErrNoWordsAvailable indicates the requested sub-level has no remaining or
	// no defined words.
	ErrNoWordsAvailable = errors.New("no words available")

	// ErrInvalidState indicates an event was submitted for an already-resolved
	// word or a completed round.
	ErrInvalidState = errors.New("invalid round state")

	// ErrHintExhausted indicates the per-word hint budget has been spent.
	ErrHintExhausted = errors.New("hint budget exhausted")

	// ErrPersistence indicates durable storage could not be written.
	ErrPersistence = errors.New("persistence failed")

	// ErrSubLevelLocked indicates a round was requested for a sub-level whose
	// prerequisite has not been completed.
	ErrSubLevelLocked = errors.New("sub-level locked")
)
