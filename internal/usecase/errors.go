package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal error")
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrMovieNotFound   = errors.New("movie not found")
	ErrComposerClosed  = errors.New("review composer is not open")
	ErrEditInProgress  = errors.New("profile edit in progress")
)
