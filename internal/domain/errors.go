package domain

import "errors"

var (
	ErrUnknownMode     = errors.New("unknown mode")
	ErrEmptyCompletion = errors.New("completion returned no choices")
)
