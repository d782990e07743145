package engine

import (
	"errors"

	"github.com/tartampluch/go-datepicker/internal/config"
)

var (
	// ErrIncompleteFormat marks a locale whose reference rendering lacks a sentinel.
	ErrIncompleteFormat = errors.New(config.ErrIncompleteFormat)

	// ErrNoLocaleMatch is returned when input does not fit the inferred locale format.
	ErrNoLocaleMatch = errors.New(config.ErrNoLocaleMatch)

	// ErrNoCandidateMatched is returned when none of the explicit patterns parse the input.
	ErrNoCandidateMatched = errors.New(config.ErrNoCandidate)

	// ErrNoStrategy is returned when neither a pattern nor a locale is configured.
	ErrNoStrategy = errors.New(config.ErrNoStrategy)
)
