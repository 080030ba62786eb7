package domain

import "errors"

// Error categories for a generator run, matched with errors.Is.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrIO            = errors.New("i/o error")

	// ErrNoFacts accompanies ErrConfiguration when the fact source is
	// missing or holds no facts.
	ErrNoFacts = errors.New("no facts to publish")
)
