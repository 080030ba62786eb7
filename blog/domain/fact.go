package domain

import "context"

// FactList is the ordered set of facts a site rotates through.
// Order defines rotation order.
type FactList []string

// FactSource loads the fact list for a single run.
type FactSource interface {
	// LoadFacts returns an error wrapping ErrConfiguration when the source is
	// missing or holds no non-empty lines.
	LoadFacts(ctx context.Context) (FactList, error)
	Location() string
}
