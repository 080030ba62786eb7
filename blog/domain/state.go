package domain

import "context"

// RotationState is the cursor persisted between runs.
// LastIndex is -1 until the first post has been generated.
type RotationState struct {
	LastIndex int `json:"last_index"`
}

// NewRotationState returns the state of a site that has never posted.
func NewRotationState() RotationState {
	return RotationState{LastIndex: -1}
}

type StateRepository interface {
	// Load returns NewRotationState when nothing has been persisted yet.
	Load(ctx context.Context) (RotationState, error)
	Save(ctx context.Context, st RotationState) error
}
