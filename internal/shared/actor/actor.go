// Package actor lets features resolve the authenticated user behind an id
// without depending on the auth feature.
package actor

import (
	"context"
	"errors"
)

// ErrUnknown is returned when no user has the given id.
var ErrUnknown = errors.New("unknown actor")

// Directory looks up users by id.
type Directory interface {
	// DisplayName returns the user's name, or ErrUnknown.
	DisplayName(ctx context.Context, id string) (string, error)
}
