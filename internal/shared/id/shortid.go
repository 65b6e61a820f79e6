// Package id generates the short opaque identifiers shared by the plan tables.
package id

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Length is the length of a short plan identifier: the first segment of a
// random UUID, 8 hex characters.
const Length = 8

// New returns a fresh short identifier.
func New() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}

// ExistsFunc reports whether an identifier is already taken.
type ExistsFunc func(ctx context.Context, id string) (bool, error)

// maxAttempts bounds the uniqueness retry loop. Collisions on 8 hex chars are
// rare enough that more than a couple of retries indicates a broken store.
const maxAttempts = 5

// NewUnique generates an identifier, retrying while exists reports a collision.
// The underlying scheme is best effort only, so callers that persist the id as
// a primary key should use this instead of New.
func NewUnique(ctx context.Context, exists ExistsFunc) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := New()
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check id uniqueness: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique id after %d attempts", maxAttempts)
}
