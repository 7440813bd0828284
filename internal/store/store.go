package store

import (
	"context"
	"errors"

	"access_gate/internal/models"
)

// ErrNotFound is the absent-record result for every lookup. Callers treat
// it as a first-class branch (deny, 401), never as a fault.
var ErrNotFound = errors.New("record not found")

// Identity is the authenticated view of a user: just enough for the
// request gate and the authorization engine. Role is the role name, empty
// when the user has none (which authorizes nothing).
type Identity struct {
	ID    int64
	Email string
	Role  string
}

// IdentityStore resolves active identities. Deactivated users are filtered
// at read time, so a stale token for a soft-deleted user resolves to
// ErrNotFound on every request.
type IdentityStore interface {
	FindActiveByID(ctx context.Context, id int64) (*Identity, error)
}

// RuleStore resolves the unique access rule for a (role, element) pair.
type RuleStore interface {
	FindRule(ctx context.Context, roleName, elementName string) (*models.AccessRule, error)
}
