package scopekit

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorWrapping(t *testing.T) {
	err := NewError(ErrUnauthorized, "cannot assign memberships").
		WithScope(ScopeOrganization, "org-1").
		WithRole("ADMIN").
		WithUser("u-target").
		WithActor("u-actor")

	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.True(t, IsUnauthorized(err))
	assert.False(t, IsInvalidScope(err))

	assert.Equal(t, "scopekit: unauthorized: cannot assign memberships", err.Error())
	assert.Equal(t, ScopeOrganization, err.Scope)
	assert.Equal(t, "org-1", err.ScopeID)
	assert.Equal(t, "ADMIN", err.Role)
	assert.Equal(t, "u-target", err.UserID)
	assert.Equal(t, "u-actor", err.ActorID)
}

func TestErrorWithoutMessage(t *testing.T) {
	err := NewError(ErrNotMember, "")
	assert.Equal(t, ErrNotMember.Error(), err.Error())
}

func TestErrorSurvivesFurtherWrapping(t *testing.T) {
	inner := NewError(ErrDatabaseError, "grants query failed")
	outer := fmt.Errorf("loading user standing: %w", inner)

	assert.True(t, IsDatabaseError(outer))

	var scopeErr *Error
	assert.True(t, errors.As(outer, &scopeErr))
	assert.Equal(t, "grants query failed", scopeErr.Message)
}

func TestErrorPredicates(t *testing.T) {
	assert.True(t, IsInvalidScope(NewError(ErrInvalidScope, "x")))
	assert.True(t, IsInvalidRole(NewError(ErrInvalidRole, "x")))
	assert.False(t, IsUnauthorized(nil))
	assert.False(t, IsDatabaseError(errors.New("unrelated")))
}
