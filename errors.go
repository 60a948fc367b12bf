package scopekit

import (
	"errors"
	"fmt"
)

// Sentinel errors for scopekit operations.
var (
	// ErrInvalidScope is returned when a scope type is not one of the six
	// defined families.
	ErrInvalidScope = errors.New("scopekit: invalid scope")

	// ErrInvalidRole is returned when a role is not defined for a scope.
	ErrInvalidRole = errors.New("scopekit: invalid role")

	// ErrUnauthorized is returned when a user doesn't have the required
	// standing in a scope.
	ErrUnauthorized = errors.New("scopekit: unauthorized")

	// ErrAlreadyMember is returned when assigning a membership the user
	// already holds. Memberships are unique per (scope id, user).
	ErrAlreadyMember = errors.New("scopekit: membership already exists")

	// ErrNotMember is returned when revoking a membership the user doesn't
	// hold.
	ErrNotMember = errors.New("scopekit: membership not found")

	// ErrAlreadyGranted is returned when creating a duplicate permission
	// grant.
	ErrAlreadyGranted = errors.New("scopekit: grant already exists")

	// ErrNotGranted is returned when revoking a grant the user doesn't hold.
	ErrNotGranted = errors.New("scopekit: grant not found")

	// ErrNoUserID is returned when user ID is not found in context.
	ErrNoUserID = errors.New("scopekit: no user ID in context")

	// ErrNoActorID is returned when actor ID is not found in context for a
	// write operation.
	ErrNoActorID = errors.New("scopekit: no actor ID in context")

	// ErrDatabaseError is returned when a store operation fails. Store
	// failures are never folded into "access denied": every predicate
	// surfaces them so callers can decide the availability-vs-security
	// trade-off explicitly.
	ErrDatabaseError = errors.New("scopekit: database error")
)

// Error wraps a sentinel error with additional context.
type Error struct {
	Err     error     // Underlying sentinel error
	Message string    // Additional context
	Scope   ScopeType // Scope type involved
	ScopeID string    // Scope ID involved
	Role    string    // Role involved (if applicable)
	UserID  string    // User involved (if applicable)
	ActorID string    // Actor who triggered the error (if applicable)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is checks if the error matches a target error.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewError creates a new Error with context.
func NewError(err error, message string) *Error {
	return &Error{
		Err:     err,
		Message: message,
	}
}

// WithScope adds scope information to the error.
func (e *Error) WithScope(scopeType ScopeType, scopeID string) *Error {
	e.Scope = scopeType
	e.ScopeID = scopeID
	return e
}

// WithRole adds role information to the error.
func (e *Error) WithRole(role string) *Error {
	e.Role = role
	return e
}

// WithUser adds user information to the error.
func (e *Error) WithUser(userID string) *Error {
	e.UserID = userID
	return e
}

// WithActor adds actor information to the error.
func (e *Error) WithActor(actorID string) *Error {
	e.ActorID = actorID
	return e
}

// IsUnauthorized checks if an error is an authorization error.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsInvalidScope checks if an error is due to an invalid scope.
func IsInvalidScope(err error) bool {
	return errors.Is(err, ErrInvalidScope)
}

// IsInvalidRole checks if an error is due to an invalid role.
func IsInvalidRole(err error) bool {
	return errors.Is(err, ErrInvalidRole)
}

// IsDatabaseError checks if an error came from the store rather than from
// an authorization decision.
func IsDatabaseError(err error) bool {
	return errors.Is(err, ErrDatabaseError)
}
