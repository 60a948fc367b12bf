package scopekit

import (
	"net/http"
)

// Middleware provides HTTP middleware over the access gate.
//
// Denial and store failure are kept apart on purpose: a failed store read
// answers 500, never 403, so an outage is not reported as "access denied"
// for every user.
type Middleware struct {
	service      *Service
	getUserID    func(*http.Request) string
	errorHandler func(http.ResponseWriter, *http.Request, error)
}

// MiddlewareOption configures the Middleware.
type MiddlewareOption func(*Middleware)

// NewMiddleware creates a new Middleware instance.
//
// Example:
//
//	mw := scopekit.NewMiddleware(service,
//	    scopekit.WithUserIDExtractor(func(r *http.Request) string {
//	        return r.Context().Value("user_id").(string)
//	    }),
//	)
func NewMiddleware(service *Service, opts ...MiddlewareOption) *Middleware {
	m := &Middleware{
		service:      service,
		getUserID:    defaultGetUserID,
		errorHandler: defaultErrorHandler,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// WithUserIDExtractor sets a custom function to extract user ID from request.
func WithUserIDExtractor(fn func(*http.Request) string) MiddlewareOption {
	return func(m *Middleware) {
		m.getUserID = fn
	}
}

// WithErrorHandler sets a custom error handler for middleware.
func WithErrorHandler(fn func(http.ResponseWriter, *http.Request, error)) MiddlewareOption {
	return func(m *Middleware) {
		m.errorHandler = fn
	}
}

func defaultGetUserID(r *http.Request) string {
	return GetUserID(r.Context())
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case IsUnauthorized(err):
		http.Error(w, "Forbidden", http.StatusForbidden)
	case IsInvalidScope(err) || IsInvalidRole(err):
		http.Error(w, "Bad Request", http.StatusBadRequest)
	default:
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// ScopeExtractor extracts scope information from an HTTP request.
type ScopeExtractor func(*http.Request) (Scope, error)

// ScopeFromParam creates a ScopeExtractor that reads the scope ID from URL
// path parameters (net/http PathValue, or a router that stores the value
// in the request context under the parameter name).
//
// Example:
//
//	// For route /hubs/{hubID}/members
//	mw.RequireAccess(scopekit.ScopeFromParam(scopekit.ScopeHub, "hubID"))
func ScopeFromParam(scopeType ScopeType, paramName string) ScopeExtractor {
	return func(r *http.Request) (Scope, error) {
		scopeID := r.PathValue(paramName)
		if scopeID == "" {
			if v := r.Context().Value(paramName); v != nil {
				if s, ok := v.(string); ok {
					scopeID = s
				}
			}
		}
		if scopeID == "" {
			return Scope{}, NewError(ErrInvalidScope, "scope ID not found in request").
				WithScope(scopeType, "")
		}
		return NewScope(scopeType, scopeID), nil
	}
}

// ScopeFromQuery creates a ScopeExtractor that reads the scope ID from
// query parameters.
//
// Example:
//
//	// For route /api/pages?community_id=com_123
//	mw.RequireAccess(scopekit.ScopeFromQuery(scopekit.ScopeCommunity, "community_id"))
func ScopeFromQuery(scopeType ScopeType, queryParam string) ScopeExtractor {
	return func(r *http.Request) (Scope, error) {
		scopeID := r.URL.Query().Get(queryParam)
		if scopeID == "" {
			return Scope{}, NewError(ErrInvalidScope, "scope ID not found in query").
				WithScope(scopeType, "")
		}
		return NewScope(scopeType, scopeID), nil
	}
}

// ScopeFromHeader creates a ScopeExtractor that reads the scope ID from a
// header.
//
// Example:
//
//	// For header X-Tenant-ID: ten_123
//	mw.RequireAccess(scopekit.ScopeFromHeader(scopekit.ScopeTenant, "X-Tenant-ID"))
func ScopeFromHeader(scopeType ScopeType, headerName string) ScopeExtractor {
	return func(r *http.Request) (Scope, error) {
		scopeID := r.Header.Get(headerName)
		if scopeID == "" {
			return Scope{}, NewError(ErrInvalidScope, "scope ID not found in header").
				WithScope(scopeType, "")
		}
		return NewScope(scopeType, scopeID), nil
	}
}

// WholeScope creates a ScopeExtractor for whole-family queries, used to
// protect rowiverse- and superhub-level surfaces.
func WholeScope(scopeType ScopeType) ScopeExtractor {
	return func(r *http.Request) (Scope, error) {
		return NewScope(scopeType, ""), nil
	}
}

// RequireAccess gates a handler behind CanAccess for the extracted scope.
// On success the user's Checker is placed in the request context.
func (m *Middleware) RequireAccess(extract ScopeExtractor) func(http.Handler) http.Handler {
	return m.require(extract, func(r *http.Request, userID string, scope Scope) (bool, error) {
		return m.service.CanAccess(r.Context(), userID, scope.Type, scope.ID)
	})
}

// RequireAdmin gates a handler behind IsAdmin for the extracted scope. The
// scope type must be one of the four administrative levels.
func (m *Middleware) RequireAdmin(extract ScopeExtractor) func(http.Handler) http.Handler {
	return m.require(extract, func(r *http.Request, userID string, scope Scope) (bool, error) {
		return m.service.IsAdmin(r.Context(), userID, scope.Type, scope.ID)
	})
}

// RequireOrgRole gates a handler behind HasOrgRole at the extracted
// organization unit.
func (m *Middleware) RequireOrgRole(required OrgRole, extract ScopeExtractor) func(http.Handler) http.Handler {
	return m.require(extract, func(r *http.Request, userID string, scope Scope) (bool, error) {
		return m.service.HasOrgRole(r.Context(), userID, scope.ID, required)
	})
}

func (m *Middleware) require(extract ScopeExtractor, check func(*http.Request, string, Scope) (bool, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := m.getUserID(r)
			if userID == "" {
				m.errorHandler(w, r, NewError(ErrUnauthorized, "no user in request"))
				return
			}

			scope, err := extract(r)
			if err != nil {
				m.errorHandler(w, r, err)
				return
			}

			ok, err := check(r, userID, scope)
			if err != nil {
				m.errorHandler(w, r, err)
				return
			}
			if !ok {
				m.errorHandler(w, r, NewError(ErrUnauthorized, "access denied").
					WithScope(scope.Type, scope.ID).
					WithUser(userID))
				return
			}

			ctx := WithChecker(r.Context(), m.service.GetChecker(userID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
