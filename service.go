package scopekit

import (
	"github.com/fernandezvara/dbkit"
)

// Service is the hierarchical scoped authorization engine. Every check is a
// synchronous read of the store's current contents at invocation time:
// there is no in-process mutable shared state, no locking, and no caching
// across requests, so a concurrent grant mutation is simply observed or not
// observed by the next check.
//
// Error handling follows dbkit's chainable wrapping: store failures carry
// the operation name and the original error type, and are always
// distinguishable from a plain "no access" answer via IsDatabaseError.
type Service struct {
	db     dbkit.IDB
	store  Store
	config Config
}

// NewService creates a new authorization engine on a dbkit database.
//
// Example:
//
//	db, _ := dbkit.New(dbkit.Config{URL: "postgres://..."})
//	service := scopekit.NewService(db,
//	    scopekit.WithRootScopeIDs("rowiverse-root"),
//	)
func NewService(db dbkit.IDB, opts ...Option) *Service {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Service{
		db:     db,
		store:  &dbStore{db: db},
		config: config,
	}
}

// NewServiceWithStore creates an engine over an arbitrary Store
// implementation. The dbkit-bound extensions (migrations, health,
// transactions) are unavailable on a service built this way.
func NewServiceWithStore(store Store, opts ...Option) *Service {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Service{
		store:  store,
		config: config,
	}
}

// Store returns the record store the engine reads from.
func (s *Service) Store() Store {
	return s.store
}

// Config returns the engine configuration.
func (s *Service) Config() Config {
	return s.config
}

// compile-time check: Service is the inbound query surface.
var _ Authorizer = (*Service)(nil)
