package scopekit

import (
	"context"
	"fmt"

	"github.com/fernandezvara/dbkit"
)

// Transaction executes a function within a database transaction with
// automatic commit/rollback. If the function returns an error, the
// transaction is rolled back. Otherwise, it's committed. While fn runs,
// the service's reads and writes go through the transaction.
//
// No authorization decision spans a transaction: checks are pure reads of
// the store's current contents. Transactions exist for the administration
// surface, where several grant and membership writes must land together.
//
// Example:
//
//	err := service.Transaction(ctx, func(ctx context.Context) error {
//	    if err := service.AssignOrgMembership(ctx, "user1", orgID, scopekit.RoleAdmin); err != nil {
//	        return err // rollback
//	    }
//	    return service.AssignFlatMembership(ctx, scopekit.ScopeHub, hubID, "user1", "member")
//	})
func (s *Service) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	// Already inside a transaction: use a savepoint.
	if tx, ok := s.db.(*dbkit.Tx); ok {
		return tx.Transaction(ctx, func(tx *dbkit.Tx) error {
			return s.inTx(ctx, tx, fn)
		})
	}

	if db, ok := s.db.(*dbkit.DBKit); ok {
		return db.Transaction(ctx, func(tx *dbkit.Tx) error {
			return s.inTx(ctx, tx, fn)
		})
	}

	return fmt.Errorf("transaction support requires a dbkit.DBKit or dbkit.Tx instance")
}

// ReadOnlyTransaction executes a function within a read-only database
// transaction. Used where several reads must observe one consistent store
// state, such as the tree invariant checker.
func (s *Service) ReadOnlyTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if db, ok := s.db.(*dbkit.DBKit); ok {
		return db.TransactionWithOptions(ctx, dbkit.ReadOnlyTxOptions(), func(tx *dbkit.Tx) error {
			return s.inTx(ctx, tx, fn)
		})
	}

	return fmt.Errorf("transaction support requires a dbkit.DBKit instance")
}

// inTx rebinds the service to the transaction for the duration of fn, so
// nested administration calls read and write through it.
func (s *Service) inTx(ctx context.Context, tx *dbkit.Tx, fn func(ctx context.Context) error) error {
	prevDB, prevStore := s.db, s.store
	s.db = tx
	s.store = &dbStore{db: tx}
	defer func() {
		s.db, s.store = prevDB, prevStore
	}()
	return fn(ctx)
}
