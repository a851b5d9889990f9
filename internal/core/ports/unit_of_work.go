package ports

import "context"

// UnitOfWorkFactory creates a fresh UnitOfWork per command, keeping
// concurrent operations isolated in their own transaction scopes.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one business transaction boundary. Client code manages the
// lifecycle explicitly: Begin, mutate through the transaction-bound
// repositories, then Commit or Rollback. Rollback after Commit is a no-op,
// so `defer uow.Rollback(ctx)` is the standard shape.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// EmployeeRepository returns an EmployeeRepository bound to the
	// current transaction.
	EmployeeRepository() EmployeeRepository

	// StatusRepository returns a StatusRepository bound to the current
	// transaction.
	StatusRepository() StatusRepository
}
