// Package commands contains the write operations of the ordering workflow:
// status transitions, courier assignment, order intake and revision, staff
// session changes. Every command validates its inputs via a constructor
// guard; every handler runs inside a unit of work created per call.
package commands

import (
	"context"

	"orderdesk/internal/core/ports"
)

// Unit of Work interfaces consumed by command handlers. Each handler names
// only the repositories it actually touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository bound to the current
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// EmployeeRepoFactory provides the employee repository bound to the
	// current transaction.
	EmployeeRepoFactory interface {
		EmployeeRepository() ports.EmployeeRepository
	}

	// StatusRepoFactory provides the status repository bound to the
	// current transaction.
	StatusRepoFactory interface {
		StatusRepository() ports.StatusRepository
	}

	// OrderUoW covers commands that touch orders and status configuration
	// but no staff state (intake, revision).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		StatusRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// StaffUoW covers staff session commands.
	StaffUoW interface {
		TxManager
		EmployeeRepoFactory
	}

	// StaffUoWFactory creates staff unit of work instances.
	StaffUoWFactory interface {
		Create() StaffUoW
	}

	// StatusUoW covers status configuration commands.
	StatusUoW interface {
		TxManager
		StatusRepoFactory
	}

	// StatusUoWFactory creates status unit of work instances.
	StatusUoWFactory interface {
		Create() StatusUoW
	}

	// UoW covers commands that coordinate orders, statuses and staff in
	// one transaction (status transitions, courier assignment).
	UoW interface {
		TxManager
		OrderRepoFactory
		EmployeeRepoFactory
		StatusRepoFactory
	}

	// UoWFactory creates cross-aggregate unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
