package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/staff"
)

// Notifier interfaces consumed by command handlers. Implementations are
// fire-and-forget: they log per-recipient delivery failures and never
// return them, so a missed message can never roll back or fail the
// mutation that triggered it. Handlers call them only after the
// transaction has committed.
type (
	// AssignmentNotifier delivers courier assignment side-channel
	// messages.
	AssignmentNotifier interface {
		// NotifyCourierRemoved tells the previous courier the order was
		// taken from them.
		NotifyCourierRemoved(ctx context.Context, o *order.Order, courier *staff.Employee)

		// NotifyCourierAssigned sends the new courier the order details
		// with courier-visible status actions.
		NotifyCourierAssigned(ctx context.Context, o *order.Order, courier *staff.Employee)

		// LogCourierAssignment writes one line to the shared staff
		// channel naming the new courier, or "unassigned".
		LogCourierAssignment(ctx context.Context, o *order.Order, courierName string)
	}

	// NewOrderNotifier fans a freshly placed order out to the staff
	// channel and every reachable on-shift operator.
	NewOrderNotifier interface {
		DispatchNewOrder(ctx context.Context, o *order.Order)
	}
)
