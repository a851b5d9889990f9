package order

import (
	"time"

	"orderdesk/internal/pkg/errs"
)

// HistoryEntry is one append-only audit record: which status the order
// entered, who moved it there, and when. The actor is frozen as text at
// append time so later staff changes cannot rewrite the trail.
type HistoryEntry struct {
	id         int64
	orderID    int64
	statusID   int64
	actor      string
	occurredAt time.Time
}

// RestoreHistoryEntry reconstructs a persisted audit record from storage.
func RestoreHistoryEntry(id, orderID, statusID int64, actor string, occurredAt time.Time) (HistoryEntry, error) {
	if id <= 0 {
		return HistoryEntry{}, errs.NewValueIsInvalidError("history entry id")
	}
	if orderID <= 0 {
		return HistoryEntry{}, errs.NewValueIsInvalidError("order id")
	}
	if statusID <= 0 {
		return HistoryEntry{}, errs.NewValueIsInvalidError("status id")
	}

	return HistoryEntry{
		id:         id,
		orderID:    orderID,
		statusID:   statusID,
		actor:      actor,
		occurredAt: occurredAt,
	}, nil
}

// ID returns the entry identity (0 until persisted).
func (h HistoryEntry) ID() int64 {
	return h.id
}

// OrderID returns the owning order's identity (0 while the order itself is
// not yet persisted).
func (h HistoryEntry) OrderID() int64 {
	return h.orderID
}

// StatusID returns the status the order entered.
func (h HistoryEntry) StatusID() int64 {
	return h.statusID
}

// Actor returns the frozen attribution text.
func (h HistoryEntry) Actor() string {
	return h.actor
}

// OccurredAt returns when the transition was accepted.
func (h HistoryEntry) OccurredAt() time.Time {
	return h.occurredAt
}
