package errs

import (
	"errors"
	"fmt"
)

// ErrDeliveryFailed is the sentinel error for a failed notification send to
// a single recipient. Delivery failures are always caught and logged by the
// dispatcher; they never propagate as a failure of the mutation that
// triggered them.
var ErrDeliveryFailed = errors.New("delivery failed")

// DeliveryFailureError reports a failed send with enough context to
// identify the recipient and the order it concerned.
type DeliveryFailureError struct {
	Recipient string
	OrderID   int64
	Cause     error
}

// NewDeliveryFailureError creates a DeliveryFailureError for the given
// recipient and order, wrapping the transport error.
func NewDeliveryFailureError(recipient string, orderID int64, cause error) *DeliveryFailureError {
	return &DeliveryFailureError{
		Recipient: recipient,
		OrderID:   orderID,
		Cause:     cause,
	}
}

func (e *DeliveryFailureError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: recipient is: %s, order is: %d (cause: %s)",
			ErrDeliveryFailed, e.Recipient, e.OrderID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: recipient is: %s, order is: %d",
		ErrDeliveryFailed, e.Recipient, e.OrderID))
}

func (e *DeliveryFailureError) Unwrap() error {
	return ErrDeliveryFailed
}
