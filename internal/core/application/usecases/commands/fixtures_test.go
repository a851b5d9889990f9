package commands_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/staff"
	"orderdesk/internal/core/domain/model/status"

	"github.com/stretchr/testify/require"
)

func testStatus(t *testing.T, id int64, name string, flags status.Flags) *status.Status {
	t.Helper()
	s, err := status.RestoreStatus(id, name, flags)
	require.NoError(t, err)
	return s
}

func testOrder(t *testing.T, id, statusID int64, courierID *int64) *order.Order {
	t.Helper()
	comp, err := order.NewComposition([]order.Line{{Name: "Margherita", Quantity: 2}})
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		id,
		order.Origin{},
		order.Customer{Name: "Olena", Phone: "+380501112233", Address: "Main st 1"},
		comp,
		24000,
		true,
		order.DefaultRequestedTime,
		statusID,
		courierID,
		nil,
		time.Now(),
		nil,
	)
	require.NoError(t, err)
	return o
}

func testCourier(t *testing.T, id int64, name string, onShift bool, currentOrderID *int64) *staff.Employee {
	t.Helper()
	role, err := staff.RestoreRole(3, "Courier", false, true)
	require.NoError(t, err)

	chatID := id * 1000
	e, err := staff.RestoreEmployee(id, &chatID, name, "+380501112233", role, onShift, currentOrderID)
	require.NoError(t, err)
	return e
}

func testOperator(t *testing.T, id int64) *staff.Employee {
	t.Helper()
	role, err := staff.RestoreRole(2, "Operator", true, false)
	require.NoError(t, err)

	chatID := id * 1000
	e, err := staff.RestoreEmployee(id, &chatID, "Petro S", "+380671234567", role, true, nil)
	require.NoError(t, err)
	return e
}

func int64Ptr(v int64) *int64 {
	return &v
}
