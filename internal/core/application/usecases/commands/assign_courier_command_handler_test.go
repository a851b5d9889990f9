package commands_test

import (
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignCourierCommand(t *testing.T) {
	t.Run("zero courier id is the unassign sentinel", func(t *testing.T) {
		cmd, err := commands.NewAssignCourierCommand(10, commands.UnassignCourier, order.NewWebAdminActor())

		require.NoError(t, err)
		assert.True(t, cmd.IsUnassign())
	})

	t.Run("should fail with negative courier id", func(t *testing.T) {
		_, err := commands.NewAssignCourierCommand(10, -1, order.NewWebAdminActor())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAssignCourierCommandHandler_Handle_Reassign(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignCourierCommand(10, 9, order.NewOperatorActor(3, "Petro S"))
	require.NoError(t, err)

	testOrd := testOrder(t, 10, 2, int64Ptr(7))
	previous := testCourier(t, 7, "Maria K", true, nil)
	next := testCourier(t, 9, "Ivan T", true, nil)

	orderRepo := new(MockOrderRepository)
	employeeRepo := new(MockEmployeeRepository)
	notifier := new(MockAssignmentNotifier)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("EmployeeRepository").Return(employeeRepo).Once(),
		orderRepo.On("Get", ctx, int64(10)).Return(testOrd, nil).Once(),
		employeeRepo.On("Get", ctx, int64(9)).Return(next, nil).Once(),
		employeeRepo.On("Get", ctx, int64(7)).Return(previous, nil).Once(),
		notifier.On("NotifyCourierRemoved", ctx, testOrd, previous).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("NotifyCourierAssigned", ctx, testOrd, next).Once(),
		notifier.On("LogCourierAssignment", ctx, testOrd, "Ivan T").Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory, notifier)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Maria K", result.PreviousCourierName)
	assert.Equal(t, "Ivan T", result.NewCourierName)
	require.NotNil(t, testOrd.CourierID())
	assert.Equal(t, int64(9), *testOrd.CourierID())

	mock.AssertExpectationsForObjects(t, factory, uow, orderRepo, employeeRepo, notifier)
}

func TestAssignCourierCommandHandler_Handle_Unassign(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignCourierCommand(10, commands.UnassignCourier, order.NewWebAdminActor())
	require.NoError(t, err)

	testOrd := testOrder(t, 10, 2, int64Ptr(7))
	previous := testCourier(t, 7, "Maria K", true, nil)

	orderRepo := new(MockOrderRepository)
	employeeRepo := new(MockEmployeeRepository)
	notifier := new(MockAssignmentNotifier)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("EmployeeRepository").Return(employeeRepo).Once()
	orderRepo.On("Get", ctx, int64(10)).Return(testOrd, nil).Once()
	employeeRepo.On("Get", ctx, int64(7)).Return(previous, nil).Once()
	notifier.On("NotifyCourierRemoved", ctx, testOrd, previous).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	notifier.On("LogCourierAssignment", ctx, testOrd, "unassigned").Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory, notifier)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Maria K", result.PreviousCourierName)
	assert.Equal(t, commands.NoCourierName, result.NewCourierName)
	assert.Nil(t, testOrd.CourierID())
	notifier.AssertNotCalled(t, "NotifyCourierAssigned", mock.Anything, mock.Anything, mock.Anything)

	mock.AssertExpectationsForObjects(t, factory, uow, orderRepo, employeeRepo, notifier)
}

func TestAssignCourierCommandHandler_Handle_NotEligible(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignCourierCommand(10, 9, order.NewOperatorActor(3, "Petro S"))
	require.NoError(t, err)

	testOrd := testOrder(t, 10, 2, nil)
	offShift := testCourier(t, 9, "Ivan T", false, nil)

	orderRepo := new(MockOrderRepository)
	employeeRepo := new(MockEmployeeRepository)
	notifier := new(MockAssignmentNotifier)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("EmployeeRepository").Return(employeeRepo).Once()
	orderRepo.On("Get", ctx, int64(10)).Return(testOrd, nil).Once()
	employeeRepo.On("Get", ctx, int64(9)).Return(offShift, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory, notifier)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCourierNotEligible)
	assert.Nil(t, testOrd.CourierID())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	notifier.AssertNotCalled(t, "LogCourierAssignment", mock.Anything, mock.Anything, mock.Anything)
}
