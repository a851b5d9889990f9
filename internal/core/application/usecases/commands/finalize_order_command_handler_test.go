package commands_test

import (
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/status"
	"orderdesk/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFinalizeOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewFinalizeOrderCommand(
		map[int64]int{1: 2, 2: 1},
		order.Origin{},
		order.Customer{Name: "Olena", Phone: "+380501112233", Address: "Main st 1"},
		true,
		"",
		order.NewWebAdminActor(),
	)
	require.NoError(t, err)

	catalog := new(MockCatalogReader)
	catalog.On("GetProducts", ctx, []int64{1, 2}).Return([]ports.Product{
		{ID: 1, Name: "Margherita", Price: 50, IsActive: true},
		{ID: 2, Name: "Cola", Price: 30, IsActive: true},
	}, nil).Once()

	initial := testStatus(t, 1, "New", status.Flags{VisibleToOperator: true})

	orderRepo := new(MockOrderRepository)
	statusRepo := new(MockStatusRepository)
	notifier := new(MockNewOrderNotifier)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StatusRepository").Return(statusRepo).Once(),
		statusRepo.On("GetInitial", ctx).Return(initial, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				o := args.Get(1).(*order.Order)
				require.NoError(t, o.MarkPersisted(10))
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("DispatchNewOrder", ctx, mock.AnythingOfType("*order.Order")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewFinalizeOrderCommandHandler(factory, catalog, notifier)
	placed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(10), placed.ID())
	assert.Equal(t, int64(130), placed.TotalPrice())
	assert.Equal(t, "Margherita x 2, Cola x 1", placed.Composition().String())
	assert.Equal(t, order.DefaultRequestedTime, placed.RequestedTime())

	history := placed.History()
	require.Len(t, history, 1)
	assert.Equal(t, int64(1), history[0].StatusID())
	assert.Equal(t, int64(10), history[0].OrderID())
	assert.Equal(t, "Web admin", history[0].Actor())

	mock.AssertExpectationsForObjects(t, factory, uow, orderRepo, statusRepo, catalog, notifier)
}

func TestFinalizeOrderCommandHandler_Handle_DropsVanishedProducts(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewFinalizeOrderCommand(
		map[int64]int{1: 2, 2: 1},
		order.Origin{ChatID: int64Ptr(100500)},
		order.Customer{Name: "Olena", Phone: "+380501112233"},
		false,
		"19:30",
		order.NewSystemActor(),
	)
	require.NoError(t, err)

	// product 2 was deactivated between cart and checkout
	catalog := new(MockCatalogReader)
	catalog.On("GetProducts", ctx, []int64{1, 2}).Return([]ports.Product{
		{ID: 1, Name: "Margherita", Price: 50, IsActive: true},
		{ID: 2, Name: "Cola", Price: 30, IsActive: false},
	}, nil).Once()

	initial := testStatus(t, 1, "New", status.Flags{VisibleToOperator: true})

	orderRepo := new(MockOrderRepository)
	statusRepo := new(MockStatusRepository)
	notifier := new(MockNewOrderNotifier)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StatusRepository").Return(statusRepo).Once()
	statusRepo.On("GetInitial", ctx).Return(initial, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			o := args.Get(1).(*order.Order)
			require.NoError(t, o.MarkPersisted(11))
		}).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	notifier.On("DispatchNewOrder", ctx, mock.AnythingOfType("*order.Order")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewFinalizeOrderCommandHandler(factory, catalog, notifier)
	placed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(100), placed.TotalPrice())
	assert.Equal(t, "Margherita x 2", placed.Composition().String())
	assert.True(t, placed.PlacedViaChat())
	assert.Equal(t, "19:30", placed.RequestedTime())
}

func TestFinalizeOrderCommandHandler_Handle_EmptyItems(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewFinalizeOrderCommand(
		map[int64]int{1: 0, 2: -3},
		order.Origin{},
		order.Customer{Name: "Olena"},
		false,
		"",
		order.NewWebAdminActor(),
	)
	require.NoError(t, err)

	catalog := new(MockCatalogReader)
	initial := testStatus(t, 1, "New", status.Flags{VisibleToOperator: true})

	orderRepo := new(MockOrderRepository)
	statusRepo := new(MockStatusRepository)
	notifier := new(MockNewOrderNotifier)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StatusRepository").Return(statusRepo).Once()
	statusRepo.On("GetInitial", ctx).Return(initial, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			o := args.Get(1).(*order.Order)
			require.NoError(t, o.MarkPersisted(12))
		}).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	notifier.On("DispatchNewOrder", ctx, mock.AnythingOfType("*order.Order")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewFinalizeOrderCommandHandler(factory, catalog, notifier)
	placed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, placed.TotalPrice())
	assert.True(t, placed.Composition().IsEmpty())
	catalog.AssertNotCalled(t, "GetProducts", mock.Anything, mock.Anything)
}
