package notifications_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/staff"
	"orderdesk/internal/core/domain/model/status"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/notifications"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) Get(ctx context.Context) (ports.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.Settings), args.Error(1)
}

type MockMessenger struct{ mock.Mock }

func (m *MockMessenger) Send(ctx context.Context, chatID int64, text string, buttons [][]ports.Button) error {
	args := m.Called(ctx, chatID, text, buttons)
	return args.Error(0)
}

type MockMessengerProvider struct{ mock.Mock }

func (m *MockMessengerProvider) Staff(ctx context.Context) (ports.Messenger, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.Messenger), args.Error(1)
}

func (m *MockMessengerProvider) Customer(ctx context.Context) (ports.Messenger, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.Messenger), args.Error(1)
}

type MockEmployeeRepository struct{ mock.Mock }

func (m *MockEmployeeRepository) Get(ctx context.Context, id int64) (*staff.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetByChatID(ctx context.Context, chatID int64) (*staff.Employee, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetByPhone(ctx context.Context, phone string) (*staff.Employee, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, e *staff.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

type MockStatusRepository struct{ mock.Mock }

func (m *MockStatusRepository) Get(ctx context.Context, id int64) (*status.Status, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*status.Status), args.Error(1)
}

func (m *MockStatusRepository) GetInitial(ctx context.Context) (*status.Status, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*status.Status), args.Error(1)
}

func (m *MockStatusRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStaffRoster struct{ mock.Mock }

func (m *MockStaffRoster) Handle(ctx context.Context, query queries.GetStaffOnShiftQuery) ([]queries.GetStaffOnShiftQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetStaffOnShiftQueryResponse), args.Error(1)
}

type MockStatusDirectory struct{ mock.Mock }

func (m *MockStatusDirectory) Handle(ctx context.Context, query queries.GetVisibleStatusesQuery) ([]queries.GetVisibleStatusesQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetVisibleStatusesQueryResponse), args.Error(1)
}

type dispatcherMocks struct {
	settings  *MockSettingsRepository
	provider  *MockMessengerProvider
	employees *MockEmployeeRepository
	statuses  *MockStatusRepository
	roster    *MockStaffRoster
	directory *MockStatusDirectory
}

func newDispatcher(m *dispatcherMocks) *notifications.Dispatcher {
	return notifications.NewDispatcher(
		m.settings,
		m.provider,
		m.employees,
		m.statuses,
		m.roster,
		m.directory,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func newMocks() *dispatcherMocks {
	return &dispatcherMocks{
		settings:  new(MockSettingsRepository),
		provider:  new(MockMessengerProvider),
		employees: new(MockEmployeeRepository),
		statuses:  new(MockStatusRepository),
		roster:    new(MockStaffRoster),
		directory: new(MockStatusDirectory),
	}
}

func chatOrder(t *testing.T, id int64, statusID int64, courierID *int64, customerChat *int64) *order.Order {
	t.Helper()
	comp, err := order.NewComposition([]order.Line{{Name: "Margherita", Quantity: 2}})
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		id,
		order.Origin{ChatID: customerChat},
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

func reachableCourier(t *testing.T, id, chatID int64) *staff.Employee {
	t.Helper()
	role, err := staff.RestoreRole(3, "Courier", false, true)
	require.NoError(t, err)
	e, err := staff.RestoreEmployee(id, &chatID, "Maria K", "+380501112233", role, true, nil)
	require.NoError(t, err)
	return e
}

func int64Ptr(v int64) *int64 { return &v }

func TestDispatcher_Dispatch_FullFanOut(t *testing.T) {
	ctx := t.Context()
	m := newMocks()

	customerChat := int64(100500)
	o := chatOrder(t, 10, 2, int64Ptr(7), &customerChat)
	cooking, err := status.RestoreStatus(2, "Cooking", status.Flags{NotifyCustomer: true, VisibleToOperator: true})
	require.NoError(t, err)

	staffMsgr := new(MockMessenger)
	customerMsgr := new(MockMessenger)

	m.settings.On("Get", ctx).Return(ports.Settings{StaffChannelID: -100}, nil).Once()
	m.statuses.On("Get", ctx, int64(2)).Return(cooking, nil).Once()
	m.provider.On("Staff", ctx).Return(staffMsgr, nil).Once()
	m.provider.On("Customer", ctx).Return(customerMsgr, nil).Once()
	m.employees.On("Get", ctx, int64(7)).Return(reachableCourier(t, 7, 7000), nil).Once()

	mock.InOrder(
		staffMsgr.On("Send", mock.Anything, int64(-100), mock.MatchedBy(func(text string) bool {
			return text == "Order #10: New → Cooking (Operator: Petro S)"
		}), mock.Anything).Return(nil).Once(),
		staffMsgr.On("Send", mock.Anything, int64(7000), mock.Anything, mock.Anything).Return(nil).Once(),
		customerMsgr.On("Send", mock.Anything, int64(100500), mock.MatchedBy(func(text string) bool {
			return text == "Your order #10 is now: Cooking"
		}), mock.Anything).Return(nil).Once(),
	)

	newDispatcher(m).Dispatch(ctx, o, "New", order.NewOperatorActor(3, "Petro S"))

	mock.AssertExpectationsForObjects(t, m.settings, m.statuses, m.provider, m.employees, staffMsgr, customerMsgr)
}

func TestDispatcher_Dispatch_NoCustomerSendWhenFlagOff(t *testing.T) {
	ctx := t.Context()
	m := newMocks()

	customerChat := int64(100500)
	o := chatOrder(t, 10, 3, nil, &customerChat)
	packing, err := status.RestoreStatus(3, "Packing", status.Flags{VisibleToOperator: true})
	require.NoError(t, err)

	staffMsgr := new(MockMessenger)

	m.settings.On("Get", ctx).Return(ports.Settings{StaffChannelID: -100}, nil).Once()
	m.statuses.On("Get", ctx, int64(3)).Return(packing, nil).Once()
	m.provider.On("Staff", ctx).Return(staffMsgr, nil).Once()
	staffMsgr.On("Send", mock.Anything, int64(-100), mock.Anything, mock.Anything).Return(nil).Once()

	newDispatcher(m).Dispatch(ctx, o, "Cooking", order.NewOperatorActor(3, "Petro S"))

	m.provider.AssertNotCalled(t, "Customer", mock.Anything)
	mock.AssertExpectationsForObjects(t, m.settings, m.statuses, m.provider, staffMsgr)
}

func TestDispatcher_Dispatch_CourierDoesNotSelfNotify(t *testing.T) {
	ctx := t.Context()
	m := newMocks()

	o := chatOrder(t, 10, 5, int64Ptr(7), nil)
	delivered, err := status.RestoreStatus(5, "Delivered", status.Flags{VisibleToCourier: true, IsCompleting: true})
	require.NoError(t, err)

	staffMsgr := new(MockMessenger)

	m.settings.On("Get", ctx).Return(ports.Settings{StaffChannelID: -100}, nil).Once()
	m.statuses.On("Get", ctx, int64(5)).Return(delivered, nil).Once()
	m.provider.On("Staff", ctx).Return(staffMsgr, nil).Once()
	staffMsgr.On("Send", mock.Anything, int64(-100), mock.Anything, mock.Anything).Return(nil).Once()

	newDispatcher(m).Dispatch(ctx, o, "Cooking", order.NewCourierActor(7, "Maria K"))

	m.employees.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	mock.AssertExpectationsForObjects(t, m.settings, m.statuses, m.provider, staffMsgr)
}

func TestDispatcher_Dispatch_DeliveryFailureNeverPropagates(t *testing.T) {
	ctx := t.Context()
	m := newMocks()

	customerChat := int64(100500)
	o := chatOrder(t, 10, 2, nil, &customerChat)
	cooking, err := status.RestoreStatus(2, "Cooking", status.Flags{NotifyCustomer: true})
	require.NoError(t, err)

	staffMsgr := new(MockMessenger)
	customerMsgr := new(MockMessenger)

	m.settings.On("Get", ctx).Return(ports.Settings{StaffChannelID: -100}, nil).Once()
	m.statuses.On("Get", ctx, int64(2)).Return(cooking, nil).Once()
	m.provider.On("Staff", ctx).Return(staffMsgr, nil).Once()
	m.provider.On("Customer", ctx).Return(customerMsgr, nil).Once()
	staffMsgr.On("Send", mock.Anything, int64(-100), mock.Anything, mock.Anything).
		Return(errors.New("channel kicked the bot")).Once()
	customerMsgr.On("Send", mock.Anything, int64(100500), mock.Anything, mock.Anything).Return(nil).Once()

	// a failed channel send must not stop the customer notice
	newDispatcher(m).Dispatch(ctx, o, "New", order.NewWebAdminActor())

	mock.AssertExpectationsForObjects(t, staffMsgr, customerMsgr)
}

func TestDispatcher_DispatchNewOrder_ZeroOperatorsWarning(t *testing.T) {
	ctx := t.Context()
	m := newMocks()

	o := chatOrder(t, 10, 1, nil, nil)

	staffMsgr := new(MockMessenger)

	m.settings.On("Get", ctx).Return(ports.Settings{StaffChannelID: -100}, nil).Once()
	m.provider.On("Staff", ctx).Return(staffMsgr, nil).Once()
	m.directory.On("Handle", ctx, queries.NewGetVisibleStatusesQuery(queries.OperatorStatuses)).
		Return([]queries.GetVisibleStatusesQueryResponse{{ID: 2, Name: "Cooking"}}, nil).Once()
	m.roster.On("Handle", ctx, queries.NewGetStaffOnShiftQuery(queries.CanManageOrders)).
		Return([]queries.GetStaffOnShiftQueryResponse{{ID: 3, FullName: "Petro S"}}, nil).Once()

	mock.InOrder(
		staffMsgr.On("Send", mock.Anything, int64(-100), mock.MatchedBy(func(text string) bool {
			return text != "" && text[:10] == "New order!"
		}), mock.Anything).Return(nil).Once(),
		staffMsgr.On("Send", mock.Anything, int64(-100),
			"Warning: no operators are on shift, order #10 is unattended!",
			mock.Anything).Return(nil).Once(),
	)

	// the only on-shift operator has no chat bound, so nobody is reachable
	newDispatcher(m).DispatchNewOrder(ctx, o)

	mock.AssertExpectationsForObjects(t, m.settings, m.provider, m.directory, m.roster, staffMsgr)
}

func TestDispatcher_DispatchNewOrder_ReachableOperators(t *testing.T) {
	ctx := t.Context()
	m := newMocks()

	o := chatOrder(t, 10, 1, nil, nil)

	staffMsgr := new(MockMessenger)

	m.settings.On("Get", ctx).Return(ports.Settings{StaffChannelID: -100}, nil).Once()
	m.provider.On("Staff", ctx).Return(staffMsgr, nil).Once()
	m.directory.On("Handle", ctx, queries.NewGetVisibleStatusesQuery(queries.OperatorStatuses)).
		Return([]queries.GetVisibleStatusesQueryResponse{{ID: 2, Name: "Cooking"}}, nil).Once()
	m.roster.On("Handle", ctx, queries.NewGetStaffOnShiftQuery(queries.CanManageOrders)).
		Return([]queries.GetStaffOnShiftQueryResponse{
			{ID: 3, FullName: "Petro S", ChatID: int64Ptr(3000)},
			{ID: 4, FullName: "Oksana V", ChatID: int64Ptr(4000)},
		}, nil).Once()

	staffMsgr.On("Send", mock.Anything, int64(-100), mock.Anything, mock.Anything).Return(nil).Once()
	staffMsgr.On("Send", mock.Anything, int64(3000), mock.Anything, mock.Anything).Return(nil).Once()
	staffMsgr.On("Send", mock.Anything, int64(4000), mock.Anything, mock.Anything).Return(nil).Once()

	newDispatcher(m).DispatchNewOrder(ctx, o)

	mock.AssertExpectationsForObjects(t, m.settings, m.provider, m.directory, m.roster, staffMsgr)
}

func TestDispatcher_NotifyCourierRemoved_SkipsUnreachableCourier(t *testing.T) {
	ctx := t.Context()
	m := newMocks()

	o := chatOrder(t, 10, 2, nil, nil)

	role, err := staff.RestoreRole(3, "Courier", false, true)
	require.NoError(t, err)
	unreachable, err := staff.RestoreEmployee(7, nil, "Maria K", "+380501112233", role, true, nil)
	require.NoError(t, err)

	newDispatcher(m).NotifyCourierRemoved(ctx, o, unreachable)

	m.provider.AssertNotCalled(t, "Staff", mock.Anything)
}

func TestDispatcher_NotifyCourierAssigned_BuildsCourierActions(t *testing.T) {
	ctx := t.Context()
	m := newMocks()

	o := chatOrder(t, 10, 2, int64Ptr(7), nil)
	courier := reachableCourier(t, 7, 7000)

	staffMsgr := new(MockMessenger)

	m.provider.On("Staff", ctx).Return(staffMsgr, nil).Once()
	m.directory.On("Handle", ctx, queries.NewGetVisibleStatusesQuery(queries.CourierStatuses)).
		Return([]queries.GetVisibleStatusesQueryResponse{
			{ID: 4, Name: "On the way"},
			{ID: 5, Name: "Delivered"},
		}, nil).Once()
	staffMsgr.On("Send", mock.Anything, int64(7000), mock.Anything,
		mock.MatchedBy(func(buttons [][]ports.Button) bool {
			if len(buttons) != 3 { // two statuses + map link row
				return false
			}
			return buttons[0][0].Action == "courier_set_status_10_4" &&
				buttons[1][0].Action == "courier_set_status_10_5" &&
				buttons[2][0].URL != ""
		})).Return(nil).Once()

	newDispatcher(m).NotifyCourierAssigned(ctx, o, courier)

	mock.AssertExpectationsForObjects(t, m.provider, m.directory, staffMsgr)
}
