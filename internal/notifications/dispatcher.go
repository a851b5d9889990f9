// Package notifications computes recipient sets for order events and
// delivers messages across the two messaging identities. Delivery is
// best-effort by contract: every send is individually time-bounded, every
// failure is logged with the recipient and a per-dispatch correlation id,
// and nothing ever propagates back to the mutation that triggered the
// fan-out.
package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/staff"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

// sendTimeout bounds every individual outbound send so one hanging
// recipient cannot block the rest of the fan-out.
const sendTimeout = 5 * time.Second

// StaffRoster reads the on-shift roster. Satisfied by
// queries.GetStaffOnShiftQueryHandler.
type StaffRoster interface {
	Handle(ctx context.Context, query queries.GetStaffOnShiftQuery) ([]queries.GetStaffOnShiftQueryResponse, error)
}

// StatusDirectory reads an audience's status button set. Satisfied by
// queries.GetVisibleStatusesQueryHandler.
type StatusDirectory interface {
	Handle(ctx context.Context, query queries.GetVisibleStatusesQuery) ([]queries.GetVisibleStatusesQueryResponse, error)
}

// Dispatcher fans order events out to the staff channel, on-duty staff
// and the customer. State is re-read per dispatch: settings, roster and
// status flags are never cached across calls.
type Dispatcher struct {
	settings  ports.SettingsRepository
	provider  ports.MessengerProvider
	employees ports.EmployeeRepository
	statuses  ports.StatusRepository
	roster    StaffRoster
	directory StatusDirectory
	logger    *slog.Logger
}

// NewDispatcher creates the notification dispatcher.
func NewDispatcher(
	settings ports.SettingsRepository,
	provider ports.MessengerProvider,
	employees ports.EmployeeRepository,
	statuses ports.StatusRepository,
	roster StaffRoster,
	directory StatusDirectory,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		settings:  settings,
		provider:  provider,
		employees: employees,
		statuses:  statuses,
		roster:    roster,
		directory: directory,
		logger:    logger.With("component", "notifications"),
	}
}

// Dispatch fans out one accepted status transition. Recipients, in this
// order: the shared staff channel, the assigned courier (only for
// operator-originated changes, so couriers do not re-notify themselves),
// and the customer (only when the new status is flagged notify-customer,
// the order was placed via chat, and the customer identity is available).
func (d *Dispatcher) Dispatch(ctx context.Context, o *order.Order, oldStatusName string, actor order.Actor) {
	log := d.dispatchLogger(o)

	settings, err := d.settings.Get(ctx)
	if err != nil {
		log.ErrorContext(ctx, "reading settings", "error", err)
		return
	}

	newStatus, err := d.statuses.Get(ctx, o.StatusID())
	if err != nil {
		log.ErrorContext(ctx, "reading new status", "error", err)
		return
	}

	staffMsgr, err := d.provider.Staff(ctx)
	if err != nil {
		log.ErrorContext(ctx, "acquiring staff messenger", "error", err)
		staffMsgr = nil
	}

	if staffMsgr != nil && settings.HasStaffChannel() {
		text := fmt.Sprintf(
			"Order #%d: %s → %s (%s)",
			o.ID(), oldStatusName, newStatus.Name(), actor.Description(),
		)
		d.send(ctx, log, staffMsgr, "staff channel", settings.StaffChannelID, o.ID(), text, nil)
	}

	if staffMsgr != nil && actor.IsOperator() && o.CourierID() != nil {
		courier, courierErr := d.employees.Get(ctx, *o.CourierID())
		if courierErr != nil {
			log.ErrorContext(ctx, "reading assigned courier", "error", courierErr)
		} else if courier.ChatID() != nil {
			text := fmt.Sprintf("Order #%d you are delivering is now: %s", o.ID(), newStatus.Name())
			d.send(ctx, log, staffMsgr, "courier", *courier.ChatID(), o.ID(), text, nil)
		}
	}

	if newStatus.NotifyCustomer() && o.PlacedViaChat() {
		customerMsgr, customerErr := d.provider.Customer(ctx)
		if customerErr != nil {
			// triggered from a context without the customer identity;
			// skip, do not fail the dispatch
			log.WarnContext(ctx, "customer messenger unavailable", "error", customerErr)
			return
		}

		text := fmt.Sprintf("Your order #%d is now: %s", o.ID(), newStatus.Name())
		d.send(ctx, log, customerMsgr, "customer", *o.Origin().ChatID, o.ID(), text, nil)
	}
}

// DispatchNewOrder fans a freshly placed order out at genesis: the full
// order detail with action buttons goes to the staff channel and to every
// on-shift, order-managing, reachable employee. When no such employee
// exists, an extra warning goes to the channel so the order is not lost.
func (d *Dispatcher) DispatchNewOrder(ctx context.Context, o *order.Order) {
	log := d.dispatchLogger(o)

	settings, err := d.settings.Get(ctx)
	if err != nil {
		log.ErrorContext(ctx, "reading settings", "error", err)
		return
	}

	staffMsgr, err := d.provider.Staff(ctx)
	if err != nil {
		log.ErrorContext(ctx, "acquiring staff messenger", "error", err)
		return
	}

	text := "New order!\n\n" + orderDetails(o)
	buttons, err := d.operatorActions(ctx, o)
	if err != nil {
		log.ErrorContext(ctx, "building operator actions", "error", err)
	}

	if settings.HasStaffChannel() {
		d.send(ctx, log, staffMsgr, "staff channel", settings.StaffChannelID, o.ID(), text, buttons)
	}

	operators, err := d.roster.Handle(ctx, queries.NewGetStaffOnShiftQuery(queries.CanManageOrders))
	if err != nil {
		log.ErrorContext(ctx, "reading operator roster", "error", err)
		return
	}

	reached := 0
	for _, operator := range operators {
		if !operator.Reachable() {
			continue
		}

		reached++
		d.send(ctx, log, staffMsgr, "operator "+operator.FullName, *operator.ChatID, o.ID(), text, buttons)
	}

	if reached == 0 && settings.HasStaffChannel() {
		warning := fmt.Sprintf("Warning: no operators are on shift, order #%d is unattended!", o.ID())
		d.send(ctx, log, staffMsgr, "staff channel", settings.StaffChannelID, o.ID(), warning, nil)
	}
}

// NotifyCourierRemoved tells the previous courier an order was taken from
// them. Skipped when the courier has no chat identity bound.
func (d *Dispatcher) NotifyCourierRemoved(ctx context.Context, o *order.Order, courier *staff.Employee) {
	if courier.ChatID() == nil {
		return
	}

	log := d.dispatchLogger(o)

	staffMsgr, err := d.provider.Staff(ctx)
	if err != nil {
		log.ErrorContext(ctx, "acquiring staff messenger", "error", err)
		return
	}

	text := fmt.Sprintf("Order #%d was taken from you.", o.ID())
	d.send(ctx, log, staffMsgr, "courier", *courier.ChatID(), o.ID(), text, nil)
}

// NotifyCourierAssigned sends the new courier the order details with
// courier-visible status actions, plus a jump-to-map link for deliveries
// with a known address.
func (d *Dispatcher) NotifyCourierAssigned(ctx context.Context, o *order.Order, courier *staff.Employee) {
	if courier.ChatID() == nil {
		return
	}

	log := d.dispatchLogger(o)

	staffMsgr, err := d.provider.Staff(ctx)
	if err != nil {
		log.ErrorContext(ctx, "acquiring staff messenger", "error", err)
		return
	}

	text := "You have been assigned an order.\n\n" + orderDetails(o)
	buttons, err := d.courierActions(ctx, o)
	if err != nil {
		log.ErrorContext(ctx, "building courier actions", "error", err)
	}

	d.send(ctx, log, staffMsgr, "courier", *courier.ChatID(), o.ID(), text, buttons)
}

// LogCourierAssignment writes one line to the shared staff channel naming
// the order's new courier.
func (d *Dispatcher) LogCourierAssignment(ctx context.Context, o *order.Order, courierName string) {
	log := d.dispatchLogger(o)

	settings, err := d.settings.Get(ctx)
	if err != nil {
		log.ErrorContext(ctx, "reading settings", "error", err)
		return
	}
	if !settings.HasStaffChannel() {
		return
	}

	staffMsgr, err := d.provider.Staff(ctx)
	if err != nil {
		log.ErrorContext(ctx, "acquiring staff messenger", "error", err)
		return
	}

	text := fmt.Sprintf("Order #%d courier: %s", o.ID(), courierName)
	d.send(ctx, log, staffMsgr, "staff channel", settings.StaffChannelID, o.ID(), text, nil)
}

// NotifyStaleOrders re-raises unattended orders in the staff channel.
func (d *Dispatcher) NotifyStaleOrders(ctx context.Context, stale []queries.GetStaleNewOrdersQueryResponse) {
	if len(stale) == 0 {
		return
	}

	log := d.logger.With("dispatch_id", uuid.New().String())

	settings, err := d.settings.Get(ctx)
	if err != nil {
		log.ErrorContext(ctx, "reading settings", "error", err)
		return
	}
	if !settings.HasStaffChannel() {
		return
	}

	staffMsgr, err := d.provider.Staff(ctx)
	if err != nil {
		log.ErrorContext(ctx, "acquiring staff messenger", "error", err)
		return
	}

	var b strings.Builder
	b.WriteString("Unattended orders:\n")
	for _, o := range stale {
		fmt.Fprintf(&b, "#%d (%s, placed %s)\n", o.ID, o.CustomerName, o.CreatedAt.Format("15:04"))
	}

	d.send(ctx, log, staffMsgr, "staff channel", settings.StaffChannelID, 0, b.String(), nil)
}

func (d *Dispatcher) dispatchLogger(o *order.Order) *slog.Logger {
	return d.logger.With("dispatch_id", uuid.New().String(), "order_id", o.ID())
}

// send delivers to one recipient inside its own timeout and swallows the
// failure after logging it.
func (d *Dispatcher) send(
	ctx context.Context,
	log *slog.Logger,
	messenger ports.Messenger,
	recipient string,
	chatID int64,
	orderID int64,
	text string,
	buttons [][]ports.Button,
) {
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if err := messenger.Send(sendCtx, chatID, text, buttons); err != nil {
		failure := errs.NewDeliveryFailureError(recipient, orderID, err)
		log.ErrorContext(ctx, "delivery failed", "recipient", recipient, "error", failure)
	}
}

func (d *Dispatcher) operatorActions(ctx context.Context, o *order.Order) ([][]ports.Button, error) {
	statuses, err := d.directory.Handle(ctx, queries.NewGetVisibleStatusesQuery(queries.OperatorStatuses))
	if err != nil {
		return nil, err
	}

	buttons := make([][]ports.Button, 0, len(statuses)+1)
	for _, s := range statuses {
		buttons = append(buttons, []ports.Button{{
			Label:  s.Name,
			Action: fmt.Sprintf("change_order_status_%d_%d", o.ID(), s.ID),
		}})
	}
	buttons = append(buttons, []ports.Button{
		{Label: "Assign courier", Action: fmt.Sprintf("select_courier_%d", o.ID())},
		{Label: "Edit order", Action: fmt.Sprintf("edit_order_%d", o.ID())},
	})

	if link := mapLink(o); link != "" {
		buttons = append(buttons, []ports.Button{{Label: "Open map", URL: link}})
	}

	return buttons, nil
}

func (d *Dispatcher) courierActions(ctx context.Context, o *order.Order) ([][]ports.Button, error) {
	statuses, err := d.directory.Handle(ctx, queries.NewGetVisibleStatusesQuery(queries.CourierStatuses))
	if err != nil {
		return nil, err
	}

	buttons := make([][]ports.Button, 0, len(statuses)+1)
	for _, s := range statuses {
		buttons = append(buttons, []ports.Button{{
			Label:  s.Name,
			Action: fmt.Sprintf("courier_set_status_%d_%d", o.ID(), s.ID),
		}})
	}

	if link := mapLink(o); link != "" {
		buttons = append(buttons, []ports.Button{{Label: "Open map", URL: link}})
	}

	return buttons, nil
}

// orderDetails renders the full order card shared by the genesis fan-out
// and the courier assignment notice.
func orderDetails(o *order.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Order #%d\n", o.ID())
	if !o.Composition().IsEmpty() {
		fmt.Fprintf(&b, "Items: %s\n", o.Composition())
	}
	fmt.Fprintf(&b, "Total: %d\n", o.TotalPrice())
	fmt.Fprintf(&b, "Customer: %s, %s\n", o.Customer().Name, o.Customer().Phone)
	if o.IsDelivery() {
		fmt.Fprintf(&b, "Delivery to: %s\n", o.Customer().Address)
	} else {
		b.WriteString("Pickup\n")
	}
	fmt.Fprintf(&b, "Time: %s", o.RequestedTime())

	return b.String()
}

// mapLink builds the jump-to-map URL for deliveries with a known address.
func mapLink(o *order.Order) string {
	if !o.IsDelivery() || o.Customer().Address == "" {
		return ""
	}
	return "https://maps.google.com/?q=" + url.QueryEscape(o.Customer().Address)
}
