package order

import "fmt"

// ActorKind identifies which surface a mutation originated from.
type ActorKind int

const (
	// ActorSystem marks mutations performed by the system itself
	// (scheduled jobs, migrations).
	ActorSystem ActorKind = iota
	// ActorOperator marks mutations by an order-managing employee.
	ActorOperator
	// ActorCourier marks mutations by the courier working the order.
	ActorCourier
	// ActorWebAdmin marks mutations from the browser admin panel.
	ActorWebAdmin
)

// Actor is the attribution of a mutation: who triggered it and through
// which surface. It is carried as a value through transition and dispatch
// calls and formatted to text only at the boundaries (audit rows, message
// bodies), so recipient rules can compare kinds instead of parsing strings.
type Actor struct {
	kind        ActorKind
	displayName string
	employeeID  int64
}

// NewOperatorActor attributes a mutation to an order-managing employee.
func NewOperatorActor(employeeID int64, displayName string) Actor {
	return Actor{kind: ActorOperator, displayName: displayName, employeeID: employeeID}
}

// NewCourierActor attributes a mutation to a courier.
func NewCourierActor(employeeID int64, displayName string) Actor {
	return Actor{kind: ActorCourier, displayName: displayName, employeeID: employeeID}
}

// NewWebAdminActor attributes a mutation to the browser admin panel.
func NewWebAdminActor() Actor {
	return Actor{kind: ActorWebAdmin}
}

// NewSystemActor attributes a mutation to the system itself.
func NewSystemActor() Actor {
	return Actor{kind: ActorSystem}
}

// Kind returns the originating surface.
func (a Actor) Kind() ActorKind {
	return a.kind
}

// EmployeeID returns the acting employee's identity, or 0 when the actor
// is not a staff member.
func (a Actor) EmployeeID() int64 {
	return a.employeeID
}

// IsOperator reports whether the mutation came from an order-managing
// employee.
func (a Actor) IsOperator() bool {
	return a.kind == ActorOperator
}

// IsCourier reports whether the mutation came from a courier.
func (a Actor) IsCourier() bool {
	return a.kind == ActorCourier
}

// Description renders the attribution as the human-readable text stored in
// audit rows and shown in staff messages.
func (a Actor) Description() string {
	switch a.kind {
	case ActorOperator:
		return fmt.Sprintf("Operator: %s", a.displayName)
	case ActorCourier:
		return fmt.Sprintf("Courier: %s", a.displayName)
	case ActorWebAdmin:
		return "Web admin"
	default:
		return "System"
	}
}
