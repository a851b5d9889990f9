package ports

import "context"

// Button is one quick-action the recipient can press under a message.
// Action carries opaque callback data handled by the chat surface; URL
// buttons open a link instead. Exactly one of the two is set.
type Button struct {
	Label  string
	Action string
	URL    string
}

// Messenger sends formatted text, with optional button rows, to one chat
// destination over one messaging identity. Every send fails independently
// and must be individually time-bounded by the caller's context.
type Messenger interface {
	Send(ctx context.Context, chatID int64, text string, buttons [][]Button) error
}

// MessengerProvider acquires the two messaging identities for the duration
// of one dispatch. Staff carries the channel log and courier/operator
// notices; Customer carries only customer notices. Either identity may be
// unavailable (unconfigured token), which the dispatcher treats as a skip,
// not a failure.
type MessengerProvider interface {
	Staff(ctx context.Context) (Messenger, error)
	Customer(ctx context.Context) (Messenger, error)
}
