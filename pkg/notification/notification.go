package notification

import "fmt"

// Notification is a named message broadcast to interested observers.
type Notification interface {
	// Name identifies the notification and selects its observers.
	Name() string
	// Body returns the application-defined payload, which may be nil.
	Body() any
	// Type returns an optional discriminator set by the sender.
	Type() string
}

// Message is the default Notification implementation.
// It is an immutable value and safe to share between observers.
type Message struct {
	name string
	body any
	typ  string
}

// Option configures a Message.
type Option func(*Message)

// WithType sets the message type discriminator.
func WithType(t string) Option {
	return func(m *Message) { m.typ = t }
}

// New creates a notification with the given name and body.
func New(name string, body any, opts ...Option) Message {
	m := Message{name: name, body: body}
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	return m
}

func (m Message) Name() string { return m.name }

func (m Message) Body() any { return m.body }

func (m Message) Type() string { return m.typ }

// String renders the message for logs and debugging.
func (m Message) String() string {
	if m.typ == "" {
		return fmt.Sprintf("notification %q body=%v", m.name, m.body)
	}
	return fmt.Sprintf("notification %q type=%q body=%v", m.name, m.typ, m.body)
}
