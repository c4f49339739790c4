package observer

import (
	"context"
	"reflect"

	"github.com/google/uuid"

	"github.com/dmitrymomot/viewhub/pkg/notification"
)

// Func is the callback invoked for every matching broadcast.
type Func func(ctx context.Context, n notification.Notification) error

// Observer is a (callback, notify context) pair.
// Observers are compared by notify context, never by callback.
type Observer struct {
	notify        Func
	notifyContext any
}

// New creates an observer. The notify context should be a comparable value;
// a Token from NewToken is the usual choice.
func New(notify Func, notifyContext any) *Observer {
	return &Observer{
		notify:        notify,
		notifyContext: notifyContext,
	}
}

// NotifyObserver invokes the callback. A nil callback is a no-op.
func (o *Observer) NotifyObserver(ctx context.Context, n notification.Notification) error {
	if o.notify == nil {
		return nil
	}
	return o.notify(ctx, n)
}

// NotifyContext returns the identity the observer was created with.
func (o *Observer) NotifyContext() any {
	return o.notifyContext
}

// CompareNotifyContext reports whether c equals the observer's notify context.
// Values that cannot be compared never match.
func (o *Observer) CompareNotifyContext(c any) bool {
	return sameContext(o.notifyContext, c)
}

func sameContext(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

// Token is an opaque, unique notify context.
type Token string

// NewToken returns a token that compares equal only to itself.
func NewToken() Token {
	return Token(uuid.NewString())
}

func (t Token) String() string {
	return string(t)
}
