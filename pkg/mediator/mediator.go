package mediator

import (
	"context"

	"github.com/dmitrymomot/viewhub/pkg/notification"
)

// DefaultName is used by NewBase when no name is given.
const DefaultName = "Mediator"

// Mediator is a named component reacting to notifications.
type Mediator interface {
	// Name must be unique among registered mediators.
	Name() string
	// NotificationInterests lists the notification names to observe.
	// It is read once, at registration.
	NotificationInterests() []string
	// HandleNotification is called for every broadcast of an interest.
	HandleNotification(ctx context.Context, n notification.Notification) error
	// OnRegister is called after the mediator and its observer are in place.
	OnRegister(ctx context.Context)
	// OnRemove is called after the mediator has been fully unregistered.
	OnRemove(ctx context.Context)
}

// Base is an embeddable Mediator with no interests and no-op hooks.
type Base struct {
	name          string
	viewComponent any
}

// NewBase creates a Base. An empty name falls back to DefaultName.
func NewBase(name string, viewComponent any) Base {
	if name == "" {
		name = DefaultName
	}
	return Base{name: name, viewComponent: viewComponent}
}

// Name returns the mediator name, or DefaultName for a zero Base.
func (b *Base) Name() string {
	if b.name == "" {
		return DefaultName
	}
	return b.name
}

// ViewComponent returns the UI element this mediator manages.
func (b *Base) ViewComponent() any { return b.viewComponent }

// SetViewComponent replaces the managed UI element.
func (b *Base) SetViewComponent(c any) { b.viewComponent = c }

// NotificationInterests returns no interests.
func (b *Base) NotificationInterests() []string { return nil }

// HandleNotification ignores n.
func (b *Base) HandleNotification(context.Context, notification.Notification) error { return nil }

// OnRegister does nothing.
func (b *Base) OnRegister(context.Context) {}

// OnRemove does nothing.
func (b *Base) OnRemove(context.Context) {}
