package view

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/viewhub/pkg/logger"
	"github.com/dmitrymomot/viewhub/pkg/mediator"
	"github.com/dmitrymomot/viewhub/pkg/notification"
	"github.com/dmitrymomot/viewhub/pkg/observer"
)

// Recorder collects metrics from both registries.
// *metrics.Recorder satisfies it.
type Recorder interface {
	observer.MetricsRecorder
	mediator.MetricsRecorder
}

// Option configures the View built by New.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	metrics Recorder
}

// WithLogger sets the logger shared by both registries. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics sets the metrics recorder shared by both registries. Nil is ignored.
func WithMetrics(m Recorder) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// View is the combined observer and mediator registry.
type View struct {
	observers *observer.Registry
	mediators *mediator.Registry
}

func build(opts ...Option) *View {
	o := options{logger: logger.Discard()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	observerOpts := []observer.Option{observer.WithLogger(o.logger)}
	mediatorOpts := []mediator.Option{mediator.WithLogger(o.logger)}
	if o.metrics != nil {
		observerOpts = append(observerOpts, observer.WithMetrics(o.metrics))
		mediatorOpts = append(mediatorOpts, mediator.WithMetrics(o.metrics))
	}

	observers := observer.NewRegistry(observerOpts...)
	return &View{
		observers: observers,
		mediators: mediator.NewRegistry(observers, mediatorOpts...),
	}
}

// RegisterObserver appends o to the observer list for name.
func (v *View) RegisterObserver(name string, o *observer.Observer) {
	v.observers.RegisterObserver(name, o)
}

// NotifyObservers broadcasts n to the observers of n.Name().
func (v *View) NotifyObservers(ctx context.Context, n notification.Notification) error {
	return v.observers.NotifyObservers(ctx, n)
}

// RemoveObserver removes the first observer under name with the given notify
// context. Mediator observers match only their MediatorToken.
func (v *View) RemoveObserver(name string, notifyContext any) bool {
	return v.observers.RemoveObserver(name, notifyContext)
}

// HasObservers reports whether name has at least one observer.
func (v *View) HasObservers(name string) bool {
	return v.observers.HasObservers(name)
}

// RegisterMediator registers m unless its name is taken.
func (v *View) RegisterMediator(ctx context.Context, m mediator.Mediator) bool {
	return v.mediators.RegisterMediator(ctx, m)
}

// RetrieveMediator returns the mediator registered under name.
func (v *View) RetrieveMediator(name string) (mediator.Mediator, bool) {
	return v.mediators.RetrieveMediator(name)
}

// RemoveMediator unregisters the mediator registered under name.
func (v *View) RemoveMediator(ctx context.Context, name string) (mediator.Mediator, bool) {
	return v.mediators.RemoveMediator(ctx, name)
}

// MediatorToken returns the notify context of the observer registered for the
// mediator under name, for use with RemoveObserver. The mediator itself is not
// a notify context: RemoveObserver(name, m) never matches a mediator observer.
func (v *View) MediatorToken(name string) (observer.Token, bool) {
	return v.mediators.Token(name)
}

// HasMediator reports whether a mediator is registered under name.
func (v *View) HasMediator(name string) bool {
	return v.mediators.HasMediator(name)
}

// SendNotification builds a notification and broadcasts it.
func (v *View) SendNotification(ctx context.Context, name string, body any, opts ...notification.Option) error {
	return v.observers.NotifyObservers(ctx, notification.New(name, body, opts...))
}
