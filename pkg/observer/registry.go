package observer

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/viewhub/pkg/logger"
	"github.com/dmitrymomot/viewhub/pkg/notification"
)

// MetricsRecorder receives registry events. Implementations must be fast and
// must not call back into the registry.
type MetricsRecorder interface {
	// NotificationDispatched is called once per broadcast that found observers.
	NotificationDispatched(name string, observers int)
	// ObserversChanged reports the new list length after a registration or
	// removal; zero means the name was dropped.
	ObserversChanged(name string, count int)
}

type noopMetrics struct{}

func (noopMetrics) NotificationDispatched(string, int) {}
func (noopMetrics) ObserversChanged(string, int)       {}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for debug records. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics sets the metrics recorder. Nil is ignored.
func WithMetrics(m MetricsRecorder) Option {
	return func(r *Registry) {
		if m != nil {
			r.metrics = m
		}
	}
}

// Registry maps notification names to ordered observer lists.
// A name whose list becomes empty is removed.
type Registry struct {
	mu        sync.RWMutex
	observers map[string][]*Observer
	names     []string // live keys, in creation order
	logger    *slog.Logger
	metrics   MetricsRecorder
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		observers: make(map[string][]*Observer),
		logger:    logger.Discard(),
		metrics:   noopMetrics{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	r.logger = r.logger.With(logger.Component("observer"))
	return r
}

// RegisterObserver appends o to the list for name, creating the list if
// absent. The same observer may be registered more than once; each entry is
// invoked separately. A nil observer is ignored.
func (r *Registry) RegisterObserver(name string, o *Observer) {
	if o == nil {
		return
	}

	r.mu.Lock()
	list, exists := r.observers[name]
	if !exists {
		r.names = append(r.names, name)
	}
	list = append(list, o)
	r.observers[name] = list
	count := len(list)
	r.metrics.ObserversChanged(name, count)
	r.mu.Unlock()

	r.logger.Debug("observer registered", logger.Notification(name), logger.ObserverCount(count))
}

// NotifyObservers broadcasts n to every observer registered under n.Name().
//
// The list is copied before dispatch, so changes made by observers affect only
// later broadcasts. Dispatch stops at the first failing observer and its
// error is returned wrapped in ErrObserverFailed. An unknown name is a no-op.
// Observers receive ctx tagged with the notification name for logging.
func (r *Registry) NotifyObservers(ctx context.Context, n notification.Notification) error {
	if n == nil {
		return nil
	}
	name := n.Name()

	r.mu.RLock()
	live, exists := r.observers[name]
	if !exists {
		r.mu.RUnlock()
		return nil
	}
	snapshot := slices.Clone(live)
	r.mu.RUnlock()

	ctx = logger.WithAttrs(ctx, logger.Notification(name))
	r.metrics.NotificationDispatched(name, len(snapshot))
	r.logger.DebugContext(ctx, "broadcasting notification",
		logger.Notification(name),
		logger.ObserverCount(len(snapshot)),
	)

	for i, o := range snapshot {
		if err := o.NotifyObserver(ctx, n); err != nil {
			err = &ErrObserverFailed{Notification: name, Index: i, Err: err}
			r.logger.DebugContext(ctx, "broadcast aborted", logger.Notification(name), logger.Error(err))
			return err
		}
	}
	return nil
}

// RemoveObserver removes the first observer under name whose notify context
// equals notifyContext. It reports whether an observer was removed; an unknown
// name or a missing match leaves the registry untouched.
//
// Observers created by a mediator registry use a token as notify context, not
// the mediator; see mediator.Registry.Token.
func (r *Registry) RemoveObserver(name string, notifyContext any) bool {
	r.mu.Lock()
	list, exists := r.observers[name]
	if !exists {
		r.mu.Unlock()
		return false
	}

	i := slices.IndexFunc(list, func(o *Observer) bool {
		return o.CompareNotifyContext(notifyContext)
	})
	if i < 0 {
		r.mu.Unlock()
		return false
	}

	list = slices.Delete(list, i, i+1)
	if len(list) == 0 {
		delete(r.observers, name)
		if j := slices.Index(r.names, name); j >= 0 {
			r.names = slices.Delete(r.names, j, j+1)
		}
	} else {
		r.observers[name] = list
	}
	count := len(list)
	r.metrics.ObserversChanged(name, count)
	r.mu.Unlock()

	r.logger.Debug("observer removed", logger.Notification(name), logger.ObserverCount(count))
	return true
}

// HasObservers reports whether any observer is registered under name.
func (r *Registry) HasObservers(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.observers[name]
	return exists
}

// ObserverCount returns the number of entries registered under name.
func (r *Registry) ObserverCount(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.observers[name])
}

// Names returns the notification names that currently have observers, in the
// order their lists were created.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.names)
}
