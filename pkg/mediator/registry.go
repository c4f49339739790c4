package mediator

import (
	"context"
	"log/slog"
	"slices"
	"sort"
	"sync"

	"github.com/dmitrymomot/viewhub/pkg/logger"
	"github.com/dmitrymomot/viewhub/pkg/notification"
	"github.com/dmitrymomot/viewhub/pkg/observer"
)

// ObserverRegistry is the part of an observer registry the mediator registry
// needs. *observer.Registry satisfies it.
type ObserverRegistry interface {
	RegisterObserver(name string, o *observer.Observer)
	RemoveObserver(name string, notifyContext any) bool
}

// MetricsRecorder receives registry events. The total is the number of
// mediators registered after the change.
type MetricsRecorder interface {
	MediatorRegistered(name string, total int)
	MediatorRemoved(name string, total int)
}

type noopMetrics struct{}

func (noopMetrics) MediatorRegistered(string, int) {}
func (noopMetrics) MediatorRemoved(string, int)    {}

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

// entry is a registered mediator together with the token of its observer and
// the interests it declared at registration.
type entry struct {
	mediator  Mediator
	token     observer.Token
	interests []string
}

// Registry maps mediator names to mediators.
//
// All methods are safe for concurrent use. OnRegister and OnRemove run after
// the lock is released, so with concurrent callers a RemoveMediator racing a
// RegisterMediator for the same name may run OnRemove before OnRegister.
type Registry struct {
	mu        sync.RWMutex
	mediators map[string]entry
	observers ObserverRegistry
	logger    *slog.Logger
	metrics   MetricsRecorder
}

// NewRegistry creates a mediator registry on top of observers.
// A nil observers argument gets a fresh observer.Registry.
func NewRegistry(observers ObserverRegistry, opts ...Option) *Registry {
	if observers == nil {
		observers = observer.NewRegistry()
	}
	r := &Registry{
		mediators: make(map[string]entry),
		observers: observers,
		logger:    logger.Discard(),
		metrics:   noopMetrics{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	r.logger = r.logger.With(logger.Component("mediator"))
	return r
}

// RegisterMediator stores m under m.Name(), registers one shared observer for
// all of its interests and calls OnRegister. It reports false, and does
// nothing else, when the name is already taken or m is nil.
func (r *Registry) RegisterMediator(ctx context.Context, m Mediator) bool {
	if m == nil {
		return false
	}
	name := m.Name()
	interests := slices.Clone(m.NotificationInterests())
	ctx = logger.WithAttrs(ctx, logger.Mediator(name))

	r.mu.Lock()
	if _, exists := r.mediators[name]; exists {
		r.mu.Unlock()
		r.logger.DebugContext(ctx, "mediator already registered", logger.Mediator(name))
		return false
	}

	e := entry{mediator: m, token: observer.NewToken(), interests: interests}
	r.mediators[name] = e
	if len(interests) > 0 {
		o := observer.New(handler(m, name), e.token)
		for _, interest := range interests {
			r.observers.RegisterObserver(interest, o)
		}
	}
	r.metrics.MediatorRegistered(name, len(r.mediators))
	r.mu.Unlock()

	r.logger.DebugContext(ctx, "mediator registered", logger.Mediator(name), logger.Interests(interests))
	m.OnRegister(ctx)
	return true
}

// RetrieveMediator returns the mediator registered under name.
func (r *Registry) RetrieveMediator(name string) (Mediator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, exists := r.mediators[name]
	if !exists {
		return nil, false
	}
	return e.mediator, true
}

// HasMediator reports whether a mediator is registered under name.
func (r *Registry) HasMediator(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.mediators[name]
	return exists
}

// RemoveMediator unregisters the mediator stored under name: its observer is
// stripped from every interest list, the entry is deleted and OnRemove is
// called. An unknown name returns (nil, false) without side effects.
func (r *Registry) RemoveMediator(ctx context.Context, name string) (Mediator, bool) {
	r.mu.Lock()
	e, exists := r.mediators[name]
	if !exists {
		r.mu.Unlock()
		return nil, false
	}
	ctx = logger.WithAttrs(ctx, logger.Mediator(name))
	for _, interest := range e.interests {
		r.observers.RemoveObserver(interest, e.token)
	}
	delete(r.mediators, name)
	r.metrics.MediatorRemoved(name, len(r.mediators))
	r.mu.Unlock()

	r.logger.DebugContext(ctx, "mediator removed", logger.Mediator(name), logger.Interests(e.interests))
	e.mediator.OnRemove(ctx)
	return e.mediator, true
}

// Token returns the notify context of the observer registered for the
// mediator under name. Passing it to the observer registry's RemoveObserver
// detaches the mediator from a single interest while leaving it registered.
// The second result is false for an unknown name or a mediator without
// interests.
func (r *Registry) Token(name string) (observer.Token, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, exists := r.mediators[name]
	if !exists || len(e.interests) == 0 {
		return "", false
	}
	return e.token, true
}

// MediatorNames returns the registered names in lexical order.
func (r *Registry) MediatorNames() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.mediators))
	for name := range r.mediators {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// MediatorCount returns the number of registered mediators.
func (r *Registry) MediatorCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.mediators)
}

// handler adapts m to an observer callback whose ctx carries the mediator name.
func handler(m Mediator, name string) observer.Func {
	attr := logger.Mediator(name)
	return func(ctx context.Context, n notification.Notification) error {
		return m.HandleNotification(logger.WithAttrs(ctx, attr), n)
	}
}
