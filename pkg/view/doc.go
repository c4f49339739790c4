// Package view ties the observer and mediator registries together behind a
// single process-wide handle.
//
// Exactly one View exists per process. Create it explicitly during setup and
// pass it to the components that need it:
//
//	v, err := view.New(
//		view.WithLogger(log),
//		view.WithMetrics(recorder),
//	)
//	if errors.Is(err, view.ErrAlreadyConstructed) {
//		// someone else already built it
//	}
//
// Code that cannot receive the handle through injection may use Instance,
// which returns the shared View and builds it with default options on first
// use. A later New then fails with ErrAlreadyConstructed; there is no reset.
//
// All operations are synchronous. NotifyObservers runs every observer on the
// calling goroutine before returning, and observers may re-enter the View to
// register, remove or broadcast.
package view
