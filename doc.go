// Package viewhub is an in-process publish/subscribe registry that routes named
// notifications from senders to interested mediators without either side
// holding a reference to the other.
//
// The module is split into small packages:
//
//   - pkg/notification: the Notification contract and the Message value type
//   - pkg/observer: observers and the name to ordered-observer-list registry
//   - pkg/mediator: the Mediator contract and the mediator registry
//   - pkg/view: the process-wide View combining both registries
//   - pkg/metrics: Prometheus collectors for registry activity
//   - pkg/logger, pkg/config: logging and environment configuration
//
// Basic usage:
//
//	v, err := view.New(view.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	v.RegisterMediator(ctx, &LoginPanel{Base: mediator.NewBase("LoginPanel", panel)})
//	err = v.SendNotification(ctx, "user.login", user)
//
// Broadcasts are synchronous. Observers run on the caller's goroutine in the
// order they registered, against a copy of the observer list taken when the
// broadcast started.
package viewhub
