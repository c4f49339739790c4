// Package notification defines the named message routed by the view registry.
//
// The registry only ever reads Name; Body and Type travel with the message
// untouched so that senders and mediators can agree on their own payloads.
//
// Basic usage:
//
//	n := notification.New("user.login", user, notification.WithType("success"))
//	err := v.NotifyObservers(ctx, n)
package notification
