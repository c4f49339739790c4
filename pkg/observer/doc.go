// Package observer implements the notification-name to observer-list registry
// and its synchronous broadcast.
//
// An Observer pairs a callback with an opaque notify context. The context is
// only ever compared for equality, when a caller asks the registry to remove
// "the observer belonging to X" from a notification list.
//
// Basic usage:
//
//	reg := observer.NewRegistry()
//
//	token := observer.NewToken()
//	reg.RegisterObserver("user.login", observer.New(func(ctx context.Context, n notification.Notification) error {
//		fmt.Println("login:", n.Body())
//		return nil
//	}, token))
//
//	_ = reg.NotifyObservers(ctx, notification.New("user.login", "alice"))
//
//	reg.RemoveObserver("user.login", token)
//
// Broadcast semantics:
//
//   - Observers run on the caller's goroutine in registration order.
//   - The list is copied before the first callback runs. Observers added or
//     removed during a broadcast take effect from the next broadcast.
//   - The first callback error stops the broadcast; the remaining observers
//     of that snapshot are skipped. Panics are not recovered.
//   - Registering the same observer twice yields two invocations.
//
// A Registry is safe for concurrent use. No lock is held while callbacks run,
// so callbacks may freely re-enter the registry.
package observer
