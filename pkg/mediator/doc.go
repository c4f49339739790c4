// Package mediator defines the Mediator contract and the registry that wires
// mediators into an observer registry.
//
// A mediator is a named component that declares the notification names it is
// interested in and handles them through a single method. Registering a
// mediator creates exactly one Observer for it; that same Observer is appended
// to the list of every declared interest. Removing the mediator strips it from
// all of those lists again.
//
// Embed Base to get a name, a view component and no-op hooks:
//
//	type LoginPanel struct {
//		mediator.Base
//	}
//
//	func (p *LoginPanel) NotificationInterests() []string {
//		return []string{"user.login", "user.logout"}
//	}
//
//	func (p *LoginPanel) HandleNotification(ctx context.Context, n notification.Notification) error {
//		switch n.Name() {
//		case "user.login":
//			// ...
//		}
//		return nil
//	}
//
//	reg := mediator.NewRegistry(observers)
//	reg.RegisterMediator(ctx, &LoginPanel{Base: mediator.NewBase("LoginPanel", nil)})
//
// Registration under a name that is already taken is a no-op: the existing
// mediator stays in place and the newcomer's OnRegister is not called.
package mediator
