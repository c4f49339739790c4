package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrymomot/viewhub/pkg/mediator"
	"github.com/dmitrymomot/viewhub/pkg/notification"
)

const consoleName = "Console"

// console prints every notification it is interested in.
type console struct {
	mediator.Base
	interests []string
	out       io.Writer
}

func newConsole(out io.Writer, interests []string) *console {
	return &console{
		Base:      mediator.NewBase(consoleName, out),
		interests: interests,
		out:       out,
	}
}

func (c *console) NotificationInterests() []string { return c.interests }

func (c *console) HandleNotification(_ context.Context, n notification.Notification) error {
	_, err := fmt.Fprintf(c.out, "%s handled %s", c.Name(), n.Name())
	if err != nil {
		return err
	}
	if body := n.Body(); body != nil && body != "" {
		_, err = fmt.Fprintf(c.out, " body=%v", body)
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(c.out)
	return err
}

func (c *console) OnRegister(context.Context) {
	fmt.Fprintf(c.out, "%s registered interests=[%s]\n", c.Name(), strings.Join(c.interests, ","))
}

func (c *console) OnRemove(context.Context) {
	fmt.Fprintf(c.out, "%s removed\n", c.Name())
}
