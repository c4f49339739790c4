// Command viewhub boots a view registry, registers a console mediator and
// broadcasts the notifications named on the command line.
//
//	viewhub run --interest user.login user.login user.logout
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
