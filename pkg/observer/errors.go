package observer

import "fmt"

// ErrObserverFailed wraps an error returned by an observer callback.
// The broadcast that produced it was stopped at Index.
type ErrObserverFailed struct {
	Notification string
	Index        int
	Err          error
}

func (e ErrObserverFailed) Error() string {
	return fmt.Sprintf("observer: notification %s: observer #%d failed: %v", e.Notification, e.Index, e.Err)
}

func (e ErrObserverFailed) Unwrap() error {
	return e.Err
}
