package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Notification records a notification name under the key "notification".
func Notification(name string) slog.Attr {
	return slog.String("notification", name)
}

// Mediator records a mediator name under the key "mediator".
func Mediator(name string) slog.Attr {
	return slog.String("mediator", name)
}

// ObserverCount records the number of observers under the key "observers".
func ObserverCount(n int) slog.Attr {
	return slog.Int("observers", n)
}

// Interests records notification interests under the key "interests".
// A nil or empty list yields an empty Attr.
func Interests(names []string) slog.Attr {
	if len(names) == 0 {
		return slog.Attr{}
	}
	return slog.Any("interests", names)
}

// RunID records a run correlation id under the key "run_id".
func RunID(id string) slog.Attr {
	return slog.String("run_id", id)
}
