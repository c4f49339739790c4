// Package logger builds the *slog.Logger used across viewhub and provides the
// attribute helpers that keep registry log records consistent.
//
// New creates a logger configured by Option functions: output format (text or
// json), minimum level and static attributes. Attributes stored on a
// context.Context with WithAttrs are added to every record logged with it.
//
// # Architecture
//
// New selects slog.NewTextHandler or slog.NewJSONHandler, applies static
// attributes, and wraps the result in a handler that copies the context
// attributes onto each record, skipping keys the record already sets.
//
// The observer registry tags the context passed to observers with the
// notification name, and the mediator registry tags handler and hook contexts
// with the mediator name, so records logged from inside a mediator carry both.
// The registries never log unless given a logger; their default is Discard.
//
// # Usage
//
//	log := logger.New(logger.WithEnvironment("development", "viewhub"))
//	ctx = logger.WithAttrs(ctx, logger.RunID(uuid.NewString()))
//
//	v, err := view.New(view.WithLogger(log))
//
// # Attributes
//
// Notification, Mediator, ObserverCount, Interests, Component and RunID name the
// fields registries emit. Error returns an empty attribute for a nil error so
// callers can log unconditionally:
//
//	log.Debug("broadcast finished", logger.Notification(name), logger.Error(err))
package logger
