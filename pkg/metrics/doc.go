// Package metrics exports view registry activity as Prometheus metrics.
//
//	rec, err := metrics.New(prometheus.DefaultRegisterer, "viewhub")
//	if err != nil {
//		return err
//	}
//	v, err := view.New(view.WithMetrics(rec))
//
// Exported series, with <ns> the namespace given to New:
//
//   - <ns>_notifications_total{notification}: broadcasts that reached observers
//   - <ns>_notification_deliveries_total{notification}: observer invocations scheduled
//   - <ns>_observers{notification}: current observer list length
//   - <ns>_mediators: registered mediators
//   - <ns>_mediator_registrations_total, <ns>_mediator_removals_total
//
// The observers gauge series for a name is deleted when its list empties, so
// cardinality follows the live registry.
package metrics
