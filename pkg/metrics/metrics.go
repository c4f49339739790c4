package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const labelNotification = "notification"

var _ prometheus.Collector = (*Recorder)(nil)

// Recorder implements the metrics hooks of the observer and mediator
// registries. It is a prometheus.Collector.
type Recorder struct {
	notifications *prometheus.CounterVec
	deliveries    *prometheus.CounterVec
	observers     *prometheus.GaugeVec
	mediators     prometheus.Gauge
	registrations prometheus.Counter
	removals      prometheus.Counter
}

// New creates a Recorder and registers it with reg. A nil reg skips
// registration.
func New(reg prometheus.Registerer, namespace string) (*Recorder, error) {
	r := &Recorder{
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Broadcasts that found at least one observer.",
		}, []string{labelNotification}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_deliveries_total",
			Help:      "Observers scheduled by broadcasts.",
		}, []string{labelNotification}),
		observers: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "observers",
			Help:      "Observers currently registered per notification.",
		}, []string{labelNotification}),
		mediators: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mediators",
			Help:      "Mediators currently registered.",
		}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mediator_registrations_total",
			Help:      "Successful mediator registrations.",
		}),
		removals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mediator_removals_total",
			Help:      "Successful mediator removals.",
		}),
	}

	if reg == nil {
		return r, nil
	}
	if err := reg.Register(r); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return nil, errors.Join(ErrAlreadyRegistered, err)
		}
		return nil, err
	}
	return r, nil
}

func (r *Recorder) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		r.notifications,
		r.deliveries,
		r.observers,
		r.mediators,
		r.registrations,
		r.removals,
	}
}

// Describe implements prometheus.Collector.
func (r *Recorder) Describe(ch chan<- *prometheus.Desc) {
	for _, c := range r.collectors() {
		c.Describe(ch)
	}
}

// Collect implements prometheus.Collector.
func (r *Recorder) Collect(ch chan<- prometheus.Metric) {
	for _, c := range r.collectors() {
		c.Collect(ch)
	}
}

// NotificationDispatched counts a broadcast and the observers it reached.
func (r *Recorder) NotificationDispatched(name string, observers int) {
	r.notifications.WithLabelValues(name).Inc()
	r.deliveries.WithLabelValues(name).Add(float64(observers))
}

// ObserversChanged sets the observer gauge for name, dropping the series at zero.
func (r *Recorder) ObserversChanged(name string, count int) {
	if count == 0 {
		r.observers.DeleteLabelValues(name)
		return
	}
	r.observers.WithLabelValues(name).Set(float64(count))
}

// MediatorRegistered counts a registration and sets the mediator gauge.
func (r *Recorder) MediatorRegistered(_ string, total int) {
	r.registrations.Inc()
	r.mediators.Set(float64(total))
}

// MediatorRemoved counts a removal and sets the mediator gauge.
func (r *Recorder) MediatorRemoved(_ string, total int) {
	r.removals.Inc()
	r.mediators.Set(float64(total))
}
