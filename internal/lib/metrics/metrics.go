// Package metrics содержит prometheus-метрики сервиса настройки пакетов.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pledge_customizer"

// Metrics — счётчики запросов расчёта цены, действий формы и оформленных пледжей.
type Metrics struct {
	Quotes        *prometheus.CounterVec
	Actions       *prometheus.CounterVec
	Pledges       *prometheus.CounterVec
	Rejected      *prometheus.CounterVec
	PledgeTotal   *prometheus.HistogramVec
	PublishErrors prometheus.Counter
}

// New создаёт метрики и регистрирует их в reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_total",
			Help:      "Number of price quotes by package.",
		}, []string{"package"}),
		Actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "customize_actions_total",
			Help:      "Number of customization actions by package and action type.",
		}, []string{"package", "action"}),
		Pledges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pledges_created_total",
			Help:      "Number of stored pledges by package and user price mode.",
		}, []string{"package", "user_price"}),
		Rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pledges_rejected_total",
			Help:      "Number of pledges rejected by validation.",
		}, []string{"package"}),
		PledgeTotal: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pledge_total_chf",
			Help:      "Distribution of pledge totals in CHF.",
			Buckets:   []float64{10, 50, 100, 240, 500, 1000, 5000},
		}, []string{"package"}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_publish_errors_total",
			Help:      "Number of pledge events that failed to publish.",
		}),
	}
	reg.MustRegister(m.Quotes, m.Actions, m.Pledges, m.Rejected, m.PledgeTotal, m.PublishErrors)
	return m
}
