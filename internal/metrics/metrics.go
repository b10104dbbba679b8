package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SignupsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "signups_total",
			Help: "Total successful registrations",
		},
	)
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Total login attempts",
		},
		[]string{"outcome"}, // ok|denied
	)
	WrapsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wraps_created_total",
			Help: "Total wraps created",
		},
	)
	WrapsDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wraps_deleted_total",
			Help: "Total wraps deleted",
		},
	)
	ItemsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wrap_items_created_total",
			Help: "Total wrap items created",
		},
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(SignupsTotal)
	prometheus.MustRegister(LoginsTotal)
	prometheus.MustRegister(WrapsCreated)
	prometheus.MustRegister(WrapsDeleted)
	prometheus.MustRegister(ItemsCreated)
}
