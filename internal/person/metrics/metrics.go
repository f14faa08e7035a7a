package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	PersonCreated prometheus.Counter
	PersonDeleted prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		PersonCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "contactbook_persons_created_total",
			Help: "Total number of persons created",
		}),
		PersonDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "contactbook_persons_deleted_total",
			Help: "Total number of persons deleted",
		}),
	}
}

// Increment methods are no-ops on a nil receiver so services can run without
// metrics in tests.

func (m *Metrics) IncrementPersonCreated() {
	if m == nil {
		return
	}
	m.PersonCreated.Inc()
}

func (m *Metrics) IncrementPersonDeleted() {
	if m == nil {
		return
	}
	m.PersonDeleted.Inc()
}
