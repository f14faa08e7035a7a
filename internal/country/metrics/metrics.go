package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	CountryCreated prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		CountryCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "contactbook_countries_created_total",
			Help: "Total number of countries created",
		}),
	}
}

// IncrementCountryCreated is a no-op on a nil receiver so services can run
// without metrics in tests.
func (m *Metrics) IncrementCountryCreated() {
	if m == nil {
		return
	}
	m.CountryCreated.Inc()
}
