// Package metrics exposes Prometheus counters for the scheduling core.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeCreated       = "created"
	OutcomeOverlap       = "overlap"
	OutcomeDuplicate     = "duplicate"
	OutcomeShiftNotFound = "shift_not_found"
	OutcomeStaffNotFound = "staff_not_found"
	OutcomeError         = "error"
)

var outcomes = []string{
	OutcomeCreated,
	OutcomeOverlap,
	OutcomeDuplicate,
	OutcomeShiftNotFound,
	OutcomeStaffNotFound,
	OutcomeError,
}

// Recorder is what the use cases depend on.
type Recorder interface {
	RecordAssignment(outcome string)
	RecordShiftCreated()
	RecordOverlapCheck(d time.Duration)
}

type Collector struct {
	assignments   *prometheus.CounterVec
	shiftsCreated prometheus.Counter
	overlapCheck  prometheus.Histogram
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		assignments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shift_scheduler_assignments_total",
			Help: "Assignment attempts by outcome.",
		}, []string{"outcome"}),
		shiftsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shift_scheduler_shifts_created_total",
			Help: "Shifts created.",
		}),
		overlapCheck: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "shift_scheduler_overlap_check_seconds",
			Help:    "Latency of the per-staff overlap scan.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.assignments,
		c.shiftsCreated,
		c.overlapCheck,
	)

	// export every outcome at zero from the start
	for _, o := range outcomes {
		c.assignments.WithLabelValues(o)
	}

	return c
}

func (c *Collector) RecordAssignment(outcome string) {
	c.assignments.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordShiftCreated() {
	c.shiftsCreated.Inc()
}

func (c *Collector) RecordOverlapCheck(d time.Duration) {
	c.overlapCheck.Observe(d.Seconds())
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordAssignment(string)          {}
func (Nop) RecordShiftCreated()              {}
func (Nop) RecordOverlapCheck(time.Duration) {}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
