package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	CheckInsCompleted    prometheus.Counter
	BoardingPassesIssued prometheus.Counter
	BookingsCancelled    prometheus.Counter
	AircraftAssignments  prometheus.Counter
	AircraftSwaps        prometheus.Counter
	GateAssignments      prometheus.Counter
	GateConflicts        prometheus.Counter
	TasksCompleted       prometheus.Counter
	CheckInDuration      prometheus.Histogram
	ErrorsCount          *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		CheckInsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkins_completed_total",
			Help:      "The total number of completed passenger check-ins",
		}),
		BoardingPassesIssued: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "boarding_passes_issued_total",
			Help:      "The total number of boarding passes issued",
		}),
		BookingsCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_cancelled_total",
			Help:      "The total number of cancelled bookings",
		}),
		AircraftAssignments: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aircraft_assignments_total",
			Help:      "The total number of aircraft-to-flight assignments",
		}),
		AircraftSwaps: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aircraft_swaps_total",
			Help:      "The total number of completed aircraft swaps",
		}),
		GateAssignments: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gate_assignments_total",
			Help:      "The total number of gate-to-flight assignments",
		}),
		GateConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gate_conflicts_total",
			Help:      "The total number of gate assignments reporting scheduling conflicts",
		}),
		TasksCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ground_tasks_completed_total",
			Help:      "The total number of completed ground-service tasks",
		}),
		CheckInDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "checkin_duration_seconds",
			Help:      "Time taken to complete a check-in",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
