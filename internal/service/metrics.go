package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics
var (
	resultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assembly_validator_results_total",
			Help: "The total number of validation results by status",
		},
		[]string{"status"},
	)
	rejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assembly_validator_rejections_total",
			Help: "The total number of validation requests rejected before any descriptor was read",
		},
		[]string{"reason"},
	)
	validationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "assembly_validator_validation_duration_seconds",
			Help:    "Time spent validating one directory",
			Buckets: prometheus.DefBuckets,
		},
	)
)
