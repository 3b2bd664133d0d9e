// Package metrics defines all custom Prometheus metrics for the job-search
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry at init via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobsearch"

// AuthResolutionsTotal counts credential resolution attempts.
// Label:
//   - result: "ok", "missing", "invalid_token", "unresolved", or "error"
var AuthResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_resolutions_total",
		Help:      "Total number of bearer credential resolutions, by result.",
	},
	[]string{"result"},
)

// AdminDecisionsTotal counts admin authorization decisions.
// Label:
//   - decision: "granted" or "denied"
var AdminDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_decisions_total",
		Help:      "Total number of admin authorization decisions.",
	},
	[]string{"decision"},
)

// DashboardComputeDuration measures how long a dashboard stats computation
// takes, including the storage reads it fans out to.
var DashboardComputeDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dashboard_compute_duration_seconds",
		Help:      "Duration of dashboard statistics computation.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ReportsGeneratedTotal counts PDF reports rendered for users.
var ReportsGeneratedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_generated_total",
		Help:      "Total number of PDF performance reports generated.",
	},
)
