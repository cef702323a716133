// Package metrics defines and registers all custom Prometheus metrics
// for the employee management API. It is the single source of truth for
// metric names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time
// via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ems"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "rejected" (all rejection reasons look alike,
//     matching the login contract)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionRestoresTotal counts startup session restores.
// Label:
//   - result: "restored" (persisted identity loaded) or "empty" (no
//     usable persisted session)
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of startup session restore attempts, by result.",
	},
	[]string{"result"},
)

// GuardRedirectsTotal counts route-guard denials.
// Label:
//   - reason: "unauthenticated" (sent to login) or "role_mismatch"
//     (sent to the identity's own dashboard)
var GuardRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_redirects_total",
		Help:      "Total number of route guard redirects, by reason.",
	},
	[]string{"reason"},
)

// ── Dashboard metrics ─────────────────────────────────────────────────────────

// CheckinsTotal counts attendance actions.
// Labels:
//   - role: dashboard role performing the action
//   - action: "in" or "out"
var CheckinsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkins_total",
		Help:      "Total number of attendance check-in/out actions, by role and action.",
	},
	[]string{"role", "action"},
)

// LeaveDecisionsTotal counts HR decisions on leave requests.
// Label:
//   - decision: "approved" or "rejected"
var LeaveDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leave_decisions_total",
		Help:      "Total number of leave request decisions, by outcome.",
	},
	[]string{"decision"},
)

// TicketsCreatedTotal counts support tickets raised by employees.
// Label:
//   - category: "technical", "hr", "admin", or "facility"
var TicketsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tickets_created_total",
		Help:      "Total number of support tickets created, by category.",
	},
	[]string{"category"},
)
