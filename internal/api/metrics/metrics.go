// Package metrics defines and registers all custom Prometheus metrics for
// the Vendly auction API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register themselves with the default
// registry via promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vendly"

// RegistrationsTotal counts successful registrations.
// Label:
//   - role: the role the user registered with ("admin", "client", "participant")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful user registrations, by role.",
	},
	[]string{"role"},
)

// RegistrationConflictsTotal counts registrations rejected for a duplicate email.
var RegistrationConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registration_conflicts_total",
		Help:      "Total number of registrations rejected because the email was already taken.",
	},
)

// LoginsTotal counts login attempts that reached a terminal outcome.
// Label:
//   - result: "success" or "failure" (failure covers unknown identifier and wrong password alike)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// LoginsThrottledTotal counts logins rejected by the failure throttle before
// any credential check ran.
var LoginsThrottledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_throttled_total",
		Help:      "Total number of login attempts rejected by the failed-login throttle.",
	},
)

// SessionResolutionsTotal counts bearer-token resolutions performed by the
// auth middleware.
// Label:
//   - result: "success" or "failure"
var SessionResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_resolutions_total",
		Help:      "Total number of bearer token resolutions, by result.",
	},
	[]string{"result"},
)

// ProfileCreationFailuresTotal counts best-effort client profile inserts that
// failed after the owning user record was persisted.
var ProfileCreationFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_creation_failures_total",
		Help:      "Total number of client profile inserts that failed after user creation.",
	},
)
