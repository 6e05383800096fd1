// Package lifecycle holds shared timings for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds each OnStart/OnStop hook (pings, graceful shutdown).
const DefaultTimeout = 10 * time.Second
