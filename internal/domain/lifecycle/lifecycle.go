// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks such as DB pings and HTTP shutdown.
const DefaultTimeout = 10 * time.Second
