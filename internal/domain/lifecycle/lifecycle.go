// Package lifecycle holds limits shared by components that start and stop
// with the application.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a single component.
const DefaultTimeout = 10 * time.Second
