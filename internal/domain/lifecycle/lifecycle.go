// Package lifecycle holds shared settings for fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start or stop hook that talks to a remote dependency.
const DefaultTimeout = 10 * time.Second
