// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package monitoring exposes prometheus metrics for tallies.
//
// Create one Registry per process, register a TallyMonitor on it and mount
// Registry.Handler at /metrics.
package monitoring
