// Package health provides a thread-safe registry of health checkers backing
// the readiness endpoint in serve mode.
package health

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/go-transform-demo/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Checkers are keyed by Name; registering a second checker with the same
// name replaces the first.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty health check registry.
func New() *Registry {
	return &Registry{}
}

// Register adds or replaces a health checker. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.checkers {
		if c.Name() == checker.Name() {
			r.checkers[i] = checker
			return
		}
	}
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered check and returns results keyed by checker
// name. Checks run outside the lock on a snapshot of the registry.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	results := make(map[string]error, len(checkers))
	for _, c := range checkers {
		results[c.Name()] = c.HealthCheck(ctx)
	}
	return results
}
