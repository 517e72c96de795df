package metrics

import (
	"time"
)

// NoopCollector implements the metrics interfaces with no-ops, for use in
// tests and in tools that do not report metrics.
type NoopCollector struct{}

func NewNoopCollector() *NoopCollector {
	nc := &NoopCollector{}
	return nc
}

func (nc *NoopCollector) SelectorBuilt(voters uint)                      {}
func (nc *NoopCollector) MembershipQueryDuration(duration time.Duration) {}
