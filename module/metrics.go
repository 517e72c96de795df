package module

import (
	"time"
)

// VoterGroupMetrics encapsulates the metrics collectors for the voter group
// selection component.
type VoterGroupMetrics interface {
	// SelectorBuilt reports a selector construction together with the size
	// of the resulting candidate ring.
	SelectorBuilt(voters uint)

	// MembershipQueryDuration measures the time spent answering a single
	// voter group membership query.
	MembershipQueryDuration(duration time.Duration)
}
