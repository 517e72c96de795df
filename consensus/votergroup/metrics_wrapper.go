package votergroup

import (
	"time"

	"github.com/orbis-network/orbis-go/model/orbis"
	"github.com/orbis-network/orbis-go/module"
)

// MembershipMetricsWrapper implements the votergroup.Membership interface.
// It wraps a Membership instance and measures the time spent answering
// membership queries. The measured durations are reported as values for the
// MembershipQueryDuration metric.
type MembershipMetricsWrapper struct {
	membership Membership
	metrics    module.VoterGroupMetrics
}

func NewMetricsWrapper(membership Membership, metrics module.VoterGroupMetrics) *MembershipMetricsWrapper {
	return &MembershipMetricsWrapper{
		membership: membership,
		metrics:    metrics,
	}
}

func (w MembershipMetricsWrapper) IsMemberForSeed(seed uint64, candidate orbis.Identifier) bool {
	processStart := time.Now()
	member := w.membership.IsMemberForSeed(seed, candidate)
	w.metrics.MembershipQueryDuration(time.Since(processStart))
	return member
}

func (w MembershipMetricsWrapper) IsMemberForDigest(digest []byte, candidate orbis.Identifier) (bool, error) {
	processStart := time.Now()
	member, err := w.membership.IsMemberForDigest(digest, candidate)
	w.metrics.MembershipQueryDuration(time.Since(processStart))
	return member, err
}
