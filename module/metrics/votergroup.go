package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// VoterGroupCollector reports metrics for the voter group selection
// component.
type VoterGroupCollector struct {

	// the size of the candidate ring produced by the last selector build
	ringSize prometheus.Gauge

	// the number of selectors built since process start
	selectorsBuilt prometheus.Counter

	// the duration of a single membership query
	queryDuration prometheus.Histogram
}

// NewVoterGroupCollector creates a new voter group collector and registers
// its metrics with the given registerer.
func NewVoterGroupCollector(registerer prometheus.Registerer) *VoterGroupCollector {
	ringSize := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:      "candidate_ring_size",
		Namespace: namespaceConsensus,
		Subsystem: subsystemVoterGroup,
		Help:      "the number of eligible voters in the candidate ring of the last built selector",
	})
	selectorsBuilt := prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "selectors_built_total",
		Namespace: namespaceConsensus,
		Subsystem: subsystemVoterGroup,
		Help:      "the number of voter group selectors built",
	})
	queryDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:      "membership_query_duration_seconds",
		Namespace: namespaceConsensus,
		Subsystem: subsystemVoterGroup,
		Help:      "duration of a single voter group membership query in seconds",
	})
	registerer.MustRegister(ringSize, selectorsBuilt, queryDuration)
	vc := &VoterGroupCollector{
		ringSize:       ringSize,
		selectorsBuilt: selectorsBuilt,
		queryDuration:  queryDuration,
	}

	return vc
}

// SelectorBuilt reports a selector construction and the resulting ring size.
func (vc *VoterGroupCollector) SelectorBuilt(voters uint) {
	vc.selectorsBuilt.Inc()
	vc.ringSize.Set(float64(voters))
}

// MembershipQueryDuration reports the duration of a membership query.
func (vc *VoterGroupCollector) MembershipQueryDuration(duration time.Duration) {
	vc.queryDuration.Observe(duration.Seconds())
}
