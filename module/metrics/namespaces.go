package metrics

// Prometheus metric namespaces
const (
	namespaceConsensus = "consensus"
)

// Prometheus metric subsystems for the consensus namespace
const (
	subsystemVoterGroup = "votergroup"
)
