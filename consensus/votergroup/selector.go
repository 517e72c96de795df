package votergroup

import (
	"github.com/orbis-network/orbis-go/model/orbis"
	"github.com/orbis-network/orbis-go/model/orbis/order"
)

// DefaultGroupSize is the voter group cardinality the protocol targets per
// round.
const DefaultGroupSize = 11

// NeverVoter is the reserved well-known identity that is permanently
// excluded from voter eligibility. It is dropped from the candidate ring at
// construction, regardless of how often it appears in the input set.
var NeverVoter = orbis.MustHexStringToIdentifier("6893c162ea0d394d9e4f72b3632ebd50cf875fb3affe3aba6386a11b1b88e0cc")

// distanceTable holds the candidate ring strides. The legacy table is part
// of the protocol: every implementation must use these exact values (51 and
// 87 included, even though they are not prime), or independently computed
// groups diverge.
var distanceTable = []uint32{
	2, 3, 5, 7, 11, 13, 17, 23, 29, 31, 37, 41, 43, 47, 51, 53, 57, 59, 61,
	67, 71, 73, 79, 83, 87, 89, 97, 101, 103,
}

// Selector deterministically answers voter group membership for a round.
// Given the same authorized participant set, group size and seed, every
// independent instance selects the identical group, without coordination.
//
// A Selector is immutable after construction and safe for concurrent use.
type Selector struct {

	// the candidate voters in canonical order, with the excluded identity
	// and any duplicates removed
	voters orbis.IdentifierList

	// ring strides that are neither larger than the ring nor an exact
	// divisor of it; always starts with 1 so it is never empty for a
	// non-empty ring
	distances []uint32

	// target group cardinality, not validated against the ring size
	groupSize uint
}

// Option allows customizing selector construction.
type Option func(*config)

type config struct {
	excluded orbis.Identifier
}

// WithExcluded overrides the identity that is barred from selection,
// which defaults to NeverVoter.
func WithExcluded(excluded orbis.Identifier) Option {
	return func(cfg *config) {
		cfg.excluded = excluded
	}
}

// NewSelector builds a selector from a snapshot of the authorized
// participant set. Only the node IDs of the participants are used; duplicate
// IDs collapse to one ring slot. The input order is irrelevant: the ring is
// always brought into canonical order, so independently built selectors
// agree on every query.
//
// An empty participant set is valid and yields a selector that reports no
// members. groupSize is not constrained; it may be zero or exceed the number
// of candidates.
func NewSelector(participants orbis.IdentityList, groupSize uint, opts ...Option) *Selector {

	cfg := config{
		excluded: NeverVoter,
	}
	for _, apply := range opts {
		apply(&cfg)
	}

	eligible := participants.
		Filter(func(identity *orbis.Identity) bool { return identity.NodeID != cfg.excluded }).
		Order(order.ByNodeIDAsc).
		NodeIDs()

	// collapse duplicates; the list is sorted, so equal IDs are adjacent
	voters := make(orbis.IdentifierList, 0, len(eligible))
	for _, nodeID := range eligible {
		if len(voters) > 0 && voters[len(voters)-1] == nodeID {
			continue
		}
		voters = append(voters, nodeID)
	}

	return &Selector{
		voters:    voters,
		distances: ringDistances(uint32(len(voters))),
		groupSize: groupSize,
	}
}

// ringDistances returns the usable strides for a ring of n voters: the
// leading 1, followed by the table entries that are strictly smaller than n
// and do not divide n evenly. A stride sharing a factor with the ring size
// would revisit a strict subset of the ring instead of spreading the group
// across it.
func ringDistances(n uint32) []uint32 {
	distances := []uint32{1}
	for _, val := range distanceTable {
		if n > val && n%val != 0 {
			distances = append(distances, val)
		}
	}
	return distances
}

// IsMemberForSeed returns whether the candidate belongs to the voter group
// selected by the given seed. The seed picks the starting slot and the ring
// stride; the group consists of the starting slot plus groupSize-1 further
// ring steps. The check short-circuits on the first hit and touches at most
// groupSize slots, so it always terminates even when groupSize exceeds the
// ring size (slots are then revisited).
func (s *Selector) IsMemberForSeed(seed uint64, candidate orbis.Identifier) bool {

	votersLen := uint(len(s.voters))
	if votersLen == 0 {
		return false
	}

	loc := uint(seed % uint64(votersLen))
	if s.voters[loc] == candidate {
		return true
	}
	if s.groupSize <= 1 {
		// group sizes 0 and 1 both reduce to the starting slot check
		return false
	}

	dist := uint(s.distances[seed%uint64(len(s.distances))])
	for i := uint(1); i < s.groupSize; i++ {
		loc = (loc + dist) % votersLen
		if s.voters[loc] == candidate {
			return true
		}
	}
	return false
}

// IsMemberForDigest derives a seed from the digest and answers membership
// for it. The digest length must be a positive multiple of 8 bytes;
// otherwise an InvalidDigestLengthError is returned.
func (s *Selector) IsMemberForDigest(digest []byte, candidate orbis.Identifier) (bool, error) {
	seed, err := SeedFromDigest(digest)
	if err != nil {
		return false, err
	}
	return s.IsMemberForSeed(seed, candidate), nil
}

// Voters returns a copy of the candidate ring in canonical order.
func (s *Selector) Voters() orbis.IdentifierList {
	return s.voters.Copy()
}

// GroupSize returns the target group cardinality.
func (s *Selector) GroupSize() uint {
	return s.groupSize
}

// Distances returns a copy of the usable ring strides.
func (s *Selector) Distances() []uint32 {
	dup := make([]uint32, len(s.distances))
	copy(dup, s.distances)
	return dup
}
