package votergroup

import (
	"github.com/orbis-network/orbis-go/model/orbis"
)

// Membership answers whether a candidate identity belongs to the voter group
// determined by a round's randomness. Implementations must be pure: the
// answer depends only on the construction-time participant set, the seed and
// the candidate, so concurrent queries are always race-free.
type Membership interface {

	// IsMemberForSeed returns whether the candidate is part of the voter
	// group selected by the given seed.
	IsMemberForSeed(seed uint64, candidate orbis.Identifier) bool

	// IsMemberForDigest derives the selection seed from the given digest and
	// answers membership for it. Returns InvalidDigestLengthError if the
	// digest length is not a positive multiple of 8 bytes.
	IsMemberForDigest(digest []byte, candidate orbis.Identifier) (bool, error)
}
