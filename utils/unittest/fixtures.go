package unittest

import (
	crand "crypto/rand"
	"fmt"

	"github.com/orbis-network/orbis-go/model/orbis"
)

func IdentifierFixture() orbis.Identifier {
	var id orbis.Identifier
	_, _ = crand.Read(id[:])
	return id
}

func IdentifierListFixture(n int) orbis.IdentifierList {
	list := make(orbis.IdentifierList, 0, n)
	for i := 0; i < n; i++ {
		list = append(list, IdentifierFixture())
	}
	return list
}

// WithNodeID sets the node ID of an identity fixture.
func WithNodeID(nodeID orbis.Identifier) func(*orbis.Identity) {
	return func(identity *orbis.Identity) {
		identity.NodeID = nodeID
	}
}

// WithWeight sets the weight of an identity fixture.
func WithWeight(weight uint64) func(*orbis.Identity) {
	return func(identity *orbis.Identity) {
		identity.Weight = weight
	}
}

// IdentityFixture returns a participant identity.
func IdentityFixture(opts ...func(*orbis.Identity)) *orbis.Identity {
	nodeID := IdentifierFixture()
	identity := orbis.Identity{
		NodeID:  nodeID,
		Address: fmt.Sprintf("address-%x", nodeID[0:7]),
		Weight:  1000,
	}
	for _, apply := range opts {
		apply(&identity)
	}
	return &identity
}

// IdentityListFixture returns a list of participant identity objects. The
// identities can be customized (ie. set their weight) by passing in a
// function that modifies the input identities as required.
func IdentityListFixture(n int, opts ...func(*orbis.Identity)) orbis.IdentityList {
	identities := make(orbis.IdentityList, 0, n)

	for i := 0; i < n; i++ {
		identity := IdentityFixture()
		identity.Address = fmt.Sprintf("node-%x.orbis.network:1234", identity.NodeID[:4])
		for _, opt := range opts {
			opt(identity)
		}
		identities = append(identities, identity)
	}

	return identities
}

// DigestFixture returns a random 32-byte digest.
func DigestFixture() []byte {
	return SeedFixture(32)
}

// SeedFixture returns a random []byte with length n
func SeedFixture(n int) []byte {
	var seed = make([]byte, n)
	_, _ = crand.Read(seed)
	return seed
}

// SeedFixtures returns a list of m random []byte, each having length n
func SeedFixtures(m int, n int) [][]byte {
	var seeds = make([][]byte, m)
	for i := range seeds {
		seeds[i] = SeedFixture(n)
	}
	return seeds
}
