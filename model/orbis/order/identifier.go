package order

import (
	"bytes"
	"sort"

	"github.com/orbis-network/orbis-go/model/orbis"
)

// IdentifierCanonical is a function for sorting IdentifierList into
// canonical order
func IdentifierCanonical(id1 orbis.Identifier, id2 orbis.Identifier) int {
	return bytes.Compare(id1[:], id2[:])
}

// ByNodeIDAsc orders identities by node ID in canonical (ascending
// lexicographic byte) order. Selection over the voter ring must be
// reproduced byte-for-byte by independent builders, so any list feeding the
// selector is brought into this order first.
var ByNodeIDAsc orbis.IdentityOrder = func(identity1 *orbis.Identity, identity2 *orbis.Identity) bool {
	return IdentifierCanonical(identity1.NodeID, identity2.NodeID) < 0
}

// IsCanonical returns true if the given identifier list is strictly
// increasing in canonical order, i.e. sorted and free of duplicates.
func IsCanonical(il orbis.IdentifierList) bool {
	return sort.SliceIsSorted(il, func(i, j int) bool {
		return IdentifierCanonical(il[i], il[j]) < 0
	}) && !hasAdjacentDuplicate(il)
}

func hasAdjacentDuplicate(il orbis.IdentifierList) bool {
	for i := 1; i < len(il); i++ {
		if il[i] == il[i-1] {
			return true
		}
	}
	return false
}
