package orbis

import (
	"bytes"
	"sort"
)

// IdentifierList defines a sortable list of identifiers.
type IdentifierList []Identifier

// Len returns length of the IdentifierList in the number of stored identifiers.
// It satisfies the sort.Interface making the IdentifierList sortable.
func (il IdentifierList) Len() int {
	return len(il)
}

// Less returns true if element i in the IdentifierList is less than j based on
// the lexicographic order of its raw bytes.
// It satisfies the sort.Interface making the IdentifierList sortable.
func (il IdentifierList) Less(i, j int) bool {
	return bytes.Compare(il[i][:], il[j][:]) < 0
}

// Swap swaps the element i and j in the IdentifierList.
// It satisfies the sort.Interface making the IdentifierList sortable.
func (il IdentifierList) Swap(i, j int) {
	il[i], il[j] = il[j], il[i]
}

// Contains returns whether this identifier list contains the target identifier.
func (il IdentifierList) Contains(target Identifier) bool {
	for _, id := range il {
		if id == target {
			return true
		}
	}
	return false
}

// Strings converts the identifier list to a list of hex strings.
func (il IdentifierList) Strings() []string {
	var list []string
	for _, id := range il {
		list = append(list, id.String())
	}
	return list
}

// Copy returns a copy of the receiver.
func (il IdentifierList) Copy() IdentifierList {
	dup := make(IdentifierList, 0, len(il))
	dup = append(dup, il...)
	return dup
}

// Sort returns a sorted copy of the receiver, leaving the original invariant.
func (il IdentifierList) Sort() IdentifierList {
	dup := il.Copy()
	sort.Sort(dup)
	return dup
}
