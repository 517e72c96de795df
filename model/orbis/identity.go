package orbis

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack"
)

// rxid is the regex for parsing participant identity entries.
var rxid = regexp.MustCompile(`^([0-9a-fA-F]{64})@([\w\d]+|[\w\d][\w\d\-]*[\w\d](?:\.*[\w\d][\w\d\-]*[\w\d])*|[\w\d][\w\d\-]*[\w\d])(:[\d]+)?=(\d{1,20})$`)

// Identity represents an authorized consensus participant. The NodeID is the
// only field the selection logic looks at; the remaining fields carry
// operator-supplied data that travels with the identity.
type Identity struct {
	NodeID  Identifier
	Address string
	Weight  uint64
}

// ParseIdentity parses a string representation of an identity of the form
// <node id hex>@<address>=<weight>.
func ParseIdentity(identity string) (*Identity, error) {

	// use the regex to match the three parts of an identity
	matches := rxid.FindStringSubmatch(identity)
	if len(matches) != 5 {
		return nil, errors.New("invalid identity string format")
	}

	// none of these will error as they are checked by the regex
	var nodeID Identifier
	nodeID, err := HexStringToIdentifier(matches[1])
	if err != nil {
		return nil, err
	}
	address := matches[2] + matches[3]
	weight, _ := strconv.ParseUint(matches[4], 10, 64)

	// create the identity
	iy := Identity{
		NodeID:  nodeID,
		Address: address,
		Weight:  weight,
	}

	return &iy, nil
}

// String returns a string representation of the identity.
func (iy Identity) String() string {
	return fmt.Sprintf("%s@%s=%d", iy.NodeID.String(), iy.Address, iy.Weight)
}

// ID returns the unique identifier for the identity.
func (iy Identity) ID() Identifier {
	return iy.NodeID
}

type encodableIdentity struct {
	NodeID  Identifier
	Address string
	Weight  uint64
}

func toEncodable(iy Identity) encodableIdentity {
	return encodableIdentity{iy.NodeID, iy.Address, iy.Weight}
}

func fromEncodable(ie encodableIdentity, identity *Identity) {
	identity.NodeID = ie.NodeID
	identity.Address = ie.Address
	identity.Weight = ie.Weight
}

func (iy Identity) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(toEncodable(iy))
	if err != nil {
		return nil, fmt.Errorf("could not encode json: %w", err)
	}
	return data, nil
}

func (iy *Identity) UnmarshalJSON(b []byte) error {
	var encodable encodableIdentity
	err := json.Unmarshal(b, &encodable)
	if err != nil {
		return fmt.Errorf("could not decode json: %w", err)
	}
	fromEncodable(encodable, iy)
	return nil
}

func (iy Identity) MarshalMsgpack() ([]byte, error) {
	data, err := msgpack.Marshal(toEncodable(iy))
	if err != nil {
		return nil, fmt.Errorf("could not encode msgpack: %w", err)
	}
	return data, nil
}

func (iy *Identity) UnmarshalMsgpack(b []byte) error {
	var encodable encodableIdentity
	err := msgpack.Unmarshal(b, &encodable)
	if err != nil {
		return fmt.Errorf("could not decode msgpack: %w", err)
	}
	fromEncodable(encodable, iy)
	return nil
}

// IdentityFilter is a filter on identities.
type IdentityFilter func(*Identity) bool

// IdentityOrder is a sort for identities.
type IdentityOrder func(*Identity, *Identity) bool

// IdentityList is a list of participants.
type IdentityList []*Identity

// Filter will apply a filter to the identity list.
func (il IdentityList) Filter(filter IdentityFilter) IdentityList {
	var dup IdentityList
IDLoop:
	for _, identity := range il {
		if !filter(identity) {
			continue IDLoop
		}
		dup = append(dup, identity)
	}
	return dup
}

// Order will sort the list using the given sort function.
func (il IdentityList) Order(less IdentityOrder) IdentityList {
	dup := make(IdentityList, 0, len(il))
	dup = append(dup, il...)
	sort.Slice(dup, func(i int, j int) bool {
		return less(dup[i], dup[j])
	})
	return dup
}

// NodeIDs returns the NodeIDs of the participants in the list.
func (il IdentityList) NodeIDs() IdentifierList {
	nodeIDs := make(IdentifierList, 0, len(il))
	for _, id := range il {
		nodeIDs = append(nodeIDs, id.NodeID)
	}
	return nodeIDs
}

// TotalWeight returns the total weight of all given identities.
func (il IdentityList) TotalWeight() uint64 {
	var total uint64
	for _, identity := range il {
		total += identity.Weight
	}
	return total
}

// Count returns the count of identities.
func (il IdentityList) Count() uint {
	return uint(len(il))
}

// ByIndex returns the participant at the given index.
func (il IdentityList) ByIndex(index uint) (*Identity, bool) {
	if index >= uint(len(il)) {
		return nil, false
	}
	return il[int(index)], true
}

// ByNodeID gets a participant from the list by node ID.
func (il IdentityList) ByNodeID(nodeID Identifier) (*Identity, bool) {
	for _, identity := range il {
		if identity.NodeID == nodeID {
			return identity, true
		}
	}
	return nil, false
}
