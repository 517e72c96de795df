package orbis

import (
	"encoding/hex"
	"fmt"
)

// IdentifierLen is the byte length of an Identifier.
const IdentifierLen = 32

// Identifier represents a 32-byte opaque identifier for a participant,
// typically the raw bytes of its public key.
type Identifier [IdentifierLen]byte

// ZeroID is the lowest value in the 32-byte ID space.
var ZeroID = Identifier{}

// HexStringToIdentifier converts a hex string to an identifier. The input
// must be 64 characters long and contain only valid hex characters.
func HexStringToIdentifier(hexString string) (Identifier, error) {
	var identifier Identifier
	i, err := hex.Decode(identifier[:], []byte(hexString))
	if err != nil {
		return identifier, err
	}
	if i != IdentifierLen {
		return identifier, fmt.Errorf("malformed input, expected %d bytes (%d characters), decoded %d", IdentifierLen, 2*IdentifierLen, i)
	}
	return identifier, nil
}

// MustHexStringToIdentifier converts a hex string to an identifier and
// panics if the string is malformed. It is intended for declaring
// well-known identifiers in code.
func MustHexStringToIdentifier(hexString string) Identifier {
	id, err := HexStringToIdentifier(hexString)
	if err != nil {
		panic(err)
	}
	return id
}

// ByteSliceToIdentifier converts a byte slice to an identifier. The input
// must be exactly 32 bytes long.
func ByteSliceToIdentifier(b []byte) (Identifier, error) {
	var identifier Identifier
	if len(b) != IdentifierLen {
		return identifier, fmt.Errorf("expected %d bytes, got %d", IdentifierLen, len(b))
	}
	copy(identifier[:], b)
	return identifier, nil
}

// String returns the hex string representation of the identifier.
func (id Identifier) String() string {
	return hex.EncodeToString(id[:])
}

// Format handles formatting of id for different verbs. This is called when
// formatting an identifier with fmt.
func (id Identifier) Format(state fmt.State, verb rune) {
	switch verb {
	case 'x', 's', 'v':
		_, _ = state.Write([]byte(id.String()))
	default:
		_, _ = state.Write([]byte(fmt.Sprintf("%%!%c(%s=%s)", verb, "Identifier", id.String())))
	}
}

func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *Identifier) UnmarshalText(text []byte) error {
	var err error
	*id, err = HexStringToIdentifier(string(text))
	return err
}
