package orbis_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack"

	"github.com/orbis-network/orbis-go/model/orbis"
	"github.com/orbis-network/orbis-go/utils/unittest"
)

func TestParseIdentity(t *testing.T) {

	t.Run("valid entry", func(t *testing.T) {
		entry := "1234567890123456789012345678901234567890123456789012345678901234@orbis.network:1234=1000"
		identity, err := orbis.ParseIdentity(entry)
		require.NoError(t, err)
		assert.Equal(t, "1234567890123456789012345678901234567890123456789012345678901234", identity.NodeID.String())
		assert.Equal(t, "orbis.network:1234", identity.Address)
		assert.Equal(t, uint64(1000), identity.Weight)

		// parsing round-trips through String
		assert.Equal(t, entry, identity.String())
	})

	t.Run("invalid entries", func(t *testing.T) {
		entries := []string{
			"",
			"@orbis.network:1234=1000",
			"1234@orbis.network:1234=1000",
			"1234567890123456789012345678901234567890123456789012345678901234@=1000",
			"1234567890123456789012345678901234567890123456789012345678901234@orbis.network:1234",
		}
		for _, entry := range entries {
			_, err := orbis.ParseIdentity(entry)
			assert.Error(t, err, "expected error for entry %q", entry)
		}
	})
}

func TestIdentityEncodingJSON(t *testing.T) {
	identity := unittest.IdentityFixture()
	enc, err := json.Marshal(identity)
	require.NoError(t, err)
	var dec orbis.Identity
	err = json.Unmarshal(enc, &dec)
	require.NoError(t, err)
	require.Equal(t, identity, &dec)
}

func TestIdentityEncodingMsgpack(t *testing.T) {
	identity := unittest.IdentityFixture()
	enc, err := msgpack.Marshal(identity)
	require.NoError(t, err)
	var dec orbis.Identity
	err = msgpack.Unmarshal(enc, &dec)
	require.NoError(t, err)
	require.Equal(t, identity, &dec)
}

func TestIdentityList(t *testing.T) {
	identities := unittest.IdentityListFixture(8)

	t.Run("filter", func(t *testing.T) {
		target := identities[3].NodeID
		filtered := identities.Filter(func(identity *orbis.Identity) bool {
			return identity.NodeID != target
		})
		assert.Len(t, filtered, len(identities)-1)
		assert.False(t, filtered.NodeIDs().Contains(target))
	})

	t.Run("node IDs", func(t *testing.T) {
		nodeIDs := identities.NodeIDs()
		require.Len(t, nodeIDs, len(identities))
		for i, identity := range identities {
			assert.Equal(t, identity.NodeID, nodeIDs[i])
		}
	})

	t.Run("by node ID", func(t *testing.T) {
		identity, ok := identities.ByNodeID(identities[5].NodeID)
		require.True(t, ok)
		assert.Equal(t, identities[5], identity)

		_, ok = identities.ByNodeID(unittest.IdentifierFixture())
		assert.False(t, ok)
	})

	t.Run("total weight", func(t *testing.T) {
		identities := unittest.IdentityListFixture(4, unittest.WithWeight(250))
		assert.Equal(t, uint64(1000), identities.TotalWeight())
	})

	t.Run("by index", func(t *testing.T) {
		identity, ok := identities.ByIndex(0)
		require.True(t, ok)
		assert.Equal(t, identities[0], identity)

		_, ok = identities.ByIndex(uint(len(identities)))
		assert.False(t, ok)
	})
}
