package votergroup_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbis-network/orbis-go/consensus/votergroup"
	"github.com/orbis-network/orbis-go/utils/unittest"
)

// TestSeedFromDigest checks the fold: the seed is the XOR of the digest's
// consecutive 8-byte little-endian chunks.
func TestSeedFromDigest(t *testing.T) {

	t.Run("production-size digest", func(t *testing.T) {
		digest := unittest.DigestFixture()

		var expected uint64
		for i := 0; i < len(digest); i += 8 {
			expected ^= binary.LittleEndian.Uint64(digest[i : i+8])
		}

		seed, err := votergroup.SeedFromDigest(digest)
		require.NoError(t, err)
		assert.Equal(t, expected, seed)
	})

	t.Run("single chunk", func(t *testing.T) {
		digest := []byte{1, 0, 0, 0, 0, 0, 0, 0}
		seed, err := votergroup.SeedFromDigest(digest)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), seed)
	})

	t.Run("identical chunks cancel", func(t *testing.T) {
		chunk := unittest.SeedFixture(8)
		digest := append(chunk, chunk...)
		seed, err := votergroup.SeedFromDigest(digest)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), seed)
	})

	t.Run("longer digests are accepted", func(t *testing.T) {
		_, err := votergroup.SeedFromDigest(unittest.SeedFixture(40))
		assert.NoError(t, err)
	})
}

// TestSeedFromDigestInvalidLength checks that lengths that are not a
// positive multiple of 8 are rejected with a recoverable error.
func TestSeedFromDigestInvalidLength(t *testing.T) {
	for _, length := range []int{0, 1, 7, 12, 31, 33} {
		_, err := votergroup.SeedFromDigest(unittest.SeedFixture(length))
		require.Error(t, err, "expected error for length %d", length)
		assert.True(t, votergroup.IsInvalidDigestLengthError(err))
	}

	// unrelated errors are not misclassified
	assert.False(t, votergroup.IsInvalidDigestLengthError(assert.AnError))
}
