package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbis-network/orbis-go/utils/unittest"
)

func TestReadParticipants(t *testing.T) {
	identities := unittest.IdentityListFixture(4)

	content := "# authorized participants\n\n"
	for _, identity := range identities {
		content += fmt.Sprintf("%s\n", identity.String())
	}

	path := filepath.Join(t.TempDir(), "participants.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	participants, err := readParticipants(path)
	require.NoError(t, err)
	require.Len(t, participants, len(identities))
	for i, identity := range identities {
		assert.Equal(t, identity.NodeID, participants[i].NodeID)
		assert.Equal(t, identity.Weight, participants[i].Weight)
	}
}

func TestReadParticipantsInvalidEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "participants.txt")
	require.NoError(t, os.WriteFile(path, []byte("not-an-entry\n"), 0644))

	_, err := readParticipants(path)
	assert.Error(t, err)
}

func TestReadParticipantsMissingFile(t *testing.T) {
	_, err := readParticipants(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
