package cmd

import (
	"bufio"
	"encoding/hex"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/orbis-network/orbis-go/consensus/votergroup"
	"github.com/orbis-network/orbis-go/model/orbis"
)

var (
	flagParticipantsFile string
	flagCandidate        string
	flagDigest           string
	flagSeed             uint64
	flagExcluded         string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether a candidate belongs to the voter group for a round",
	Run: func(cmd *cobra.Command, args []string) {
		participants, err := readParticipants(flagParticipantsFile)
		if err != nil {
			log.Fatal().Err(err).Str("path", flagParticipantsFile).
				Msg("could not read participants")
		}

		candidate, err := orbis.HexStringToIdentifier(flagCandidate)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid candidate identifier")
		}

		var opts []votergroup.Option
		if flagExcluded != "" {
			excluded, err := orbis.HexStringToIdentifier(flagExcluded)
			if err != nil {
				log.Fatal().Err(err).Msg("invalid excluded identifier")
			}
			opts = append(opts, votergroup.WithExcluded(excluded))
		}

		selector := votergroup.NewSelector(participants, flagGroupSize, opts...)

		var member bool
		if flagDigest != "" {
			digest, err := hex.DecodeString(flagDigest)
			if err != nil {
				log.Fatal().Err(err).Msg("invalid digest hex")
			}
			member, err = selector.IsMemberForDigest(digest, candidate)
			if err != nil {
				log.Fatal().Err(err).Msg("could not derive seed from digest")
			}
		} else {
			member = selector.IsMemberForSeed(flagSeed, candidate)
		}

		log.Info().
			Str("candidate", candidate.String()).
			Uint("group_size", flagGroupSize).
			Int("voters", len(selector.Voters())).
			Bool("member", member).
			Msg("voter group membership")
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&flagParticipantsFile, "participants", "p", "",
		"path to a file with one participant entry (<node id hex>@<address>=<weight>) per line [required]")
	_ = checkCmd.MarkFlagRequired("participants")
	checkCmd.Flags().StringVarP(&flagCandidate, "candidate", "c", "",
		"hex node ID of the candidate to test [required]")
	_ = checkCmd.MarkFlagRequired("candidate")
	checkCmd.Flags().StringVarP(&flagDigest, "digest", "d", "",
		"hex digest of the round's randomness source; takes precedence over --seed")
	checkCmd.Flags().Uint64VarP(&flagSeed, "seed", "s", 0,
		"raw 64-bit selection seed")
	checkCmd.Flags().StringVarP(&flagExcluded, "excluded", "x", "",
		"hex node ID overriding the default never-voter exclusion")
}

// readParticipants reads a participant identity list from a file with one
// entry per line. Blank lines and lines starting with # are skipped.
func readParticipants(path string) (orbis.IdentityList, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open participants file")
	}
	defer file.Close()

	var participants orbis.IdentityList
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		identity, err := orbis.ParseIdentity(line)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid participant entry (%s)", line)
		}
		participants = append(participants, identity)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read participants file")
	}

	return participants, nil
}
