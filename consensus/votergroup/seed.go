package votergroup

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// InvalidDigestLengthError is returned when a digest cannot be folded into a
// seed because its byte length is not a positive multiple of 8.
type InvalidDigestLengthError struct {
	length int
}

func (err InvalidDigestLengthError) Error() string {
	return fmt.Sprintf("digest length (%d) is not a positive multiple of 8", err.length)
}

// IsInvalidDigestLengthError returns whether or not the input error is an
// invalid digest length error.
func IsInvalidDigestLengthError(err error) bool {
	return errors.As(err, &InvalidDigestLengthError{})
}

// SeedFromDigest folds a digest into a 64-bit selection seed by XOR-ing its
// consecutive 8-byte little-endian chunks, left to right. The digest length
// must be a positive multiple of 8; production digests are 32 bytes, so the
// contract only trips on malformed external input.
func SeedFromDigest(digest []byte) (uint64, error) {
	if len(digest) == 0 || len(digest)%8 != 0 {
		return 0, InvalidDigestLengthError{length: len(digest)}
	}

	var seed uint64
	for i := 0; i < len(digest); i += 8 {
		seed ^= binary.LittleEndian.Uint64(digest[i : i+8])
	}
	return seed, nil
}
