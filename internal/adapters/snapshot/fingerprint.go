package snapshot

import (
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Fingerprint computes the XXHash of a snapshot file's content. The session
// uses it to collapse repeated corruption reports for the same bytes.
func Fingerprint(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from the configured databases
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open snapshot"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash snapshot content"), "path", path)
	}
	return hasher.Sum64(), nil
}
