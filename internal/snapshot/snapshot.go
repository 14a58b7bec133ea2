// Package snapshot derives deterministic destinations for saved HTML
// documents and writes them to disk.
package snapshot

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// subdir is the well-known temp subdirectory snapshots land in when no
// explicit destination is given.
const subdir = "ansi-senor"

// DefaultDir returns the default snapshot directory under the system
// temp directory.
func DefaultDir() string {
	return filepath.Join(os.TempDir(), subdir)
}

// Resolve returns the destination path for a snapshot. An explicit
// override is returned verbatim. Otherwise the filename combines the
// command (spaces replaced with dashes) with the first 8 hex
// characters of the SHA-256 digest of the captured output, placed
// under dir (DefaultDir when dir is empty). Identical command and
// output therefore always resolve to the identical path. Pure path
// computation; the filesystem is not touched.
func Resolve(argv []string, output, override, dir string) string {
	if override != "" {
		return override
	}
	if dir == "" {
		dir = DefaultDir()
	}

	sum := sha256.Sum256([]byte(output))
	digest := hex.EncodeToString(sum[:])[:8]
	name := strings.ReplaceAll(strings.Join(argv, " "), " ", "-")

	return filepath.Join(dir, fmt.Sprintf("%s-%s.html", name, digest))
}

// Write stores the rendered document at path, creating parent
// directories as needed.
func Write(path, doc string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating snapshot directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	return nil
}
