package merge

import (
	"fmt"
	"os"
	"path/filepath"
)

// tempPrefix marks the staging files used for atomic output writes.
const tempPrefix = ".mapstitch-tmp-"

// writeFileAtomic writes data to a temp file in the target directory and
// renames it into place, so a failed run never leaves a half-written
// output behind.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)

	tmp, err := os.CreateTemp(dir, tempPrefix+"*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", filename, err)
	}
	return nil
}

// stagePath returns a sibling temp path for an output file, keeping the
// extension so format-sniffing tools treat it like the final artifact.
func stagePath(output, runID string) string {
	dir := filepath.Dir(output)
	return filepath.Join(dir, tempPrefix+runID+filepath.Ext(output))
}
