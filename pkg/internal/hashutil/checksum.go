package hashutil

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// CalculateFileChecksum calculates the SHA256 checksum of a file
func CalculateFileChecksum(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return fmt.Sprintf("sha256:%x", hash.Sum(nil)), nil
}

// Snapshot maps each path to its checksum. Unreadable files map to "".
type Snapshot map[string]string

// TakeSnapshot checksums every path
func TakeSnapshot(paths []string) Snapshot {
	s := make(Snapshot, len(paths))
	for _, p := range paths {
		sum, err := CalculateFileChecksum(p)
		if err != nil {
			sum = ""
		}
		s[p] = sum
	}
	return s
}

// Equal reports whether both snapshots hold the same paths and checksums
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s) != len(other) {
		return false
	}
	for p, sum := range s {
		if o, ok := other[p]; !ok || o != sum {
			return false
		}
	}
	return true
}
