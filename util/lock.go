package util

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/taigrr/colorhash"
)

// LockPath returns the lock file used for dst inside lockDir. The lock never
// lives in the destination tree itself, so existing content there is left
// alone. An empty lockDir means os.TempDir().
func LockPath(lockDir, dst string) (string, error) {
	abs, err := filepath.Abs(dst)
	if err != nil {
		return "", err
	}
	if lockDir == "" {
		lockDir = os.TempDir()
	}
	bucket := colorhash.HashString(abs)
	return filepath.Join(lockDir, fmt.Sprintf("imgcompress-%d.lock", bucket)), nil
}

// LockDestination takes an exclusive, non-blocking lock for dst. It returns
// ErrDestinationLocked when another run already holds it. The caller must
// Unlock the returned lock when done.
func LockDestination(lockDir, dst string) (*flock.Flock, error) {
	path, err := LockPath(lockDir, dst)
	if err != nil {
		return nil, err
	}
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrDestinationLocked)
	}
	return lock, nil
}
