package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"audionorm/internal/fileutil"
)

// ErrLocked reports that another run holds the work tree.
var ErrLocked = errors.New("work tree is in use by another run")

// Lock is an exclusive advisory lock on a work tree. The lock file lives
// beside the tree so Reset does not remove it, and Release deletes it.
type Lock struct {
	lock *flock.Flock
}

// LockPath returns the lock file used for the layout.
func (l Layout) LockPath() string {
	return l.Root + ".lock"
}

// Acquire takes the lock without blocking.
func (l Layout) Acquire() (*Lock, error) {
	path := l.LockPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	fl := flock.New(path)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w (lock file %s)", ErrLocked, path)
	}
	return &Lock{lock: fl}, nil
}

// Release drops the lock and removes the lock file.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return err
	}
	if err := fileutil.RemoveIfExists(l.lock.Path()); err != nil {
		return fmt.Errorf("remove lock file: %w", err)
	}
	return nil
}
