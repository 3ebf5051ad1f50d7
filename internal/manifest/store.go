package manifest

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/flock"

	"spindex/internal/logging"
)

// ErrLocked is returned when another process holds the manifest lock.
var ErrLocked = errors.New("manifest is locked by another process")

// Store guards read-merge-write cycles on a manifest file with an advisory
// lock held on a sibling "<path>.lock" file.
type Store struct {
	path   string
	lock   *flock.Flock
	logger *slog.Logger
}

// OpenStore prepares a store for the manifest at path. The file does not
// need to exist yet.
func OpenStore(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logging.NewComponentLogger(logger, "manifest"),
	}
}

// Path returns the manifest file location.
func (s *Store) Path() string {
	return s.path
}

// Update loads the stored manifest, passes it to fn and saves whatever fn
// returns, all while holding the lock. The saved manifest is returned.
func (s *Store) Update(fn func(existing Manifest) Manifest) (Manifest, error) {
	ok, err := s.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", s.path, ErrLocked)
	}
	defer func() {
		if err := s.lock.Unlock(); err != nil {
			s.logger.Warn("failed to release manifest lock",
				logging.String("path", s.path),
				logging.Error(err))
		}
	}()

	existing, err := Load(s.path)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("loaded existing manifest",
		logging.String("path", s.path),
		logging.Int("event_count", len(existing)))

	updated := fn(existing)
	if err := Save(s.path, updated); err != nil {
		return nil, err
	}
	s.logger.Debug("saved manifest",
		logging.String("path", s.path),
		logging.Int("event_count", len(updated)),
		logging.Int("sound_count", updated.SoundCount()))
	return updated, nil
}
