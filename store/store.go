package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// DropHandler is notified whenever the store sheds data to stay inside its
// budget: after a successful pruned write (cause is nil) and after an
// abandoned write (cause is ErrItemTooLarge, prior data untouched).
type DropHandler func(kind Kind, userID string, dropped int, cause error)

// WarnDropHandler is the default DropHandler. It prints a warning to stderr
// so quota pressure is visible without failing the operation.
func WarnDropHandler(kind Kind, userID string, dropped int, cause error) {
	if cause != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Storage budget: abandoned write of %d %s item(s) for %s: %v\n", dropped, kind, userID, cause)
		return
	}
	fmt.Fprintf(os.Stderr, "⚠️  Storage budget: dropped %d oldest %s item(s) for %s\n", dropped, kind, userID)
}

// Config configures a Store. Zero values produce sensible defaults.
type Config struct {
	QuotaBytes int64       // zero → DefaultQuotaBytes
	Fit        FitFunc     // nil → ByteBudget(QuotaBytes); overrides QuotaBytes
	OnDrop     DropHandler // nil → WarnDropHandler
}

// Store reads and writes per-user collection documents on an afero
// filesystem. Use afero.NewOsFs() for real storage or afero.NewMemMapFs()
// for testing. Operations are synchronous and serialized by an internal
// mutex; a Store is safe for concurrent use within one process.
type Store struct {
	fs      afero.Fs
	baseDir string
	fits    FitFunc
	onDrop  DropHandler
	mu      sync.Mutex
}

// New creates a Store rooted at baseDir on the given filesystem.
func New(fsys afero.Fs, baseDir string, cfg Config) (*Store, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("store: base directory must not be empty")
	}

	fits := cfg.Fit
	if fits == nil {
		quota := cfg.QuotaBytes
		if quota == 0 {
			quota = DefaultQuotaBytes
		}
		if quota < 0 {
			return nil, fmt.Errorf("store: quota %d must be positive", quota)
		}
		fits = ByteBudget(quota)
	}

	onDrop := cfg.OnDrop
	if onDrop == nil {
		onDrop = WarnDropHandler
	}

	return &Store{
		fs:      fsys,
		baseDir: baseDir,
		fits:    fits,
		onDrop:  onDrop,
	}, nil
}

// path returns the document location for one (kind, user) key. Each user
// gets a directory so keys can never collide across users.
func (s *Store) path(kind Kind, userID string) string {
	return filepath.Join(s.baseDir, userID, string(kind)+".json")
}

// readRaw loads the stored document for the key. A missing file yields
// (nil, nil): absent data is a normal state, not an error.
func (s *Store) readRaw(kind Kind, userID string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, s.path(kind, userID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", kind.Key(userID), err)
	}
	return data, nil
}

// writeRaw stores the document atomically: write to a temp file in the same
// directory, then rename over the target.
func (s *Store) writeRaw(kind Kind, userID string, data []byte) error {
	target := s.path(kind, userID)
	dir := filepath.Dir(target)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory %s: %w", dir, err)
	}

	tmp := target + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file for %s: %w", kind.Key(userID), err)
	}
	if err := s.fs.Rename(tmp, target); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("replace %s: %w", kind.Key(userID), err)
	}
	return nil
}

// remove deletes the stored document for the key, if present.
func (s *Store) remove(kind Kind, userID string) error {
	err := s.fs.Remove(s.path(kind, userID))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", kind.Key(userID), err)
	}
	return nil
}
