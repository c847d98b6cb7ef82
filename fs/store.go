// Package fs provides file-based output for rendered entries.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/spy"
)

// Ensure EntryStore implements spy.EntryStore at compile time.
var _ spy.EntryStore = (*EntryStore)(nil)

// EntryStore implements spy.EntryStore with atomic update semantics.
// Entries are saved to a temporary directory, then moved atomically on Commit.
type EntryStore struct {
	baseDir string
	name    string
	ext     string
}

// NewEntryStore creates a new EntryStore.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
// ext is the file extension without the dot, "json" when empty.
func NewEntryStore(baseDir, name, ext string) *EntryStore {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = "json"
	}
	return &EntryStore{
		baseDir: baseDir,
		name:    name,
		ext:     ext,
	}
}

// Dir returns the final output directory.
func (s *EntryStore) Dir() string {
	return s.finalDir()
}

func (s *EntryStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *EntryStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes content to <id>.<ext> in the temporary directory.
func (s *EntryStore) Save(ctx context.Context, entry *spy.Entry, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	id := entry.ID()
	if id == "" || filepath.Base(id) != id {
		return spy.Errorf(spy.EINVALID, "invalid entry id %q", id)
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return spy.WrapError(spy.EINTERNAL, err, "failed to create %s", s.tempDir())
	}

	path := filepath.Join(s.tempDir(), id+"."+s.ext)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return spy.WrapError(spy.EINTERNAL, err, "failed to write %s", path)
	}
	return nil
}

// Commit replaces the final directory with the temporary one.
func (s *EntryStore) Commit() error {
	// Nothing saved yet.
	if _, err := os.Stat(s.tempDir()); os.IsNotExist(err) {
		return nil
	}

	if err := os.RemoveAll(s.finalDir()); err != nil {
		return spy.WrapError(spy.EINTERNAL, err, "failed to remove %s", s.finalDir())
	}

	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return spy.WrapError(spy.EINTERNAL, err, "failed to move output into %s", s.finalDir())
	}

	return nil
}

// Abort discards everything saved since the last Commit.
func (s *EntryStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
