package infrastructure

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yourusername/gifsync/internal/domain"
)

// FileAssetStore keeps one <id>.<ext> file per catalog entry in a flat directory
type FileAssetStore struct {
	dir      string
	ext      string
	minBytes int
}

var _ domain.AssetStore = (*FileAssetStore)(nil)

// NewFileAssetStore creates the store directory if needed
func NewFileAssetStore(dir, ext string, minBytes int) (*FileAssetStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileAssetStore{dir: dir, ext: ext, minBytes: minBytes}, nil
}

// Path returns where the asset for id lives
func (s *FileAssetStore) Path(id string) string {
	return filepath.Join(s.dir, id+"."+s.ext)
}

// Exists reports whether an asset is stored for id
func (s *FileAssetStore) Exists(id string) bool {
	if domain.ValidateAssetID(id) != nil {
		return false
	}
	info, err := os.Stat(s.Path(id))
	return err == nil && info.Mode().IsRegular()
}

// CountStored returns how many of ids have a stored asset
func (s *FileAssetStore) CountStored(ids []string) int {
	n := 0
	for _, id := range ids {
		if s.Exists(id) {
			n++
		}
	}
	return n
}

// Put stores data for id. Payloads under the minimum size and ids that are
// already stored are rejected; stored assets are never overwritten.
func (s *FileAssetStore) Put(id string, data []byte) (err error) {
	if err := domain.ValidateAssetID(id); err != nil {
		return err
	}
	if len(data) < s.minBytes {
		return fmt.Errorf("%w: %d bytes, need at least %d", domain.ErrInvalidPayload, len(data), s.minBytes)
	}
	if s.Exists(id) {
		return domain.ErrAlreadyStored
	}

	tmpFile, err := os.CreateTemp(s.dir, "."+id+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create tmp file: %w", err)
	}
	tmpName := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err = tmpFile.Write(data); err != nil {
		return fmt.Errorf("write asset: %w", err)
	}
	if err = tmpFile.Close(); err != nil {
		return fmt.Errorf("close tmp file: %w", err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod asset: %w", err)
	}
	return s.publish(tmpName, s.Path(id))
}

// publish moves the finished temp file into place without replacing an
// existing asset. A hard link fails when the target exists, which keeps the
// check and the write atomic across processes.
func (s *FileAssetStore) publish(tmpName, target string) error {
	err := os.Link(tmpName, target)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrExist) {
		return domain.ErrAlreadyStored
	}

	// filesystems without hard links
	if _, statErr := os.Lstat(target); statErr == nil {
		return domain.ErrAlreadyStored
	}
	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("move asset: %w", err)
	}
	return nil
}
