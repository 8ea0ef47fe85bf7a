package cache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var ErrNotCached error = errors.New("payload not cached")

// FileCache keeps one JSON file of raw explorer output per address and block
// range, independent of the database.
type FileCache struct {
	fs  afero.Fs
	dir string
}

func NewFileCache(fs afero.Fs, dir string) *FileCache {
	return &FileCache{
		fs:  fs,
		dir: dir,
	}
}

// Store writes payload for the range, creating the cache directory if needed,
// and returns the file path.
func (c *FileCache) Store(address string, start, end uint64, payload []byte) (string, error) {
	if err := c.fs.MkdirAll(c.dir, 0o755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}

	path := c.Path(address, start, end)
	if err := afero.WriteFile(c.fs, path, payload, 0o644); err != nil {
		return "", fmt.Errorf("write cache file: %w", err)
	}

	return path, nil
}

func (c *FileCache) Load(address string, start, end uint64) ([]byte, error) {
	data, err := afero.ReadFile(c.fs, c.Path(address, start, end))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotCached
		}
		return nil, fmt.Errorf("read cache file: %w", err)
	}
	return data, nil
}

func (c *FileCache) Path(address string, start, end uint64) string {
	return filepath.Join(c.dir, fmt.Sprintf("%s_%d_%d.json", address, start, end))
}
