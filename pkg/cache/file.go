package cache

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores rendered artifacts under a directory, one file per
// entry. The CLI roots it at the user's XDG cache dir so re-exporting
// an unchanged diagram skips the Graphviz pass.
type FileCache struct {
	dir string
}

// NewFileCache opens a cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Entries are framed as an 8-byte big-endian expiry (unix nanoseconds,
// zero for none) followed by the raw artifact bytes. SVG and PNG
// payloads dominate the entry size, so they are stored unencoded.
const entryHeaderLen = 8

// Get returns the artifact stored under key, dropping the entry and
// reporting a miss when it has expired or cannot be decoded.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if len(raw) < entryHeaderLen {
		// Truncated entry, likely an interrupted write.
		_ = os.Remove(path)
		return nil, false, nil
	}

	expiry := int64(binary.BigEndian.Uint64(raw[:entryHeaderLen]))
	if expiry != 0 && time.Now().UnixNano() > expiry {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return raw[entryHeaderLen:], true, nil
}

// Set stores an artifact under key. A ttl of zero keeps it forever.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	var expiry int64
	if ttl > 0 {
		expiry = time.Now().Add(ttl).UnixNano()
	}

	buf := make([]byte, entryHeaderLen+len(data))
	binary.BigEndian.PutUint64(buf[:entryHeaderLen], uint64(expiry))
	copy(buf[entryHeaderLen:], data)

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, buf, 0644)
}

// Delete removes the entry for key, if any.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op; entries are not held open between calls.
func (c *FileCache) Close() error {
	return nil
}

// path maps a cache key to a file, sharding by the first two hex
// digits of the key hash so one diagram's artifacts do not pile a
// whole cache into a single directory.
func (c *FileCache) path(key string) string {
	hash := Hash([]byte(key))
	return filepath.Join(c.dir, hash[:2], hash[2:]+".art")
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
