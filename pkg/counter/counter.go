// Package counter provides the faucet side counter: a monotonically increasing
// integer persisted to a small JSON file and incremented by a single writer.
package counter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const filePerm = 0o644

// fileFormat matches the on-disk layout {"counter": N}.
type fileFormat struct {
	Counter uint64 `json:"counter"`
}

// FileCounter is a durable counter. Increment holds a mutex across the
// in-memory bump and the file flush, so values are never skipped or repeated.
type FileCounter struct {
	path string

	mu    sync.Mutex
	value uint64
}

// Open loads the counter stored at path. A missing file starts the counter at 0.
func Open(path string) (*FileCounter, error) {
	if path == "" {
		return nil, errors.New("counter file path is empty")
	}

	c := &FileCounter{path: path}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return c, nil
	case err != nil:
		return nil, fmt.Errorf("read counter file: %w", err)
	}

	var f fileFormat
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode counter file %s: %w", path, err)
	}
	c.value = f.Counter
	return c, nil
}

// Value returns the current counter value.
func (c *FileCounter) Value() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Increment bumps the counter by one, persists it and returns the new value.
// If the write fails the in-memory value is left unchanged.
func (c *FileCounter) Increment() (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.value + 1
	if err := c.write(next); err != nil {
		return 0, err
	}
	c.value = next
	return next, nil
}

// write replaces the file atomically through a temp file in the same directory.
func (c *FileCounter) write(v uint64) error {
	raw, err := json.MarshalIndent(fileFormat{Counter: v}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode counter: %w", err)
	}

	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create counter temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write counter temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync counter temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close counter temp file: %w", err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("chmod counter temp file: %w", err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		return fmt.Errorf("replace counter file: %w", err)
	}
	return nil
}
