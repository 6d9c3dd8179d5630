package fsops

import (
	"os"
	"sync"
)

// MemFS implements FS over an in-memory map of paths to contents.
type MemFS struct {
	mu    sync.Mutex
	files map[string][]byte

	// WriteErr, if set, is returned by every AtomicWrite
	WriteErr error
}

// NewMemFS creates an empty MemFS.
func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

// Put stores data at path.
func (fs *MemFS) Put(path string, data []byte) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.files[path] = append([]byte(nil), data...)
}

// ReadFile returns the stored contents or an os.ErrNotExist error.
func (fs *MemFS) ReadFile(path string) ([]byte, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	data, ok := fs.files[path]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

// AtomicWrite stores data at path unless WriteErr is set.
func (fs *MemFS) AtomicWrite(path string, data []byte, _ os.FileMode) error {
	if fs.WriteErr != nil {
		return fs.WriteErr
	}
	fs.Put(path, data)
	return nil
}

// Exists reports whether path has been stored.
func (fs *MemFS) Exists(path string) (bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	_, ok := fs.files[path]
	return ok, nil
}
