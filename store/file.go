package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps all keys in one JSON object file, rewritten synchronously
// on every mutation so the persisted snapshot never lags the in-memory one.
type FileStore struct {
	path string
	mu   sync.Mutex
	data map[string]string
}

// OpenFileStore loads the store file at path, creating parent directories as
// needed. A missing or unreadable file opens as an empty store.
func OpenFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}

	fs := &FileStore{path: path, data: make(map[string]string)}

	raw, err := os.ReadFile(path)
	if err == nil {
		var data map[string]string
		if json.Unmarshal(raw, &data) == nil && data != nil {
			fs.data = data
		}
	}
	return fs, nil
}

func (fs *FileStore) Get(key string) (string, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	value, ok := fs.data[key]
	return value, ok
}

func (fs *FileStore) Set(key, value string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.data[key] = value
	return fs.flush()
}

func (fs *FileStore) Remove(key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	delete(fs.data, key)
	return fs.flush()
}

func (fs *FileStore) flush() error {
	raw, err := json.Marshal(fs.data)
	if err != nil {
		return err
	}
	return os.WriteFile(fs.path, raw, 0644)
}
