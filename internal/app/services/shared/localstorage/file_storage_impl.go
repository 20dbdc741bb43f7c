package localstorage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"saude-connect/internal/app/contracts"
	"saude-connect/internal/pkg/constvars"
	"saude-connect/internal/pkg/exceptions"
	"saude-connect/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// fileStorage keeps every key in one JSON object on disk so that a CLI
// session survives between invocations. Writes replace the file atomically.
type fileStorage struct {
	mu   sync.Mutex
	path string
	log  *zap.Logger
}

func NewFileStorage(path string, logger *zap.Logger) contracts.SessionStorage {
	return &fileStorage{path: path, log: logger}
}

func (f *fileStorage) load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, exceptions.ErrFileStorageRead(err, f.path)
	}
	if len(data) == 0 {
		return map[string]string{}, nil
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, exceptions.ErrFileStorageRead(err, f.path)
	}
	return values, nil
}

func (f *fileStorage) save(values map[string]string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return exceptions.ErrFileStorageWrite(err, f.path)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return exceptions.ErrFileStorageWrite(err, f.path)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return exceptions.ErrFileStorageWrite(err, f.path)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return exceptions.ErrFileStorageWrite(err, f.path)
	}
	if err := tmp.Close(); err != nil {
		return exceptions.ErrFileStorageWrite(err, f.path)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return exceptions.ErrFileStorageWrite(err, f.path)
	}
	return nil
}

func (f *fileStorage) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		f.log.Error("fileStorage.Get error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingStorageKey, key),
			zap.Error(err),
		)
		return "", false, err
	}
	value, found := values[key]
	return value, found, nil
}

func (f *fileStorage) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		// Unreadable content is discarded and the file rewritten.
		f.log.Warn("fileStorage.Set replacing unreadable file",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
		values = map[string]string{}
	}
	values[key] = value
	return f.save(values)
}

func (f *fileStorage) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		f.log.Warn("fileStorage.Remove replacing unreadable file",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
		return f.save(map[string]string{})
	}
	if _, found := values[key]; !found {
		return nil
	}
	delete(values, key)
	return f.save(values)
}
