package filestore

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
)

// Store reads and writes small documents under one data directory.
// Writes land in a temp file that is renamed over the target, so readers never see a partial file.
type Store struct {
	dir string
	mu  sync.RWMutex
}

func New(dir string) (*Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, crerr.New("data dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, crerr.Wrapf(err, "create data dir %s", dir)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// ReadJSON decodes name into target. A missing file reports false with no error.
func (s *Store) ReadJSON(name string, target any) (bool, error) {
	raw, ok, err := s.ReadFile(name)
	if err != nil || !ok {
		return false, err
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return false, crerr.Wrapf(err, "decode %s", name)
	}
	return true, nil
}

func (s *Store) WriteJSON(name string, value any) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	enc := sonic.ConfigStd.NewEncoder(buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return crerr.Wrapf(err, "encode %s", name)
	}
	return s.WriteFile(name, buf.B)
}

func (s *Store) ReadFile(name string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := os.ReadFile(s.path(name))
	if crerr.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, crerr.Wrapf(err, "read %s", name)
	}
	return raw, true, nil
}

func (s *Store) WriteFile(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, "."+name+".*.tmp")
	if err != nil {
		return crerr.Wrapf(err, "create temp for %s", name)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return crerr.Wrapf(err, "write %s", name)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return crerr.Wrapf(err, "sync %s", name)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return crerr.Wrapf(err, "close %s", name)
	}
	if err := os.Rename(tmpName, s.path(name)); err != nil {
		cleanup()
		return crerr.Wrapf(err, "replace %s", name)
	}
	return nil
}
