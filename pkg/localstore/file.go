package localstore

import (
	"camonk/internal/entity"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

type fileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore keeps the list in <dir>/camonk_local_blogs.json.
func NewFileStore(dir string) IStore {
	return &fileStore{path: filepath.Join(dir, Key+".json")}
}

func (s *fileStore) Load(ctx context.Context) ([]entity.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *fileStore) Append(ctx context.Context, blog entity.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load()
	if err != nil {
		return err
	}
	list = append(list, blog)

	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode local blogs: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create local store dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write local blogs: %w", err)
	}
	return os.Rename(tmp, s.path)
}

func (s *fileStore) load() ([]entity.Blog, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []entity.Blog{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read local blogs: %w", err)
	}
	list, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode local blogs: %w", err)
	}
	return list, nil
}
