package localstore

import (
	"camonk/internal/entity"
	"camonk/pkg/redis"
	"context"
	"errors"
	"fmt"
	"sync"
)

type redisStore struct {
	client redis.IRedis
	mu     sync.Mutex
}

// NewRedisStore keeps the list as one JSON string under Key.
func NewRedisStore(client redis.IRedis) IStore {
	return &redisStore{client: client}
}

func (s *redisStore) Load(ctx context.Context) ([]entity.Blog, error) {
	return s.load(ctx)
}

func (s *redisStore) Append(ctx context.Context, blog entity.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return err
	}
	list = append(list, blog)

	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode local blogs: %w", err)
	}
	return s.client.Set(ctx, Key, string(raw), 0)
}

func (s *redisStore) load(ctx context.Context) ([]entity.Blog, error) {
	raw, err := s.client.Get(ctx, Key)
	if errors.Is(err, redis.ErrNotFound) {
		return []entity.Blog{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read local blogs: %w", err)
	}
	list, err := decode([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("decode local blogs: %w", err)
	}
	return list, nil
}
