package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned by Get for a missing key.
var ErrNotFound = errors.New("redis: key not found")

type IRedis interface {
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Close() error
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func (r *redisClient) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	logrus.Debug(fmt.Sprintf("Setting key %s with expiration %v", key, expiration))
	if err := r.client.Set(ctx, key, value, expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error setting key %s: %v", key, err))
		return err
	}
	return nil
}

func (r *redisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		logrus.Debug(fmt.Sprintf("Key %s not found", key))
		return "", ErrNotFound
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting key %s: %v", key, err))
		return "", err
	}
	return val, nil
}

func (r *redisClient) Close() error {
	return r.client.Close()
}
