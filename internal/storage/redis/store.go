// Package redis keeps preferences in a single Redis hash, for users who
// already run Redis and want their settings shared across machines.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/julianstephens/dailyworkout/internal/constants"
	"github.com/julianstephens/dailyworkout/internal/logger"
	"github.com/julianstephens/dailyworkout/internal/prefs"
)

const (
	// HashKey holds every preference as a field.
	HashKey = constants.PreferenceNamespace + "preferences"

	// MarkerKey is written by Init so that Load can tell an empty server from
	// an initialized one.
	MarkerKey = constants.PreferenceNamespace + "initialized"

	opTimeout = 3 * time.Second
)

type Store struct {
	url    string
	client *redis.Client
}

func New(url string) *Store {
	return &Store{url: url}
}

func (s *Store) connect() error {
	if s.client != nil {
		return nil
	}

	opts, err := redis.ParseURL(s.url)
	if err != nil {
		return fmt.Errorf("invalid redis URL: %w", err)
	}
	s.client = redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	return nil
}

func (s *Store) Init() error {
	if err := s.connect(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	created, err := s.client.SetNX(ctx, MarkerKey, time.Now().UTC().Format(time.RFC3339), 0).Result()
	if err != nil {
		return fmt.Errorf("failed to initialize redis storage: %w", err)
	}
	if created {
		logger.Info("Initialized redis storage", "hash", HashKey)
	}
	return nil
}

func (s *Store) Load() error {
	if err := s.connect(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	n, err := s.client.Exists(ctx, MarkerKey).Result()
	if err != nil {
		return fmt.Errorf("failed to read redis storage: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
	}
	return nil
}

func (s *Store) Close() error {
	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil
	return err
}

func (s *Store) Get(key string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	v, err := s.client.HGet(ctx, HashKey, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", prefs.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (s *Store) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.client.HSet(ctx, HashKey, key, value).Err()
}

func (s *Store) Clear(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.client.HDel(ctx, HashKey, keys...).Err()
}

func (s *Store) GetConfigPath() string {
	return "redis"
}
