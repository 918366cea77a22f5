package redisstore

// Package redisstore provides a Redis-backed DurableStorage adapter for
// deployments where several client contexts share one session record.

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/openshelf/openshelf/internal/ports"
)

// Storage is a Redis-based implementation of ports.DurableStorage.
type Storage struct {
	client redis.UniversalClient
	prefix string
}

var _ ports.DurableStorage = (*Storage)(nil)

// New creates a Redis-backed storage with the default key prefix.
func New(client redis.UniversalClient) *Storage {
	return &Storage{client: client, prefix: "openshelf:storage:"}
}

// NewWithPrefix creates a Redis-backed storage with a custom key prefix.
func NewWithPrefix(client redis.UniversalClient, prefix string) *Storage {
	return &Storage{client: client, prefix: prefix}
}

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return data, nil
}

func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	// No TTL: the session carries its own expiry and the store logs out
	// expired sessions itself.
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *Storage) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
