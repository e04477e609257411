package otpstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "otp:signup:" // otp:signup:{email}

// RedisStore keeps records in Redis and lets key expiry enforce the TTL
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a store on top of an existing client
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Set(ctx context.Context, record Record, ttl time.Duration) error {
	record.ExpiresAt = time.Now().Add(ttl)

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal otp record: %w", err)
	}

	if err := s.client.Set(ctx, key(record.Email), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store otp record: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, email string) (*Record, error) {
	data, err := s.client.Get(ctx, key(email)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get otp record: %w", err)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal otp record: %w", err)
	}
	return &record, nil
}

func (s *RedisStore) Delete(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, key(email)).Err(); err != nil {
		return fmt.Errorf("failed to delete otp record: %w", err)
	}
	return nil
}

func key(email string) string {
	return keyPrefix + email
}
