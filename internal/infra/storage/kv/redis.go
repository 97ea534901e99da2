package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore хранилище ключ-значение в Redis
// Поддерживает уведомления об изменениях через pub/sub
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore создает хранилище поверх готового клиента
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// NewRedisClient создает клиента Redis
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// Get возвращает значение по ключу или ErrKeyNotFound
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: Get - key=%s: %v", ErrRedis, key, err)
	}
	return value, nil
}

// Set сохраняет значение без TTL
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: Set - key=%s: %v", ErrRedis, key, err)
	}
	return nil
}

// Delete удаляет ключи
func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: Delete - keys=%v: %v", ErrRedis, keys, err)
	}
	return nil
}

// Publish отправляет пустое уведомление в канал
func (s *RedisStore) Publish(ctx context.Context, channel string) error {
	if err := s.client.Publish(ctx, channel, "").Err(); err != nil {
		return fmt.Errorf("%w: Publish - channel=%s: %v", ErrRedis, channel, err)
	}
	return nil
}

// Subscribe подписывается на канал и возвращает поток уведомлений без содержимого
// Поток закрывается после отмены ctx
func (s *RedisStore) Subscribe(ctx context.Context, channel string) (<-chan struct{}, error) {
	pubsub := s.client.Subscribe(ctx, channel)

	// Дожидаемся подтверждения подписки, иначе первые сообщения могут потеряться
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("%w: channel=%s: %v", ErrSubscribe, channel, err)
	}

	out := make(chan struct{}, 1)
	messages := pubsub.Channel()

	go func() {
		defer close(out)
		defer pubsub.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-messages:
				if !ok {
					return
				}
				// Уведомления склеиваются: если предыдущее ещё не прочитано, новое не нужно
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()

	return out, nil
}

// Ping проверяет соединение
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: Ping: %v", ErrRedis, err)
	}
	return nil
}

// Close закрывает клиента
func (s *RedisStore) Close() error {
	return s.client.Close()
}
