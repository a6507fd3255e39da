package wordsource

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// defaultRedisKey is the set the word list lives under when no key is
// configured.
const defaultRedisKey = "arspell:words"

// RedisSource reads the word list from a Redis set, one word per member.
// The set is read once at startup and the dictionary built from it stays
// immutable; nothing is ever written back.
type RedisSource struct {
	client *redis.Client
	key    string
}

func NewRedis(client *redis.Client, key string) *RedisSource {
	if key == "" {
		key = defaultRedisKey
	}
	return &RedisSource{client: client, key: key}
}

func (s *RedisSource) Records() ([]string, error) {
	words, err := s.client.SMembers(context.Background(), s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("wordsource: redis smembers %s: %w", s.key, err)
	}
	return words, nil
}
