package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	game_constants "courtside/constants/game"
	redis_models "courtside/models/redis"
	redis_utils "courtside/services/redis/utils"
)

// RedisClient handles Redis operations
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(Addr string, DB int) *RedisClient {
	var client *redis.Client
	if Addr != "localhost:6379" {
		log.Println("Connecting to remote Redis...")
		opt, err := redis.ParseURL(Addr)
		if err != nil {
			panic("Error parsing Redis URL")
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: Addr,
			DB:   DB,
		})
	}
	return &RedisClient{
		client: client,
		ctx:    context.Background(),
	}
}

// SaveVerificationCode stores a phone verification code
// Key format: "verify:{phone}:code"
// TTL: 5 minutes
func (rc *RedisClient) SaveVerificationCode(phone, code string) error {
	key := redis_utils.FormatVerificationCodeKey(phone)
	if err := rc.client.Set(rc.ctx, key, code, game_constants.VerificationCodeTTL).Err(); err != nil {
		return fmt.Errorf("error saving verification code: %v", err)
	}
	return nil
}

// GetVerificationCode retrieves a pending verification code.
// Returns "" with no error when the code expired or never existed.
func (rc *RedisClient) GetVerificationCode(phone string) (string, error) {
	key := redis_utils.FormatVerificationCodeKey(phone)
	code, err := rc.client.Get(rc.ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error getting verification code: %v", err)
	}
	return code, nil
}

// DeleteVerificationCode removes a code once consumed
func (rc *RedisClient) DeleteVerificationCode(phone string) error {
	key := redis_utils.FormatVerificationCodeKey(phone)
	if err := rc.client.Del(rc.ctx, key).Err(); err != nil {
		return fmt.Errorf("error deleting verification code: %v", err)
	}
	return nil
}

// SavePlayerPresence stores a player's connection status
// Key format: "presence:{username}"
// TTL: 24 hours
func (rc *RedisClient) SavePlayerPresence(p *redis_models.PlayerPresence) error {
	key := redis_utils.FormatPresenceKey(p.Username)
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("error marshaling presence data: %v", err)
	}
	return rc.client.Set(rc.ctx, key, data, 24*time.Hour).Err()
}

// DeletePlayerPresence drops a player's presence record, used when the
// server shuts down and last-seen data would go stale
func (rc *RedisClient) DeletePlayerPresence(username string) error {
	return rc.CleanupKeys([]string{redis_utils.FormatPresenceKey(username)})
}

// GetPlayerPresence retrieves a player's connection status
func (rc *RedisClient) GetPlayerPresence(username string) (*redis_models.PlayerPresence, error) {
	key := redis_utils.FormatPresenceKey(username)
	data, err := rc.client.Get(rc.ctx, key).Bytes()
	if err != nil {
		return nil, fmt.Errorf("error getting presence data: %v", err)
	}

	var presence redis_models.PlayerPresence
	if err := json.Unmarshal(data, &presence); err != nil {
		return nil, fmt.Errorf("error unmarshaling presence data: %v", err)
	}
	return &presence, nil
}
