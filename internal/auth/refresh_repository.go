package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"terminal-terrace/blog/internal/database"
)

const refreshKeyPrefix = "refresh_token:"

// RefreshTokenData refresh token 关联的用户信息
type RefreshTokenData struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// RefreshTokenRepository refresh token 的 Redis 存储
type RefreshTokenRepository struct {
	rdb *database.RedisClient
}

func NewRefreshTokenRepository(rdb *database.RedisClient) *RefreshTokenRepository {
	return &RefreshTokenRepository{rdb: rdb}
}

// Create 存储 refresh token，ttl 到期自动失效
func (r *RefreshTokenRepository) Create(token string, data RefreshTokenData, ttl time.Duration) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return r.rdb.Set(ctx, refreshKeyPrefix+token, payload, ttl).Err()
}

// Get 查询 refresh token
func (r *RefreshTokenRepository) Get(token string) (*RefreshTokenData, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	payload, err := r.rdb.Get(ctx, refreshKeyPrefix+token).Result()
	if err != nil {
		return nil, fmt.Errorf("refresh token 不存在或已过期: %w", err)
	}

	var data RefreshTokenData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Delete 撤销 refresh token
func (r *RefreshTokenRepository) Delete(token string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return r.rdb.Del(ctx, refreshKeyPrefix+token).Err()
}
