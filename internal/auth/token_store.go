package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"marginalia/blog-service/internal/database"
)

const (
	// Refresh token 有效期：30天
	RefreshTokenExpiration = 30 * 24 * time.Hour
	// Refresh token Redis key 前缀
	RefreshTokenPrefix = "refresh_token:"
)

// GenerateRandomToken 生成随机令牌字符串（纯工具函数）
func GenerateRandomToken() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("生成随机令牌失败: %w", err)
	}

	return base64.URLEncoding.EncodeToString(b), nil
}

// SaveRefreshToken 保存 refresh token 到 Redis，value 为用户ID
func SaveRefreshToken(token string, userID uint) error {
	ctx := context.Background()
	key := RefreshTokenPrefix + token

	return database.RedisDB.Set(ctx, key, strconv.FormatUint(uint64(userID), 10), RefreshTokenExpiration).Err()
}

// GetUserIDByRefreshToken 根据 refresh token 获取用户ID
func GetUserIDByRefreshToken(token string) (uint, error) {
	ctx := context.Background()
	key := RefreshTokenPrefix + token

	value, err := database.RedisDB.Get(ctx, key).Result()
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, err
	}

	return uint(userID), nil
}

// DeleteRefreshToken 删除 refresh token（登出或轮换后失效）
func DeleteRefreshToken(token string) error {
	ctx := context.Background()
	key := RefreshTokenPrefix + token

	return database.RedisDB.Del(ctx, key).Err()
}
