package auth

import (
	"time"

	"marginalia/blog-service/config"
	"marginalia/blog-service/pkg/authsdk"
)

var (
	ErrInvalidToken = authsdk.ErrInvalidToken
	ErrExpiredToken = authsdk.ErrExpiredToken
)

// GenerateAccessToken 生成访问令牌（短期有效，用于 API 访问）
func GenerateAccessToken(userID uint, name, email, role string) (string, error) {
	expire := time.Duration(config.Conf.JWT.ExpireTime) * time.Hour
	return authsdk.GenerateToken(userID, name, email, role, config.Conf.JWT.Secret, expire)
}

// ParseAccessToken 解析并验证访问令牌
func ParseAccessToken(tokenString string) (*authsdk.UserContext, error) {
	return authsdk.ParseToken(tokenString, config.Conf.JWT.Secret)
}
