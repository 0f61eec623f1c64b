package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"marginalia/blog-service/config"
	"marginalia/blog-service/internal/dto"
	"marginalia/blog-service/internal/permission"
	"marginalia/blog-service/pkg/authsdk"
	"marginalia/blog-service/pkg/response"
)

// extractToken 从 cookie 或 Authorization header 中取出 token 字符串
func extractToken(c *gin.Context) (string, error) {
	// 优先从 cookie 中获取 access_token
	tokenString, err := c.Cookie("access_token")
	if err == nil && tokenString != "" {
		return tokenString, nil
	}

	// 如果 cookie 中没有，尝试从 Authorization header 获取
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("未提供认证令牌")
	}

	// 验证格式: Bearer <token>
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:], nil
	}
	return "", fmt.Errorf("认证格式错误")
}

// JWTAuth JWT 认证中间件（必需认证）
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractToken(c)
		if err != nil {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage(err.Error()),
			))
			c.Abort()
			return
		}

		uc, err := authsdk.ParseToken(tokenString, config.Conf.JWT.Secret)
		if err != nil {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage("无效的认证令牌"),
			))
			c.Abort()
			return
		}

		// 将用户信息存入上下文
		c.Set("user_id", uc.UserID)
		c.Set("user_name", uc.Name)
		c.Set("email", uc.Email)
		c.Set("user_role", uc.Role)
		c.Next()
	}
}

// AdminOnly 管理员专属路由，必须先挂 JWTAuth
// 校验失败直接 403 中断，保证 handler 不会在未授权时触碰任何状态
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists || !permission.IsAdmin(role.(string)) {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Forbidden),
				response.WithErrorMessage("需要管理员权限"),
			))
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID 从上下文取当前用户ID，未认证返回 0
func CurrentUserID(c *gin.Context) uint {
	if uid, exists := c.Get("user_id"); exists && uid != nil {
		return uid.(uint)
	}
	return 0
}

// CurrentUserRole 从上下文取当前用户角色，未认证返回空串
func CurrentUserRole(c *gin.Context) string {
	if role, exists := c.Get("user_role"); exists && role != nil {
		return role.(string)
	}
	return ""
}
