package auth

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"marginalia/blog-service/internal/dto"
	"marginalia/blog-service/internal/middleware"
)

type AuthHandler struct {
	authService *AuthService
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{
		authService: NewAuthService(db),
	}
}

// Register 用户注册
// @Summary 用户注册
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册请求"
// @Success 200 {object} response.Response{data=TokenResponse}
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, bizErr := h.authService.Register(req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	setTokenCookie(c, result.AccessToken)
	dto.SuccessResponse(c, result)
}

// Login 用户登录
// @Summary 用户登录
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录请求"
// @Success 200 {object} response.Response{data=TokenResponse}
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, bizErr := h.authService.Login(req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	setTokenCookie(c, result.AccessToken)
	dto.SuccessResponse(c, result)
}

// Refresh 刷新令牌
// @Summary 刷新访问令牌
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "刷新请求"
// @Success 200 {object} response.Response{data=TokenResponse}
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, bizErr := h.authService.Refresh(req.RefreshToken)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	setTokenCookie(c, result.AccessToken)
	dto.SuccessResponse(c, result)
}

// Logout 用户登出
// @Summary 用户登出
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req RefreshRequest
	// 登出时 refresh_token 可以缺省，只清 cookie
	_ = c.ShouldBindJSON(&req)

	if bizErr := h.authService.Logout(req.RefreshToken); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	clearTokenCookie(c)
	dto.SuccessResponse(c, gin.H{"message": "已登出"})
}

// Me 当前用户信息
// @Summary 获取当前登录用户信息
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response{data=UserInfo}
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	info, bizErr := h.authService.GetProfile(userID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, info)
}

// GetProfile 用户主页资料
// @Summary 获取指定用户的公开资料
// @Tags Auth
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=UserInfo}
// @Router /users/{id} [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.NotFoundResponse(c, "用户不存在")
		return
	}

	info, bizErr := h.authService.GetProfile(uint(userID))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, info)
}

// UpdateProfile 更新当前用户资料
// @Summary 更新当前用户资料
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "资料更新请求"
// @Success 200 {object} response.Response{data=UserInfo}
// @Router /auth/me [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	userID := middleware.CurrentUserID(c)

	info, bizErr := h.authService.UpdateProfile(userID, req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, info)
}

func setTokenCookie(c *gin.Context, accessToken string) {
	// access_token 放 HttpOnly cookie，同时兼容 Authorization header
	c.SetCookie("access_token", accessToken, 3600*24, "/", "", false, true)
}

func clearTokenCookie(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", false, true)
}
