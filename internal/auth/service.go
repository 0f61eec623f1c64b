package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"marginalia/blog-service/internal/model/user"
	"marginalia/blog-service/pkg/response"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register 账号密码注册，新用户角色固定为普通用户
func (s *AuthService) Register(req RegisterRequest) (*TokenResponse, *response.BusinessError) {
	// 1. 校验确认密码
	if req.ConfirmPassword != req.Password {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("两次密码输入不一致"),
		)
	}

	// 2. 检查邮箱是否已注册
	var existingUser user.User
	if err := s.db.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("邮箱已被注册"),
		)
	}

	// 3. 密码加密
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("密码加密失败"),
		)
	}

	// 4. 创建用户
	newUser := user.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hashedPassword),
		Role:         string(user.RoleUser),
	}

	if err := s.db.Create(&newUser).Error; err != nil {
		// 并发注册时两个请求可能都通过上面的检查，
		// 后写入的会撞到邮箱唯一索引，此时重查确认后按冲突返回
		var dup user.User
		if qErr := s.db.Where("email = ?", req.Email).First(&dup).Error; qErr == nil {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.Conflict),
				response.WithErrorMessage("邮箱已被注册"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("用户创建失败"),
		)
	}

	// 5. 签发令牌
	return s.issueTokens(&newUser)
}

// Login 账号密码登录
func (s *AuthService) Login(req LoginRequest) (*TokenResponse, *response.BusinessError) {
	var u user.User
	if err := s.db.Where("email = ?", req.Email).First(&u).Error; err != nil {
		// 不区分"用户不存在"和"密码错误"，避免账号枚举
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("邮箱或密码错误"),
		)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("邮箱或密码错误"),
		)
	}

	return s.issueTokens(&u)
}

// Refresh 用 refresh token 换取新的令牌对，旧 token 轮换失效
func (s *AuthService) Refresh(refreshToken string) (*TokenResponse, *response.BusinessError) {
	userID, err := GetUserIDByRefreshToken(refreshToken)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("刷新令牌无效或已过期"),
		)
	}

	var u user.User
	if err := s.db.First(&u, userID).Error; err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("用户不存在"),
		)
	}

	// 旧 token 作废后再签发新对
	if err := DeleteRefreshToken(refreshToken); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("刷新令牌轮换失败"),
		)
	}

	return s.issueTokens(&u)
}

// Logout 删除 refresh token
func (s *AuthService) Logout(refreshToken string) *response.BusinessError {
	if refreshToken == "" {
		return nil
	}
	if err := DeleteRefreshToken(refreshToken); err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("登出失败"),
		)
	}
	return nil
}

// GetProfile 获取用户公开资料
func (s *AuthService) GetProfile(userID uint) (*UserInfo, *response.BusinessError) {
	var u user.User
	if err := s.db.First(&u, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("用户不存在"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询用户失败"),
		)
	}

	return userInfo(&u), nil
}

// UpdateProfile 更新个人资料（昵称、简介）
func (s *AuthService) UpdateProfile(userID uint, req UpdateProfileRequest) (*UserInfo, *response.BusinessError) {
	var u user.User
	if err := s.db.First(&u, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("用户不存在"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询用户失败"),
		)
	}

	if req.Name != nil && *req.Name != "" {
		u.Name = *req.Name
	}
	if req.Bio != nil {
		u.Bio = req.Bio
	}

	if err := s.db.Save(&u).Error; err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("更新资料失败"),
		)
	}

	return userInfo(&u), nil
}

func (s *AuthService) issueTokens(u *user.User) (*TokenResponse, *response.BusinessError) {
	accessToken, err := GenerateAccessToken(u.ID, u.Name, u.Email, u.Role)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("生成访问令牌失败"),
		)
	}

	refreshToken, err := GenerateRandomToken()
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("生成刷新令牌失败"),
		)
	}

	if err := SaveRefreshToken(refreshToken, u.ID); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("保存刷新令牌失败"),
		)
	}

	return &TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         *userInfo(u),
	}, nil
}

func userInfo(u *user.User) *UserInfo {
	bio := ""
	if u.Bio != nil {
		bio = *u.Bio
	}
	return &UserInfo{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Bio:   bio,
		Role:  u.Role,
	}
}
