package auth

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"marginalia/blog-service/internal/testutils"
	"marginalia/blog-service/pkg/response"
)

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewAuthService(db)

	email := fmt.Sprintf("taken_%s@example.com", uuid.New().String())
	testutils.CreateTestUser(db, testutils.WithEmail(email))

	t.Run("已注册邮箱返回冲突", func(t *testing.T) {
		result, bizErr := service.Register(RegisterRequest{
			Email:           email,
			Name:            "someone",
			Password:        "password123",
			ConfirmPassword: "password123",
		})

		assert.Nil(t, result)
		assert.NotNil(t, bizErr)
		assert.Equal(t, response.Conflict, bizErr.Code)
	})

	t.Run("两次密码不一致", func(t *testing.T) {
		result, bizErr := service.Register(RegisterRequest{
			Email:           fmt.Sprintf("new_%s@example.com", uuid.New().String()),
			Name:            "someone",
			Password:        "password123",
			ConfirmPassword: "password456",
		})

		assert.Nil(t, result)
		assert.NotNil(t, bizErr)
		assert.Equal(t, response.ParseError, bizErr.Code)
	})
}
