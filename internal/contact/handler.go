// Package contact 联系表单
// 表单内容通过邮件转给管理员，发送在请求路径之外异步执行
package contact

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"marginalia/blog-service/config"
	"marginalia/blog-service/internal/dto"
	"marginalia/blog-service/pkg/email"
)

type ContactHandler struct {
	mailer     *email.Client
	mailFrom   string
	adminEmail string
}

func NewContactHandler(mailer *email.Client) *ContactHandler {
	return &ContactHandler{
		mailer:     mailer,
		mailFrom:   config.Conf.Email.Username,
		adminEmail: config.Conf.Admin.Email,
	}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"omitempty,max=30"`
	Message string `json:"message" binding:"required,max=2000"`
}

// Submit 提交联系表单
// @Summary 提交联系表单，内容转发到管理员邮箱
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "联系表单"
// @Success 200 {object} response.Response
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	// 邮件发送不阻塞请求，失败只记日志
	if h.mailer != nil && h.adminEmail != "" {
		go func() {
			err := h.mailer.SendContactMessage(h.mailFrom, h.adminEmail, email.ContactMessageData{
				Name:  req.Name,
				Email: req.Email,
				Phone: req.Phone,
				Body:  req.Message,
			})
			if err != nil {
				log.Warn().Err(err).Str("from", req.Email).Msg("联系表单邮件发送失败")
			}
		}()
	}

	dto.SuccessResponse(c, gin.H{"message": "已收到您的消息"})
}
