package maxime

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"marginalia/blog-service/internal/dto"
)

type MaximeHandler struct {
	service *Service
}

func NewMaximeHandler(service *Service) *MaximeHandler {
	return &MaximeHandler{
		service: service,
	}
}

// Random 随机格言
// @Summary 随机取一条格言
// @Tags Maxime
// @Produce json
// @Success 200 {object} response.Response
// @Router /maximes/random [get]
func (h *MaximeHandler) Random(c *gin.Context) {
	picked, bizErr := h.service.Random()
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, picked)
}

// List 格言列表
// @Summary 获取全部格言
// @Tags Maxime
// @Produce json
// @Success 200 {object} response.Response
// @Router /maximes [get]
func (h *MaximeHandler) List(c *gin.Context) {
	maximes, bizErr := h.service.List()
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, maximes)
}

type createMaximeRequest struct {
	Text string `json:"text" binding:"required,max=500"`
}

// Create 新增格言（管理员）
// @Summary 新增格言
// @Tags Maxime
// @Accept json
// @Produce json
// @Param request body createMaximeRequest true "格言内容"
// @Success 200 {object} response.Response
// @Router /maximes [post]
func (h *MaximeHandler) Create(c *gin.Context) {
	var req createMaximeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	m, bizErr := h.service.Create(req.Text)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, m)
}

// Delete 删除格言（管理员）
// @Summary 删除格言
// @Tags Maxime
// @Produce json
// @Param id path int true "格言ID"
// @Success 200 {object} response.Response
// @Router /maximes/{id} [delete]
func (h *MaximeHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.NotFoundResponse(c, "格言不存在")
		return
	}

	if bizErr := h.service.Delete(uint(id)); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, gin.H{"message": "已删除"})
}
