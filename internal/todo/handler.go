package todo

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"marginalia/blog-service/internal/dto"
	"marginalia/blog-service/internal/middleware"
	"marginalia/blog-service/pkg/response"
)

type TodoHandler struct {
	service *TodoService
}

func NewTodoHandler(db *gorm.DB) *TodoHandler {
	return &TodoHandler{
		service: NewTodoService(db),
	}
}

// pathID 解析路径中的数字ID参数
func pathID(c *gin.Context, name string) (uint, *response.BusinessError) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 0 {
		return 0, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的ID参数"),
		)
	}
	return uint(id), nil
}

// ListProjects 我的项目列表
// @Summary 获取当前用户的全部待办项目
// @Tags Todo
// @Produce json
// @Success 200 {object} response.Response
// @Router /todo/projects [get]
func (h *TodoHandler) ListProjects(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	projects, bizErr := h.service.ListProjects(userID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, projects)
}

// CreateProject 新建项目
// @Summary 新建待办项目（单用户上限10个）
// @Tags Todo
// @Accept json
// @Produce json
// @Param request body CreateProjectRequest true "新建项目请求"
// @Success 200 {object} response.Response
// @Router /todo/projects [post]
func (h *TodoHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	userID := middleware.CurrentUserID(c)

	project, bizErr := h.service.CreateProject(userID, req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, project)
}

// GetProject 项目详情
// @Summary 获取项目详情及其待办事项
// @Tags Todo
// @Produce json
// @Param id path int true "项目ID"
// @Success 200 {object} response.Response{data=ProjectDetailResponse}
// @Router /todo/projects/{id} [get]
func (h *TodoHandler) GetProject(c *gin.Context) {
	projectID, bizErr := pathID(c, "id")
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	userID := middleware.CurrentUserID(c)

	detail, bizErr := h.service.GetProject(projectID, userID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, detail)
}

// UpdateProject 更新项目
// @Summary 更新待办项目
// @Tags Todo
// @Accept json
// @Produce json
// @Param id path int true "项目ID"
// @Param request body UpdateProjectRequest true "更新项目请求"
// @Success 200 {object} response.Response
// @Router /todo/projects/{id} [put]
func (h *TodoHandler) UpdateProject(c *gin.Context) {
	projectID, bizErr := pathID(c, "id")
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	userID := middleware.CurrentUserID(c)

	project, bizErr := h.service.UpdateProject(projectID, userID, req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, project)
}

// DeleteProject 删除项目
// @Summary 删除待办项目及其全部事项
// @Tags Todo
// @Produce json
// @Param id path int true "项目ID"
// @Success 200 {object} response.Response
// @Router /todo/projects/{id} [delete]
func (h *TodoHandler) DeleteProject(c *gin.Context) {
	projectID, bizErr := pathID(c, "id")
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	userID := middleware.CurrentUserID(c)

	if bizErr := h.service.DeleteProject(projectID, userID); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, gin.H{"message": "已删除"})
}

// CreateItem 新建待办事项
// @Summary 在项目下新建待办事项
// @Tags Todo
// @Accept json
// @Produce json
// @Param id path int true "项目ID"
// @Param request body CreateItemRequest true "新建事项请求"
// @Success 200 {object} response.Response
// @Router /todo/projects/{id}/items [post]
func (h *TodoHandler) CreateItem(c *gin.Context) {
	projectID, bizErr := pathID(c, "id")
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	userID := middleware.CurrentUserID(c)

	item, bizErr := h.service.CreateItem(projectID, userID, req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, item)
}

// UpdateItem 更新待办事项
// @Summary 更新待办事项
// @Tags Todo
// @Accept json
// @Produce json
// @Param id path int true "事项ID"
// @Param request body UpdateItemRequest true "更新事项请求"
// @Success 200 {object} response.Response
// @Router /todo/items/{id} [put]
func (h *TodoHandler) UpdateItem(c *gin.Context) {
	itemID, bizErr := pathID(c, "id")
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	userID := middleware.CurrentUserID(c)

	item, bizErr := h.service.UpdateItem(itemID, userID, req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, item)
}

// ToggleItemStatus 翻转完成状态
// @Summary 翻转待办事项的完成状态
// @Tags Todo
// @Produce json
// @Param id path int true "事项ID"
// @Success 200 {object} response.Response
// @Router /todo/items/{id}/toggle [post]
func (h *TodoHandler) ToggleItemStatus(c *gin.Context) {
	itemID, bizErr := pathID(c, "id")
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	userID := middleware.CurrentUserID(c)

	item, bizErr := h.service.ToggleItemStatus(itemID, userID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, item)
}

// TransferItem 转移待办事项
// @Summary 把待办事项转移到另一个项目（目标项目上限100条）
// @Tags Todo
// @Accept json
// @Produce json
// @Param id path int true "事项ID"
// @Param request body TransferItemRequest true "目标项目"
// @Success 200 {object} response.Response
// @Router /todo/items/{id}/transfer [post]
func (h *TodoHandler) TransferItem(c *gin.Context) {
	itemID, bizErr := pathID(c, "id")
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	var req TransferItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	userID := middleware.CurrentUserID(c)

	item, bizErr := h.service.TransferItem(itemID, userID, req.ProjectID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, item)
}

// DeleteItem 删除待办事项
// @Summary 删除待办事项
// @Tags Todo
// @Produce json
// @Param id path int true "事项ID"
// @Success 200 {object} response.Response
// @Router /todo/items/{id} [delete]
func (h *TodoHandler) DeleteItem(c *gin.Context) {
	itemID, bizErr := pathID(c, "id")
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	userID := middleware.CurrentUserID(c)

	if bizErr := h.service.DeleteItem(itemID, userID); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, gin.H{"message": "已删除"})
}
