package blog

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"marginalia/blog-service/config"
	"marginalia/blog-service/internal/dto"
	"marginalia/blog-service/internal/maxime"
	"marginalia/blog-service/internal/middleware"
	"marginalia/blog-service/pkg/email"
	"marginalia/blog-service/pkg/response"
)

type BlogHandler struct {
	blogService   *BlogService
	maximeService *maxime.Service
}

func NewBlogHandler(db *gorm.DB, mailer *email.Client, maximeService *maxime.Service) *BlogHandler {
	adminEmail := config.Conf.Admin.Email
	mailFrom := config.Conf.Email.Username

	return &BlogHandler{
		blogService:   NewBlogService(db, mailer, mailFrom, adminEmail),
		maximeService: maximeService,
	}
}

// Homepage 首页数据
// @Summary 首页数据（最新文章、头图轮播、全部文章、随机格言）
// @Tags Blog
// @Produce json
// @Success 200 {object} response.Response{data=HomeResponse}
// @Router /posts [get]
func (h *BlogHandler) Homepage(c *gin.Context) {
	result, bizErr := h.blogService.Homepage()
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	// 每次请求随机挑一条格言装饰页面
	result.Maxime = h.maximeService.RandomText()

	dto.SuccessResponse(c, result)
}

// GetPost 文章详情
// @Summary 获取文章详情（含标签和评论）
// @Tags Blog
// @Produce json
// @Param id path int true "文章ID"
// @Success 200 {object} response.Response{data=PostDetailResponse}
// @Router /posts/{id} [get]
func (h *BlogHandler) GetPost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的文章ID"),
		))
		return
	}

	result, bizErr := h.blogService.GetPost(uint(postID))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}

// CreatePost 创建文章（管理员）
// @Summary 创建文章
// @Tags Blog
// @Accept json
// @Produce json
// @Param request body CreatePostRequest true "创建文章请求"
// @Success 200 {object} response.Response{data=PostResponse}
// @Router /posts [post]
func (h *BlogHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	authorID := middleware.CurrentUserID(c)

	result, bizErr := h.blogService.CreatePost(req, authorID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}

// UpdatePost 更新文章（管理员）
// @Summary 更新文章
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path int true "文章ID"
// @Param request body UpdatePostRequest true "更新文章请求"
// @Success 200 {object} response.Response{data=PostResponse}
// @Router /posts/{id} [put]
func (h *BlogHandler) UpdatePost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的文章ID"),
		))
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, bizErr := h.blogService.UpdatePost(uint(postID), req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}

// DeletePost 删除文章（管理员）
// @Summary 删除文章
// @Tags Blog
// @Produce json
// @Param id path int true "文章ID"
// @Success 200 {object} response.Response
// @Router /posts/{id} [delete]
func (h *BlogHandler) DeletePost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的文章ID"),
		))
		return
	}

	if bizErr := h.blogService.DeletePost(uint(postID)); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, gin.H{"message": "已删除"})
}

// CreateComment 发表评论（需登录）
// @Summary 发表评论
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path int true "文章ID"
// @Param request body CreateCommentRequest true "评论内容"
// @Success 200 {object} response.Response{data=CommentResponse}
// @Router /posts/{id}/comments [post]
func (h *BlogHandler) CreateComment(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的文章ID"),
		))
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	userID := middleware.CurrentUserID(c)
	userName := ""
	if name, exists := c.Get("user_name"); exists && name != nil {
		userName = name.(string)
	}

	result, bizErr := h.blogService.CreateComment(uint(postID), userID, userName, req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}

// ListCategories 分类列表
// @Summary 获取全部分类
// @Tags Category
// @Produce json
// @Success 200 {object} response.Response
// @Router /categories [get]
func (h *BlogHandler) ListCategories(c *gin.Context) {
	categories, bizErr := h.blogService.ListCategories()
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, categories)
}

// GetCategory 分类页
// @Summary 获取分类及其文章（按分类排序策略排序）
// @Tags Category
// @Produce json
// @Param id path int true "分类ID"
// @Success 200 {object} response.Response{data=CategoryPageResponse}
// @Router /categories/{id} [get]
func (h *BlogHandler) GetCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的分类ID"),
		))
		return
	}

	result, bizErr := h.blogService.CategoryPage(uint(categoryID))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}

// CreateCategory 创建分类（管理员）
// @Summary 创建分类
// @Tags Category
// @Accept json
// @Produce json
// @Param request body CreateCategoryRequest true "创建分类请求"
// @Success 200 {object} response.Response
// @Router /categories [post]
func (h *BlogHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, bizErr := h.blogService.CreateCategory(req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}

// UpdateCategory 更新分类（管理员）
// @Summary 更新分类
// @Tags Category
// @Accept json
// @Produce json
// @Param id path int true "分类ID"
// @Param request body UpdateCategoryRequest true "更新分类请求"
// @Success 200 {object} response.Response
// @Router /categories/{id} [put]
func (h *BlogHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的分类ID"),
		))
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, bizErr := h.blogService.UpdateCategory(uint(categoryID), req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}

// DeleteCategory 删除分类（管理员）
// @Summary 删除分类（引用该分类的文章置空）
// @Tags Category
// @Produce json
// @Param id path int true "分类ID"
// @Success 200 {object} response.Response
// @Router /categories/{id} [delete]
func (h *BlogHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的分类ID"),
		))
		return
	}

	if bizErr := h.blogService.DeleteCategory(uint(categoryID)); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, gin.H{"message": "已删除"})
}

// GetTagPosts 标签页
// @Summary 获取标签下的文章
// @Tags Blog
// @Produce json
// @Param id path int true "标签ID"
// @Success 200 {object} response.Response{data=[]PostResponse}
// @Router /tags/{id}/posts [get]
func (h *BlogHandler) GetTagPosts(c *gin.Context) {
	tagID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的标签ID"),
		))
		return
	}

	result, bizErr := h.blogService.TagPage(uint(tagID))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}
