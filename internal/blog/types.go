package blog

import (
	model "marginalia/blog-service/internal/model/blog"
)

// CreatePostRequest 创建文章请求
// tags 为自由文本，按空白切分成标签名
type CreatePostRequest struct {
	Title      string `json:"title" binding:"required,max=255"`
	Subtitle   string `json:"subtitle" binding:"required,max=255"`
	Body       string `json:"body" binding:"required"`
	ImgURL     string `json:"img_url" binding:"omitempty,url,max=500"`
	Tags       string `json:"tags"`
	CategoryID *uint  `json:"category_id"`
	Header     bool   `json:"header"`
}

// UpdatePostRequest 更新文章请求
type UpdatePostRequest struct {
	Title      *string `json:"title" binding:"omitempty,max=255"`
	Subtitle   *string `json:"subtitle" binding:"omitempty,max=255"`
	Body       *string `json:"body"`
	ImgURL     *string `json:"img_url" binding:"omitempty,url,max=500"`
	Tags       *string `json:"tags"`
	CategoryID *uint   `json:"category_id"`
	Header     *bool   `json:"header"`
}

// CreateCategoryRequest 创建分类请求
type CreateCategoryRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Description  string `json:"description" binding:"max=500"`
	ImgURL       string `json:"img_url" binding:"omitempty,url,max=500"`
	SortStrategy string `json:"sort_strategy" binding:"omitempty,oneof=insertion numeric-suffix"`
}

// UpdateCategoryRequest 更新分类请求
type UpdateCategoryRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=100"`
	Description  *string `json:"description" binding:"omitempty,max=500"`
	ImgURL       *string `json:"img_url" binding:"omitempty,url,max=500"`
	SortStrategy *string `json:"sort_strategy" binding:"omitempty,oneof=insertion numeric-suffix"`
}

// CreateCommentRequest 发表评论请求
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required,max=250"`
}

// PostResponse 文章响应
type PostResponse struct {
	ID         uint     `json:"id"`
	Title      string   `json:"title"`
	Subtitle   string   `json:"subtitle"`
	Body       string   `json:"body,omitempty"`
	ImgURL     string   `json:"img_url"`
	Date       string   `json:"date"`
	Header     bool     `json:"header"`
	AuthorID   uint     `json:"author_id"`
	CategoryID *uint    `json:"category_id,omitempty"`
	Tags       []string `json:"tags"`
}

// CommentResponse 评论响应
type CommentResponse struct {
	ID       uint   `json:"id"`
	Text     string `json:"text"`
	Date     string `json:"date"`
	AuthorID uint   `json:"author_id"`
}

// PostDetailResponse 文章详情响应
type PostDetailResponse struct {
	PostResponse
	Comments []CommentResponse `json:"comments"`
}

// HomeResponse 首页响应
type HomeResponse struct {
	Latest      *PostResponse  `json:"latest,omitempty"`
	HeaderPosts []PostResponse `json:"header_posts"`
	Posts       []PostResponse `json:"posts"`
	Maxime      string         `json:"maxime,omitempty"`
}

// CategoryPageResponse 分类页响应
type CategoryPageResponse struct {
	Category model.Category `json:"category"`
	Posts    []PostResponse `json:"posts"`
}
