package blog

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	model "marginalia/blog-service/internal/model/blog"
	"marginalia/blog-service/pkg/email"
	"marginalia/blog-service/pkg/response"
)

// 展示用日期格式，沿用原数据里 "November 9, 2022" 的样式
const displayDateLayout = "January 2, 2006"

type BlogService struct {
	db           *gorm.DB
	postRepo     *PostRepository
	tagRepo      *TagRepository
	categoryRepo *CategoryRepository
	commentRepo  *CommentRepository

	// 评论通知邮件，可为 nil（未配置邮件服务时跳过）
	mailer     *email.Client
	mailFrom   string
	adminEmail string
}

func NewBlogService(db *gorm.DB, mailer *email.Client, mailFrom, adminEmail string) *BlogService {
	return &BlogService{
		db:           db,
		postRepo:     NewPostRepository(db),
		tagRepo:      NewTagRepository(db),
		categoryRepo: NewCategoryRepository(db),
		commentRepo:  NewCommentRepository(db),
		mailer:       mailer,
		mailFrom:     mailFrom,
		adminEmail:   adminEmail,
	}
}

// ===== 文章 =====

// CreatePost 创建文章并落标签
// 标签创建与文章写入在同一事务内提交
func (s *BlogService) CreatePost(req CreatePostRequest, authorID uint) (*PostResponse, *response.BusinessError) {
	exists, err := s.postRepo.TitleExists(req.Title, 0)
	if err != nil {
		return nil, dbError(err)
	}
	if exists {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("文章标题已存在"),
		)
	}

	post := &model.Post{
		Title:      req.Title,
		Subtitle:   req.Subtitle,
		Body:       req.Body,
		ImgURL:     req.ImgURL,
		Date:       time.Now().Format(displayDateLayout),
		Header:     req.Header,
		AuthorID:   authorID,
		CategoryID: req.CategoryID,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := NewPostRepository(tx).Create(post); err != nil {
			return err
		}
		return reconcileTags(tx, post.ID, req.Tags)
	})
	if err != nil {
		return nil, dbError(err)
	}

	return s.postResponse(post), nil
}

// UpdatePost 更新文章并同步标签集
func (s *BlogService) UpdatePost(postID uint, req UpdatePostRequest) (*PostResponse, *response.BusinessError) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, notFoundOrDBError(err, "文章不存在")
	}

	if req.Title != nil && *req.Title != post.Title {
		exists, err := s.postRepo.TitleExists(*req.Title, post.ID)
		if err != nil {
			return nil, dbError(err)
		}
		if exists {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.Conflict),
				response.WithErrorMessage("文章标题已存在"),
			)
		}
		post.Title = *req.Title
	}
	if req.Subtitle != nil {
		post.Subtitle = *req.Subtitle
	}
	if req.Body != nil {
		post.Body = *req.Body
	}
	if req.ImgURL != nil {
		post.ImgURL = *req.ImgURL
	}
	if req.CategoryID != nil {
		post.CategoryID = req.CategoryID
	}
	if req.Header != nil {
		post.Header = *req.Header
	}
	post.UpdatedAt = time.Now()

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := NewPostRepository(tx).Update(post); err != nil {
			return err
		}
		// 未提交 tags 字段时保持原标签集不动
		if req.Tags != nil {
			return reconcileTags(tx, post.ID, *req.Tags)
		}
		return nil
	})
	if err != nil {
		return nil, dbError(err)
	}

	return s.postResponse(post), nil
}

// DeletePost 删除文章及其评论、标签关联
// 标签本身保留：孤儿标签无害且可被后续文章复用
func (s *BlogService) DeletePost(postID uint) *response.BusinessError {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return notFoundOrDBError(err, "文章不存在")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := NewCommentRepository(tx).DeleteByPostID(postID); err != nil {
			return err
		}
		if err := NewTagRepository(tx).RemovePostTags(postID); err != nil {
			return err
		}
		return NewPostRepository(tx).Delete(postID)
	})
	if err != nil {
		return dbError(err)
	}
	return nil
}

// GetPost 文章详情（含标签和评论）
func (s *BlogService) GetPost(postID uint) (*PostDetailResponse, *response.BusinessError) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, notFoundOrDBError(err, "文章不存在")
	}

	comments, err := s.commentRepo.ListByPostID(postID)
	if err != nil {
		return nil, dbError(err)
	}

	detail := &PostDetailResponse{
		PostResponse: *s.postResponse(post),
		Comments:     make([]CommentResponse, 0, len(comments)),
	}
	for _, comment := range comments {
		detail.Comments = append(detail.Comments, CommentResponse{
			ID:       comment.ID,
			Text:     comment.Text,
			Date:     comment.Date,
			AuthorID: comment.AuthorID,
		})
	}

	return detail, nil
}

// Homepage 首页数据：最新文章 + 头图轮播 + 全部文章
func (s *BlogService) Homepage() (*HomeResponse, *response.BusinessError) {
	posts, err := s.postRepo.ListAll()
	if err != nil {
		return nil, dbError(err)
	}

	latest, headerList := SelectHeader(posts)

	resp := &HomeResponse{
		HeaderPosts: make([]PostResponse, 0, len(headerList)),
		Posts:       make([]PostResponse, 0, len(posts)),
	}
	if latest != nil {
		resp.Latest = s.postResponse(latest)
	}
	for i := range headerList {
		resp.HeaderPosts = append(resp.HeaderPosts, *s.postSummary(&headerList[i]))
	}
	for i := range posts {
		resp.Posts = append(resp.Posts, *s.postSummary(&posts[i]))
	}

	return resp, nil
}

// CategoryPage 分类页数据
// 排序策略为 numeric-suffix 的分类按标题数字后缀重排，
// 排序产出标题列表后按标题回查文章（标题有唯一约束）
func (s *BlogService) CategoryPage(categoryID uint) (*CategoryPageResponse, *response.BusinessError) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, notFoundOrDBError(err, "分类不存在")
	}

	posts, err := s.postRepo.ListByCategoryID(categoryID)
	if err != nil {
		return nil, dbError(err)
	}

	if category.SortStrategy == model.SortNumericSuffix {
		titles := make([]string, 0, len(posts))
		for i := range posts {
			titles = append(titles, posts[i].Title)
		}

		ordered := make([]model.Post, 0, len(posts))
		for _, title := range OrderTitlesNumerically(titles) {
			post, err := s.postRepo.GetByTitle(title)
			if err != nil {
				// 排序产出的标题必然来自上面的查询结果
				continue
			}
			ordered = append(ordered, *post)
		}
		posts = ordered
	}

	resp := &CategoryPageResponse{
		Category: *category,
		Posts:    make([]PostResponse, 0, len(posts)),
	}
	for i := range posts {
		resp.Posts = append(resp.Posts, *s.postSummary(&posts[i]))
	}

	return resp, nil
}

// TagPage 指定标签下的文章
func (s *BlogService) TagPage(tagID uint) ([]PostResponse, *response.BusinessError) {
	if _, err := s.tagRepo.GetByID(tagID); err != nil {
		return nil, notFoundOrDBError(err, "标签不存在")
	}

	posts, err := s.postRepo.ListByTagID(tagID)
	if err != nil {
		return nil, dbError(err)
	}

	result := make([]PostResponse, 0, len(posts))
	for i := range posts {
		result = append(result, *s.postSummary(&posts[i]))
	}
	return result, nil
}

// ===== 分类 =====

func (s *BlogService) ListCategories() ([]model.Category, *response.BusinessError) {
	categories, err := s.categoryRepo.ListAll()
	if err != nil {
		return nil, dbError(err)
	}
	return categories, nil
}

func (s *BlogService) CreateCategory(req CreateCategoryRequest) (*model.Category, *response.BusinessError) {
	strategy := req.SortStrategy
	if strategy == "" {
		strategy = model.SortInsertion
	}

	category := &model.Category{
		Name:         req.Name,
		Description:  req.Description,
		ImgURL:       req.ImgURL,
		SortStrategy: strategy,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, dbError(err)
	}
	return category, nil
}

func (s *BlogService) UpdateCategory(categoryID uint, req UpdateCategoryRequest) (*model.Category, *response.BusinessError) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, notFoundOrDBError(err, "分类不存在")
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.ImgURL != nil {
		category.ImgURL = *req.ImgURL
	}
	if req.SortStrategy != nil {
		category.SortStrategy = *req.SortStrategy
	}
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, dbError(err)
	}
	return category, nil
}

func (s *BlogService) DeleteCategory(categoryID uint) *response.BusinessError {
	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		return notFoundOrDBError(err, "分类不存在")
	}
	if err := s.categoryRepo.Delete(categoryID); err != nil {
		return dbError(err)
	}
	return nil
}

// ===== 评论 =====

// CreateComment 发表评论，并异步给管理员发通知邮件
// 邮件发送不在请求路径上：失败只记日志，不影响评论结果
func (s *BlogService) CreateComment(postID uint, authorID uint, authorName string, req CreateCommentRequest) (*CommentResponse, *response.BusinessError) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, notFoundOrDBError(err, "文章不存在")
	}

	comment := &model.Comment{
		Text:      req.Text,
		Date:      time.Now().Format(displayDateLayout),
		AuthorID:  authorID,
		PostID:    post.ID,
		CreatedAt: time.Now(),
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, dbError(err)
	}

	s.notifyComment(post.Title, authorName, comment.Text)

	return &CommentResponse{
		ID:       comment.ID,
		Text:     comment.Text,
		Date:     comment.Date,
		AuthorID: comment.AuthorID,
	}, nil
}

func (s *BlogService) notifyComment(postTitle, commenterName, text string) {
	if s.mailer == nil || s.adminEmail == "" {
		return
	}

	go func() {
		err := s.mailer.SendCommentNotification(s.mailFrom, s.adminEmail, email.CommentNotificationData{
			CommenterName: commenterName,
			PostTitle:     postTitle,
			CommentText:   text,
		})
		if err != nil {
			log.Warn().Err(err).Str("post", postTitle).Msg("评论通知邮件发送失败")
		}
	}()
}

// ===== 标签同步 =====

// reconcileTags 把文章的标签集同步到 rawTagText 描述的目标集
// 只应用增量：新增缺失的关联，移除多余的关联，已有关联不动。
// 缺失的标签行通过 FindOrCreateTag 复用或新建（精确、大小写敏感匹配）。
// 必须运行在与文章写入相同的事务中。
func reconcileTags(tx *gorm.DB, postID uint, rawTagText string) error {
	tagRepo := NewTagRepository(tx)

	desired := TagTokens(rawTagText)

	currentTags, err := tagRepo.GetPostTags(postID)
	if err != nil {
		return err
	}
	current := make([]string, 0, len(currentTags))
	currentByName := make(map[string]uint, len(currentTags))
	for _, tag := range currentTags {
		current = append(current, tag.Name)
		currentByName[tag.Name] = tag.ID
	}

	toAdd, toRemove := DiffTagSets(current, desired)

	for _, name := range toAdd {
		tag, err := tagRepo.FindOrCreateTag(name)
		if err != nil {
			return err
		}
		if err := tagRepo.AddPostTag(postID, tag.ID); err != nil {
			return err
		}
	}

	for _, name := range toRemove {
		if err := tagRepo.RemovePostTag(postID, currentByName[name]); err != nil {
			return err
		}
	}

	return nil
}

// ===== 辅助 =====

func (s *BlogService) postResponse(post *model.Post) *PostResponse {
	resp := s.postSummary(post)
	resp.Body = post.Body
	return resp
}

// postSummary 列表场景的文章视图，不带正文
func (s *BlogService) postSummary(post *model.Post) *PostResponse {
	tags, err := s.tagRepo.GetPostTags(post.ID)
	tagNames := make([]string, 0, len(tags))
	if err == nil {
		for _, tag := range tags {
			tagNames = append(tagNames, tag.Name)
		}
	}

	return &PostResponse{
		ID:         post.ID,
		Title:      post.Title,
		Subtitle:   post.Subtitle,
		ImgURL:     post.ImgURL,
		Date:       post.Date,
		Header:     post.Header,
		AuthorID:   post.AuthorID,
		CategoryID: post.CategoryID,
		Tags:       tagNames,
	}
}

func dbError(err error) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Fail),
		response.WithErrorMessage("数据库操作失败"),
		response.WithError(err),
	)
}

func notFoundOrDBError(err error, msg string) *response.BusinessError {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage(msg),
		)
	}
	return dbError(err)
}
