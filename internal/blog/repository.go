package blog

import (
	"time"

	"gorm.io/gorm"

	"marginalia/blog-service/internal/model/blog"
)

// PostRepository 文章仓储层
type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// ===== Post 基础操作 =====

func (r *PostRepository) GetByID(id uint) (*blog.Post, error) {
	var post blog.Post
	err := r.db.First(&post, id).Error
	return &post, err
}

func (r *PostRepository) GetByTitle(title string) (*blog.Post, error) {
	var post blog.Post
	err := r.db.Where("title = ?", title).First(&post).Error
	return &post, err
}

func (r *PostRepository) Create(post *blog.Post) error {
	return r.db.Create(post).Error
}

func (r *PostRepository) Update(post *blog.Post) error {
	return r.db.Save(post).Error
}

func (r *PostRepository) Delete(id uint) error {
	return r.db.Delete(&blog.Post{}, id).Error
}

// ListAll 获取全部文章，ID倒序（最新在前）
func (r *PostRepository) ListAll() ([]blog.Post, error) {
	var posts []blog.Post
	err := r.db.Order("id DESC").Find(&posts).Error
	return posts, err
}

// ListByCategoryID 获取分类下的文章，ID倒序
func (r *PostRepository) ListByCategoryID(categoryID uint) ([]blog.Post, error) {
	var posts []blog.Post
	err := r.db.Where("category_id = ?", categoryID).Order("id DESC").Find(&posts).Error
	return posts, err
}

// ListByTagID 获取带指定标签的文章，ID倒序
func (r *PostRepository) ListByTagID(tagID uint) ([]blog.Post, error) {
	var posts []blog.Post
	err := r.db.
		Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Where("post_tags.tag_id = ?", tagID).
		Order("posts.id DESC").
		Find(&posts).Error
	return posts, err
}

// TitleExists 检查标题是否已被其他文章占用
func (r *PostRepository) TitleExists(title string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&blog.Post{}).
		Where("title = ? AND id != ?", title, excludeID).
		Count(&count).Error
	return count > 0, err
}

// TagRepository 标签仓储层
type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// FindOrCreateTag 查找或创建标签
// 标签名有唯一约束，并发下重复创建会落到唯一索引上，此时重查一次
func (r *TagRepository) FindOrCreateTag(name string) (*blog.Tag, error) {
	var tag blog.Tag

	// 先尝试查找
	err := r.db.Where("name = ?", name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}

	// 如果不存在，创建新标签
	if err == gorm.ErrRecordNotFound {
		tag = blog.Tag{
			Name:      name,
			CreatedAt: time.Now(),
		}
		if createErr := r.db.Create(&tag).Error; createErr != nil {
			// 并发写入撞上唯一约束，重查已有行
			if findErr := r.db.Where("name = ?", name).First(&tag).Error; findErr == nil {
				return &tag, nil
			}
			return nil, createErr
		}
		return &tag, nil
	}

	return nil, err
}

func (r *TagRepository) GetByID(id uint) (*blog.Tag, error) {
	var tag blog.Tag
	err := r.db.First(&tag, id).Error
	return &tag, err
}

// AddPostTag 添加文章标签关联
func (r *TagRepository) AddPostTag(postID uint, tagID uint) error {
	postTag := &blog.PostTag{
		PostID:    postID,
		TagID:     tagID,
		CreatedAt: time.Now(),
	}
	return r.db.Create(postTag).Error
}

// RemovePostTag 移除文章的单个标签关联
func (r *TagRepository) RemovePostTag(postID uint, tagID uint) error {
	return r.db.Where("post_id = ? AND tag_id = ?", postID, tagID).
		Delete(&blog.PostTag{}).Error
}

// RemovePostTags 移除文章的所有标签关联
func (r *TagRepository) RemovePostTags(postID uint) error {
	return r.db.Where("post_id = ?", postID).Delete(&blog.PostTag{}).Error
}

// GetPostTags 获取文章的所有标签
func (r *TagRepository) GetPostTags(postID uint) ([]blog.Tag, error) {
	var tags []blog.Tag
	err := r.db.
		Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
		Where("post_tags.post_id = ?", postID).
		Find(&tags).Error
	return tags, err
}

// CountTagsByName 统计同名标签行数（测试用）
func (r *TagRepository) CountTagsByName(name string) (int64, error) {
	var count int64
	err := r.db.Model(&blog.Tag{}).Where("name = ?", name).Count(&count).Error
	return count, err
}

// CategoryRepository 分类仓储层
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) GetByID(id uint) (*blog.Category, error) {
	var category blog.Category
	err := r.db.First(&category, id).Error
	return &category, err
}

func (r *CategoryRepository) Create(category *blog.Category) error {
	return r.db.Create(category).Error
}

func (r *CategoryRepository) Update(category *blog.Category) error {
	return r.db.Save(category).Error
}

// Delete 删除分类，同时把引用该分类的文章置空
// 旧版直接删除会留下悬空的 category_id
func (r *CategoryRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&blog.Post{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&blog.Category{}, id).Error
	})
}

func (r *CategoryRepository) ListAll() ([]blog.Category, error) {
	var categories []blog.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

// CommentRepository 评论仓储层
type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *blog.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepository) Delete(id uint) error {
	return r.db.Delete(&blog.Comment{}, id).Error
}

func (r *CommentRepository) GetByID(id uint) (*blog.Comment, error) {
	var comment blog.Comment
	err := r.db.First(&comment, id).Error
	return &comment, err
}

// ListByPostID 获取文章下的评论，按创建顺序
func (r *CommentRepository) ListByPostID(postID uint) ([]blog.Comment, error) {
	var comments []blog.Comment
	err := r.db.Where("post_id = ?", postID).Order("id ASC").Find(&comments).Error
	return comments, err
}

// DeleteByPostID 删除文章下的所有评论
func (r *CommentRepository) DeleteByPostID(postID uint) error {
	return r.db.Where("post_id = ?", postID).Delete(&blog.Comment{}).Error
}
