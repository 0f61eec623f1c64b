package testutils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marginalia/blog-service/internal/model/blog"
	"marginalia/blog-service/internal/model/todo"
	"marginalia/blog-service/internal/model/user"
)

// CreateTestUser creates a test user with unique email
func CreateTestUser(db *gorm.DB, opts ...UserOption) *user.User {
	uniqueID := uuid.New().String()
	email := fmt.Sprintf("test_%s@example.com", uniqueID)
	name := fmt.Sprintf("test_user_%s", uniqueID)

	testUser := &user.User{
		Email:        email,
		PasswordHash: "$2a$10$test.hash.not.a.real.password.hash",
		Name:         name,
		Role:         string(user.RoleUser),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption configures test user
type UserOption func(*user.User)

// WithEmail sets the email
func WithEmail(email string) UserOption {
	return func(u *user.User) {
		u.Email = email
	}
}

// WithRole sets the role
func WithRole(role string) UserOption {
	return func(u *user.User) {
		u.Role = role
	}
}

// CreateTestCategory creates a test category
func CreateTestCategory(db *gorm.DB, opts ...CategoryOption) *blog.Category {
	uniqueID := uuid.New().String()

	testCategory := &blog.Category{
		Name:         fmt.Sprintf("test_category_%s", uniqueID),
		Description:  "Test category description",
		SortStrategy: blog.SortInsertion,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	for _, opt := range opts {
		opt(testCategory)
	}

	if err := db.Create(testCategory).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test category: %v", err))
	}

	return testCategory
}

// CategoryOption configures test category
type CategoryOption func(*blog.Category)

// WithSortStrategy sets the sort strategy
func WithSortStrategy(strategy string) CategoryOption {
	return func(c *blog.Category) {
		c.SortStrategy = strategy
	}
}

// CreateTestPost creates a test post
func CreateTestPost(db *gorm.DB, authorID uint, opts ...PostOption) *blog.Post {
	uniqueID := uuid.New().String()

	testPost := &blog.Post{
		Title:     fmt.Sprintf("Test Post %s", uniqueID),
		Subtitle:  "Test subtitle",
		Body:      "<p>Test body</p>",
		Date:      time.Now().Format("January 2, 2006"),
		AuthorID:  authorID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	for _, opt := range opts {
		opt(testPost)
	}

	if err := db.Create(testPost).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test post: %v", err))
	}

	return testPost
}

// PostOption configures test post
type PostOption func(*blog.Post)

// WithTitle sets the post title
func WithTitle(title string) PostOption {
	return func(p *blog.Post) {
		p.Title = title
	}
}

// WithHeader marks the post for the header carousel
func WithHeader(header bool) PostOption {
	return func(p *blog.Post) {
		p.Header = header
	}
}

// WithCategoryID sets the category
func WithCategoryID(categoryID uint) PostOption {
	return func(p *blog.Post) {
		p.CategoryID = &categoryID
	}
}

// CreateTestProject creates a test todo project
func CreateTestProject(db *gorm.DB, ownerID uint, opts ...ProjectOption) *todo.Project {
	uniqueID := uuid.New().String()

	testProject := &todo.Project{
		Name:        fmt.Sprintf("test_project_%s", uniqueID),
		Description: "Test project description",
		OwnerID:     ownerID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	for _, opt := range opts {
		opt(testProject)
	}

	if err := db.Create(testProject).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test project: %v", err))
	}

	return testProject
}

// ProjectOption configures test project
type ProjectOption func(*todo.Project)

// WithProjectName sets the project name
func WithProjectName(name string) ProjectOption {
	return func(p *todo.Project) {
		p.Name = name
	}
}

// CreateTestItem creates a test todo item
func CreateTestItem(db *gorm.DB, projectID uint, authorID uint, opts ...ItemOption) *todo.Item {
	uniqueID := uuid.New().String()

	testItem := &todo.Item{
		Title:     fmt.Sprintf("test_item_%s", uniqueID),
		Priority:  todo.PriorityNormal,
		Status:    0,
		Date:      time.Now().Format("January 2, 2006"),
		ProjectID: projectID,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	for _, opt := range opts {
		opt(testItem)
	}

	if err := db.Create(testItem).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test item: %v", err))
	}

	return testItem
}

// ItemOption configures test item
type ItemOption func(*todo.Item)

// WithPriority sets the item priority
func WithPriority(priority int) ItemOption {
	return func(i *todo.Item) {
		i.Priority = priority
	}
}
