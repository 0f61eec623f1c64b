package blog

import (
	"testing"

	model "marginalia/blog-service/internal/model/blog"
	"marginalia/blog-service/internal/testutils"
	"marginalia/blog-service/pkg/response"
)

// TestCreatePostWithTags 创建文章时落标签
func TestCreatePostWithTags(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewBlogService(db, nil, "", "")
	author := testutils.CreateTestUser(db)

	post, bizErr := service.CreatePost(CreatePostRequest{
		Title:    "Ecce Homo",
		Subtitle: "Wie man wird, was man ist",
		Body:     "<p>...</p>",
		Tags:     "philosophy nietzsche philosophy",
	}, author.ID)
	if bizErr != nil {
		t.Fatalf("create post failed: %v", bizErr.Msg)
	}

	// 重复的标签词元只落一次
	if len(post.Tags) != 2 {
		t.Fatalf("expected 2 tags, got %v", post.Tags)
	}
}

// TestUpdatePostReconcilesTags 更新文章时按增量同步标签集
func TestUpdatePostReconcilesTags(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewBlogService(db, nil, "", "")
	author := testutils.CreateTestUser(db)

	post, bizErr := service.CreatePost(CreatePostRequest{
		Title: "Morgenröte",
		Body:  "<p>...</p>",
		Tags:  "philosophy ethics",
	}, author.ID)
	if bizErr != nil {
		t.Fatalf("create post failed: %v", bizErr.Msg)
	}

	tagRepo := NewTagRepository(db)
	before, err := tagRepo.GetPostTags(post.ID)
	if err != nil {
		t.Fatalf("failed to load tags: %v", err)
	}
	var keptTagID uint
	for _, tag := range before {
		if tag.Name == "philosophy" {
			keptTagID = tag.ID
		}
	}

	tags := "philosophy aphorisms"
	updated, bizErr := service.UpdatePost(post.ID, UpdatePostRequest{Tags: &tags})
	if bizErr != nil {
		t.Fatalf("update post failed: %v", bizErr.Msg)
	}
	if len(updated.Tags) != 2 {
		t.Fatalf("expected 2 tags after update, got %v", updated.Tags)
	}

	// 保留的标签行没有被删掉重建
	after, err := tagRepo.GetPostTags(post.ID)
	if err != nil {
		t.Fatalf("failed to load tags: %v", err)
	}
	found := false
	for _, tag := range after {
		if tag.Name == "philosophy" && tag.ID == keptTagID {
			found = true
		}
		if tag.Name == "ethics" {
			t.Error("expected ethics tag to be unlinked")
		}
	}
	if !found {
		t.Error("expected philosophy tag link to survive the update unchanged")
	}
}

// TestUpdatePostWithoutTagsKeepsSet 不提交 tags 字段时标签集不动
func TestUpdatePostWithoutTagsKeepsSet(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewBlogService(db, nil, "", "")
	author := testutils.CreateTestUser(db)

	post, bizErr := service.CreatePost(CreatePostRequest{
		Title: "Der Antichrist",
		Body:  "<p>...</p>",
		Tags:  "philosophy",
	}, author.ID)
	if bizErr != nil {
		t.Fatalf("create post failed: %v", bizErr.Msg)
	}

	subtitle := "Fluch auf das Christentum"
	updated, bizErr := service.UpdatePost(post.ID, UpdatePostRequest{Subtitle: &subtitle})
	if bizErr != nil {
		t.Fatalf("update post failed: %v", bizErr.Msg)
	}
	if len(updated.Tags) != 1 || updated.Tags[0] != "philosophy" {
		t.Errorf("expected tags untouched, got %v", updated.Tags)
	}
}

// TestTagsSharedAcrossPosts 同名标签在多篇文章之间复用同一行
func TestTagsSharedAcrossPosts(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewBlogService(db, nil, "", "")
	author := testutils.CreateTestUser(db)

	for _, title := range []string{"Erste Abhandlung", "Zweite Abhandlung"} {
		if _, bizErr := service.CreatePost(CreatePostRequest{
			Title: title,
			Body:  "<p>...</p>",
			Tags:  "genealogie",
		}, author.ID); bizErr != nil {
			t.Fatalf("create post failed: %v", bizErr.Msg)
		}
	}

	count, err := NewTagRepository(db).CountTagsByName("genealogie")
	if err != nil {
		t.Fatalf("failed to count tags: %v", err)
	}
	if count != 1 {
		t.Errorf("expected a single tag row, got %d", count)
	}
}

// TestCreatePostDuplicateTitle 标题冲突被拒绝
func TestCreatePostDuplicateTitle(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewBlogService(db, nil, "", "")
	author := testutils.CreateTestUser(db)

	req := CreatePostRequest{Title: "Götzen-Dämmerung", Body: "<p>...</p>"}
	if _, bizErr := service.CreatePost(req, author.ID); bizErr != nil {
		t.Fatalf("first create failed: %v", bizErr.Msg)
	}

	_, bizErr := service.CreatePost(req, author.ID)
	if bizErr == nil || bizErr.Code != response.Conflict {
		t.Errorf("expected title conflict, got %v", bizErr)
	}
}

// TestGetPostNotFound 缺失的文章返回结构化的未找到错误
func TestGetPostNotFound(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewBlogService(db, nil, "", "")

	_, bizErr := service.GetPost(99999999)
	if bizErr == nil || bizErr.Code != response.NotFound {
		t.Errorf("expected not found, got %v", bizErr)
	}
}

// TestCategoryPageNumericSuffixOrdering 数字后缀策略的分类按编号排序展示
func TestCategoryPageNumericSuffixOrdering(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewBlogService(db, nil, "", "")
	author := testutils.CreateTestUser(db)
	category := testutils.CreateTestCategory(db, testutils.WithSortStrategy(model.SortNumericSuffix))

	for _, title := range []string{"Zarathustra§10", "Zarathustra§2", "Zarathustra§1"} {
		testutils.CreateTestPost(db, author.ID,
			testutils.WithTitle(title),
			testutils.WithCategoryID(category.ID),
		)
	}

	page, bizErr := service.CategoryPage(category.ID)
	if bizErr != nil {
		t.Fatalf("category page failed: %v", bizErr.Msg)
	}

	expected := []string{"Zarathustra§1", "Zarathustra§2", "Zarathustra§10"}
	if len(page.Posts) != len(expected) {
		t.Fatalf("expected %d posts, got %d", len(expected), len(page.Posts))
	}
	for i, title := range expected {
		if page.Posts[i].Title != title {
			t.Errorf("position %d: expected %q, got %q", i, title, page.Posts[i].Title)
		}
	}
}

// TestCategoryPageInsertionOrdering 默认策略按ID倒序展示
func TestCategoryPageInsertionOrdering(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewBlogService(db, nil, "", "")
	author := testutils.CreateTestUser(db)
	category := testutils.CreateTestCategory(db)

	first := testutils.CreateTestPost(db, author.ID, testutils.WithCategoryID(category.ID))
	second := testutils.CreateTestPost(db, author.ID, testutils.WithCategoryID(category.ID))

	page, bizErr := service.CategoryPage(category.ID)
	if bizErr != nil {
		t.Fatalf("category page failed: %v", bizErr.Msg)
	}
	if len(page.Posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(page.Posts))
	}
	if page.Posts[0].ID != second.ID || page.Posts[1].ID != first.ID {
		t.Errorf("expected newest first, got %d then %d", page.Posts[0].ID, page.Posts[1].ID)
	}
}

// TestHomepageSelection 首页最新文章与头图轮播
func TestHomepageSelection(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewBlogService(db, nil, "", "")
	author := testutils.CreateTestUser(db)

	testutils.CreateTestPost(db, author.ID)
	headerPost := testutils.CreateTestPost(db, author.ID, testutils.WithHeader(true))
	latest := testutils.CreateTestPost(db, author.ID)

	home, bizErr := service.Homepage()
	if bizErr != nil {
		t.Fatalf("homepage failed: %v", bizErr.Msg)
	}

	if home.Latest == nil || home.Latest.ID != latest.ID {
		t.Errorf("expected latest post %d, got %v", latest.ID, home.Latest)
	}
	if len(home.HeaderPosts) != 1 || home.HeaderPosts[0].ID != headerPost.ID {
		t.Errorf("expected header posts [%d], got %v", headerPost.ID, home.HeaderPosts)
	}
	if len(home.Posts) != 3 {
		t.Errorf("expected 3 posts, got %d", len(home.Posts))
	}
}

// TestDeleteCategoryDetachesPosts 删除分类后文章的分类引用置空
func TestDeleteCategoryDetachesPosts(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewBlogService(db, nil, "", "")
	author := testutils.CreateTestUser(db)
	category := testutils.CreateTestCategory(db)
	post := testutils.CreateTestPost(db, author.ID, testutils.WithCategoryID(category.ID))

	if bizErr := service.DeleteCategory(category.ID); bizErr != nil {
		t.Fatalf("delete category failed: %v", bizErr.Msg)
	}

	refreshed, err := NewPostRepository(db).GetByID(post.ID)
	if err != nil {
		t.Fatalf("failed to reload post: %v", err)
	}
	if refreshed.CategoryID != nil {
		t.Errorf("expected category reference cleared, got %v", *refreshed.CategoryID)
	}
}
