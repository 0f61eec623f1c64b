package blog

import (
	"reflect"
	"testing"

	"marginalia/blog-service/internal/model/blog"
)

// TestOrderTitlesNumerically 测试标题数字后缀排序
func TestOrderTitlesNumerically(t *testing.T) {
	tests := []struct {
		name     string
		titles   []string
		expected []string
	}{
		{
			name:     "empty input",
			titles:   []string{},
			expected: []string{},
		},
		{
			name:     "single title",
			titles:   []string{"Zarathustra§1"},
			expected: []string{"Zarathustra§1"},
		},
		{
			name:     "single digit suffixes",
			titles:   []string{"Zarathustra§3", "Zarathustra§1", "Zarathustra§2"},
			expected: []string{"Zarathustra§1", "Zarathustra§2", "Zarathustra§3"},
		},
		{
			// 纯字典序会把 10 排在 2 前面，补位后按数值排
			name:     "mixed width suffixes",
			titles:   []string{"Zarathustra§10", "Zarathustra§2", "Zarathustra§1"},
			expected: []string{"Zarathustra§1", "Zarathustra§2", "Zarathustra§10"},
		},
		{
			name:     "three digit suffixes",
			titles:   []string{"Zarathustra§100", "Zarathustra§99", "Zarathustra§9"},
			expected: []string{"Zarathustra§9", "Zarathustra§99", "Zarathustra§100"},
		},
		{
			// 没有分隔符的标题被丢弃
			name:     "titles without delimiter dropped",
			titles:   []string{"Zarathustra§2", "Vorwort", "Zarathustra§1"},
			expected: []string{"Zarathustra§1", "Zarathustra§2"},
		},
		{
			// 超过三位的编号被丢弃，历史行为
			name:     "four digit suffixes dropped",
			titles:   []string{"Zarathustra§1000", "Zarathustra§1"},
			expected: []string{"Zarathustra§1"},
		},
		{
			name:     "different base titles sort together",
			titles:   []string{"Morgenröte§2", "Antichrist§1", "Morgenröte§1"},
			expected: []string{"Antichrist§1", "Morgenröte§1", "Morgenröte§2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := OrderTitlesNumerically(tt.titles)
			if len(result) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("OrderTitlesNumerically(%v) = %v, want %v", tt.titles, result, tt.expected)
			}
		})
	}
}

// TestOrderTitlesNumericallyIdempotent 重复排序结果不变
func TestOrderTitlesNumericallyIdempotent(t *testing.T) {
	titles := []string{"Zarathustra§10", "Zarathustra§2", "Zarathustra§100", "Zarathustra§1"}

	once := OrderTitlesNumerically(titles)
	twice := OrderTitlesNumerically(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("expected idempotent ordering, first %v, second %v", once, twice)
	}
}

// TestOrderTitlesNumericallyPreservesTitleText 排序不改动标题文本本身
func TestOrderTitlesNumericallyPreservesTitleText(t *testing.T) {
	titles := []string{"Zur Genealogie der Moral§12", "Zur Genealogie der Moral§3"}

	result := OrderTitlesNumerically(titles)

	expected := []string{"Zur Genealogie der Moral§3", "Zur Genealogie der Moral§12"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("OrderTitlesNumerically(%v) = %v, want %v", titles, result, expected)
	}
}

// TestSelectHeader 测试首页最新文章与头图轮播选择
func TestSelectHeader(t *testing.T) {
	post := func(id uint, header bool) blog.Post {
		return blog.Post{ID: id, Header: header}
	}

	t.Run("empty input", func(t *testing.T) {
		latest, headerList := SelectHeader(nil)
		if latest != nil {
			t.Errorf("expected nil latest for empty input, got %v", latest)
		}
		if len(headerList) != 0 {
			t.Errorf("expected empty header list, got %v", headerList)
		}
	})

	t.Run("latest is max id regardless of order", func(t *testing.T) {
		posts := []blog.Post{post(3, false), post(7, false), post(5, false)}
		latest, _ := SelectHeader(posts)
		if latest == nil || latest.ID != 7 {
			t.Errorf("expected latest ID 7, got %v", latest)
		}
	})

	t.Run("header list sorted by id desc", func(t *testing.T) {
		posts := []blog.Post{post(1, true), post(4, false), post(3, true), post(2, true)}
		_, headerList := SelectHeader(posts)

		ids := make([]uint, 0, len(headerList))
		for _, p := range headerList {
			ids = append(ids, p.ID)
		}
		expected := []uint{3, 2, 1}
		if !reflect.DeepEqual(ids, expected) {
			t.Errorf("expected header ids %v, got %v", expected, ids)
		}
	})

	t.Run("latest may also be a header post", func(t *testing.T) {
		posts := []blog.Post{post(1, false), post(2, true)}
		latest, headerList := SelectHeader(posts)
		if latest == nil || latest.ID != 2 {
			t.Errorf("expected latest ID 2, got %v", latest)
		}
		if len(headerList) != 1 || headerList[0].ID != 2 {
			t.Errorf("expected header list [2], got %v", headerList)
		}
	})

	t.Run("no header posts", func(t *testing.T) {
		posts := []blog.Post{post(1, false), post(2, false)}
		latest, headerList := SelectHeader(posts)
		if latest == nil || latest.ID != 2 {
			t.Errorf("expected latest ID 2, got %v", latest)
		}
		if len(headerList) != 0 {
			t.Errorf("expected empty header list, got %v", headerList)
		}
	})
}
