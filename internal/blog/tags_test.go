package blog

import (
	"reflect"
	"testing"
)

// TestTagTokens 测试标签文本切分
func TestTagTokens(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{"empty input", "", nil},
		{"whitespace only", "   \t\n  ", nil},
		{"single tag", "philosophy", []string{"philosophy"}},
		{"multiple tags", "philosophy nietzsche ethics", []string{"philosophy", "nietzsche", "ethics"}},
		{"mixed whitespace", "philosophy\tnietzsche\n ethics", []string{"philosophy", "nietzsche", "ethics"}},
		{"duplicates removed keeping first", "go go gadget go", []string{"go", "gadget"}},
		// 大小写敏感，Go 和 go 是两个标签
		{"case sensitive", "Go go", []string{"Go", "go"}},
		{"leading and trailing whitespace", "  philosophy  ", []string{"philosophy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TagTokens(tt.raw)
			if len(result) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("TagTokens(%q) = %v, want %v", tt.raw, result, tt.expected)
			}
		})
	}
}

// TestDiffTagSets 测试标签集增量计算
func TestDiffTagSets(t *testing.T) {
	tests := []struct {
		name           string
		current        []string
		desired        []string
		expectedAdd    []string
		expectedRemove []string
	}{
		{
			name:           "both empty",
			current:        nil,
			desired:        nil,
			expectedAdd:    nil,
			expectedRemove: nil,
		},
		{
			name:           "all new",
			current:        nil,
			desired:        []string{"a", "b"},
			expectedAdd:    []string{"a", "b"},
			expectedRemove: nil,
		},
		{
			name:           "all removed",
			current:        []string{"a", "b"},
			desired:        nil,
			expectedAdd:    nil,
			expectedRemove: []string{"a", "b"},
		},
		{
			// 交集保持不动
			name:           "partial overlap",
			current:        []string{"a", "b", "c"},
			desired:        []string{"b", "c", "d"},
			expectedAdd:    []string{"d"},
			expectedRemove: []string{"a"},
		},
		{
			// 目标集等于当前集时不产生任何变更，幂等
			name:           "identical sets",
			current:        []string{"a", "b"},
			desired:        []string{"a", "b"},
			expectedAdd:    nil,
			expectedRemove: nil,
		},
		{
			name:           "identical sets different order",
			current:        []string{"b", "a"},
			desired:        []string{"a", "b"},
			expectedAdd:    nil,
			expectedRemove: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toAdd, toRemove := DiffTagSets(tt.current, tt.desired)
			if !reflect.DeepEqual(toAdd, tt.expectedAdd) {
				t.Errorf("DiffTagSets(%v, %v) toAdd = %v, want %v", tt.current, tt.desired, toAdd, tt.expectedAdd)
			}
			if !reflect.DeepEqual(toRemove, tt.expectedRemove) {
				t.Errorf("DiffTagSets(%v, %v) toRemove = %v, want %v", tt.current, tt.desired, toRemove, tt.expectedRemove)
			}
		})
	}
}

// TestTagTokensThenDiffIdempotent 同一文本重复同步不产生增量
func TestTagTokensThenDiffIdempotent(t *testing.T) {
	raw := "philosophy nietzsche ethics philosophy"

	first := TagTokens(raw)
	toAdd, toRemove := DiffTagSets(first, TagTokens(raw))

	if len(toAdd) != 0 || len(toRemove) != 0 {
		t.Errorf("expected no delta when reapplying same tag text, got add=%v remove=%v", toAdd, toRemove)
	}
}
