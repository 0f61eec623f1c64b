package blog

import (
	"sort"
	"strings"

	"marginalia/blog-service/internal/model/blog"
)

// 数字后缀排序的分隔符与补位标记
// 标题形如 "Also sprach Zarathustra§12"，编号宽度补齐到三位后做字典序排序
const suffixDelimiter = "§"

// SelectHeader 首页选择逻辑
// latest 取ID最大的文章（ID单调递增且不复用，等价于最近创建）
// headerList 取所有 header 标记的文章，ID倒序
func SelectHeader(posts []blog.Post) (latest *blog.Post, headerList []blog.Post) {
	for i := range posts {
		if latest == nil || posts[i].ID > latest.ID {
			latest = &posts[i]
		}
		if posts[i].Header {
			headerList = append(headerList, posts[i])
		}
	}

	sort.Slice(headerList, func(i, j int) bool {
		return headerList[i].ID > headerList[j].ID
	})

	return latest, headerList
}

// OrderTitlesNumerically 按 "标题§编号" 的数字后缀排序标题
// 做法：按后缀位数把 "§" 替换为 " 000"/" 00"/" 0" 补齐宽度，
// 字典序排序后再把补位标记替换回 "§"。
// 没有 "§" 或编号超过三位的标题会被丢弃，这是沿用的历史行为
// （超过三位的编号理应扩展补位宽度，待确认后修正）。
func OrderTitlesNumerically(titles []string) []string {
	padded := make([]string, 0, len(titles))
	for _, title := range titles {
		parts := strings.SplitN(title, suffixDelimiter, 2)
		if len(parts) != 2 {
			continue
		}
		switch len(parts[1]) {
		case 1:
			padded = append(padded, strings.ReplaceAll(title, suffixDelimiter, " 000"))
		case 2:
			padded = append(padded, strings.ReplaceAll(title, suffixDelimiter, " 00"))
		case 3:
			padded = append(padded, strings.ReplaceAll(title, suffixDelimiter, " 0"))
		}
	}

	sort.Strings(padded)

	ordered := make([]string, len(padded))
	for i, title := range padded {
		title = strings.ReplaceAll(title, " 000", suffixDelimiter)
		title = strings.ReplaceAll(title, " 00", suffixDelimiter)
		title = strings.ReplaceAll(title, " 0", suffixDelimiter)
		ordered[i] = title
	}

	return ordered
}
