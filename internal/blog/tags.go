package blog

import "strings"

// TagTokens 把自由文本的标签输入切成去重后的标签名列表
// 纯按空白切分，不支持转义，多词标签无法表达；
// 大小写敏感，保留首次出现的顺序。空输入返回空列表。
func TagTokens(raw string) []string {
	tokens := strings.Fields(raw)

	seen := make(map[string]struct{}, len(tokens))
	names := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		names = append(names, token)
	}
	return names
}

// DiffTagSets 计算从当前标签集到目标标签集的增量
// 只返回需要新增和需要移除的名称，已有的关联保持不动，
// 因此对同一输入重复执行是幂等的
func DiffTagSets(current, desired []string) (toAdd, toRemove []string) {
	currentSet := make(map[string]struct{}, len(current))
	for _, name := range current {
		currentSet[name] = struct{}{}
	}
	desiredSet := make(map[string]struct{}, len(desired))
	for _, name := range desired {
		desiredSet[name] = struct{}{}
	}

	for _, name := range desired {
		if _, ok := currentSet[name]; !ok {
			toAdd = append(toAdd, name)
		}
	}
	for _, name := range current {
		if _, ok := desiredSet[name]; !ok {
			toRemove = append(toRemove, name)
		}
	}

	return toAdd, toRemove
}
