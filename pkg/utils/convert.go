package utils

import "slices"

// Contains 检查切片中是否包含某个元素
func Contains[T comparable](slice []T, item T) bool {
	return slices.Contains(slice, item)
}

// Remove 删除切片中所有等于 item 的元素，返回新切片
func Remove[T comparable](slice []T, item T) []T {
	out := make([]T, 0, len(slice))
	for _, v := range slice {
		if v != item {
			out = append(out, v)
		}
	}
	return out
}

// Unique 去重并保持原顺序
func Unique[T comparable](slice []T) []T {
	seen := make(map[T]struct{}, len(slice))
	out := make([]T, 0, len(slice))
	for _, v := range slice {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
