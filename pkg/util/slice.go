package util

// InSlice determines whether an element is in a slice (generic version)
// InSlice 判断元素是否在切片中（泛型版本）
// slice: the slice // 切片
// item: the element to find // 要查找的元素
// return: bool - true if exists, false otherwise // 返回值: bool - 存在返回true，否则返回false
func InSlice[T comparable](slice []T, item T) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

// ArrayUnique removes duplicate elements from a slice
// ArrayUnique 移除切片中的重复元素
// arr: original slice // 原始切片
// return: new slice without duplicates // 返回值: 去重后的新切片
func ArrayUnique(arr []string) []string {
	result := make([]string, 0)
	m := make(map[string]bool)
	for _, v := range arr {
		if !m[v] {
			m[v] = true
			result = append(result, v)
		}
	}
	return result
}

// ArrayUniqueInt64 removes duplicate elements from an int64 slice
// ArrayUniqueInt64 移除 int64 切片中的重复元素
func ArrayUniqueInt64(arr []int64) []int64 {
	result := make([]int64, 0)
	m := make(map[int64]bool)
	for _, v := range arr {
		if !m[v] {
			m[v] = true
			result = append(result, v)
		}
	}
	return result
}
