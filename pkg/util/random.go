package util

import (
	"math/rand"
)

// GetRandomString 生成指定长度的随机字符串
func GetRandomString(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}

// GenerateRandomSingleNumber 生成单个随机数
// start: 随机数的最小值
// end: 随机数的最大值
// 返回值: 生成的随机数
func GenerateRandomSingleNumber(start int, end int) int {
	if end < start {
		return start
	}
	return rand.Intn(end-start) + start
}
