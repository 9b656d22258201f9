// Package htmltext renders HTML content down to plain text and computes
// the word and character statistics shown alongside journal entries.
// Package htmltext 将 HTML 内容渲染为纯文本，并计算日志条目的字数与字符统计
package htmltext

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Block-level tags are turned into spaces before stripping so that
// adjacent blocks do not glue their words together.
// 块级标签在剥离前先替换为空格，避免相邻块的单词粘连
var (
	blockTagRe   = regexp.MustCompile(`(?i)</?(p|div|br|h[1-6]|li|ul|ol|blockquote|tr|td|th|table|pre|hr|section|article)[^>]*>`)
	anyTagRe     = regexp.MustCompile(`<[^>]*>`)
	spaceRe      = regexp.MustCompile(`\s+`)
	asciiPunctRe = regexp.MustCompile("[!-/:-@\\[-`{-~]+")
)

// Render strips markup from HTML content and returns normalized plain text.
// Entities are unescaped and runs of whitespace collapse to single spaces.
// Render 剥离 HTML 标记并返回规范化的纯文本。
// 实体会被反转义，连续空白折叠为单个空格。
func Render(content string) string {
	if content == "" {
		return ""
	}
	text := blockTagRe.ReplaceAllString(content, " ")
	text = anyTagRe.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	text = spaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// CharCount returns the number of runes in the rendered plain text.
// CharCount 返回渲染后纯文本的 rune 数量
func CharCount(content string) int {
	return utf8.RuneCountInString(Render(content))
}

// WordCount returns the number of word tokens in the rendered plain text.
// A token that is only ASCII punctuation does not count as a word.
// WordCount 返回渲染后纯文本的单词数。
// 仅由 ASCII 标点组成的片段不计入单词。
func WordCount(content string) int {
	text := Render(content)
	if text == "" {
		return 0
	}
	count := 0
	for _, token := range strings.Fields(text) {
		if asciiPunctRe.ReplaceAllString(token, "") != "" {
			count++
		}
	}
	return count
}

// Counts returns word and character counts in one pass over the content.
// Counts 一次性返回字数与字符数
func Counts(content string) (words int, chars int) {
	text := Render(content)
	chars = utf8.RuneCountInString(text)
	if text == "" {
		return 0, 0
	}
	for _, token := range strings.Fields(text) {
		if asciiPunctRe.ReplaceAllString(token, "") != "" {
			words++
		}
	}
	return words, chars
}
