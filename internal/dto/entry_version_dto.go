package dto

import (
	"github.com/inkwellapp/journal-service/pkg/timex"
)

// EntryVersionDTO Entry version data transfer object
// EntryVersionDTO 条目版本数据传输对象
type EntryVersionDTO struct {
	ID        int64      `json:"id" form:"id"`
	EntryID   int64      `json:"entryId" form:"entryId"`
	Sequence  int64      `json:"sequence" form:"sequence"`
	Title     string     `json:"title" form:"title"`
	Content   string     `json:"content" form:"content"`
	WordCount int        `json:"wordCount" form:"wordCount"`
	CharCount int        `json:"charCount" form:"charCount"`
	CreatedAt timex.Time `json:"createdAt" form:"createdAt"`
}

// EntryVersionNoContentDTO Entry version DTO without content, used in listings
// EntryVersionNoContentDTO 不包含内容的版本 DTO，用于列表
type EntryVersionNoContentDTO struct {
	ID        int64      `json:"id" form:"id"`
	EntryID   int64      `json:"entryId" form:"entryId"`
	Sequence  int64      `json:"sequence" form:"sequence"`
	Title     string     `json:"title" form:"title"`
	Preview   string     `json:"preview" form:"preview"` // 正文纯文本前 100 个字符
	Age       string     `json:"age" form:"age"`         // 相对时间，如 "3 days ago"
	WordCount int        `json:"wordCount" form:"wordCount"`
	CharCount int        `json:"charCount" form:"charCount"`
	CreatedAt timex.Time `json:"createdAt" form:"createdAt"`
}

// EntryVersionListRequest Parameters for listing entry versions
// 条目版本列表请求参数
type EntryVersionListRequest struct {
	EntryID int64 `json:"entryId" form:"entryId" binding:"required"`
}

// EntryVersionGetRequest Parameters for fetching a single version
// 获取单个版本的参数
type EntryVersionGetRequest struct {
	EntryID  int64 `json:"entryId" form:"entryId" binding:"required"`
	Sequence int64 `json:"sequence" form:"sequence" binding:"required"`
}

// EntryVersionDiffRequest Parameters for diffing two versions
// 对比两个版本的参数
type EntryVersionDiffRequest struct {
	EntryID      int64 `json:"entryId" form:"entryId" binding:"required"`
	FromSequence int64 `json:"fromSequence" form:"fromSequence" binding:"required"`
	ToSequence   int64 `json:"toSequence" form:"toSequence"` // 0 表示与当前内容对比
}

// DiffSegment A single diff fragment between two version contents
// 两个版本内容之间的单个差异片段
type DiffSegment struct {
	Op   string `json:"op" form:"op"` // equal / insert / delete
	Text string `json:"text" form:"text"`
}

// EntryVersionDiffDTO Diff result between two versions
// 两个版本之间的差异结果
type EntryVersionDiffDTO struct {
	EntryID      int64          `json:"entryId" form:"entryId"`
	FromSequence int64          `json:"fromSequence" form:"fromSequence"`
	ToSequence   int64          `json:"toSequence" form:"toSequence"`
	Segments     []*DiffSegment `json:"segments" form:"segments"`
}
