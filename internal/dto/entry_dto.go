// Package dto Defines data transfer objects (request parameters and response structs)
// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import (
	"github.com/inkwellapp/journal-service/pkg/timex"
)

// EntryDTO Entry data transfer object
// EntryDTO 条目数据传输对象
type EntryDTO struct {
	ID             int64      `json:"id" form:"id"`
	NotebookID     int64      `json:"notebookId" form:"notebookId"`
	NotebookName   string     `json:"notebookName" form:"notebookName"`
	Title          string     `json:"title" form:"title"`
	Content        string     `json:"content" form:"content"`
	EntryDate      timex.Time `json:"entryDate" form:"entryDate"`
	State          string     `json:"state" form:"state"`
	Mood           string     `json:"mood" form:"mood"`
	MoodLabel      string     `json:"moodLabel" form:"moodLabel"`
	IsFavorite     bool       `json:"isFavorite" form:"isFavorite"`
	WordCount      int        `json:"wordCount" form:"wordCount"`
	CharCount      int        `json:"charCount" form:"charCount"`
	Tags           []*TagDTO  `json:"tags" form:"tags"`
	CurrentVersion int64      `json:"currentVersion" form:"currentVersion"`
	VersionCount   int64      `json:"versionCount" form:"versionCount"`
	LastEditedAt   timex.Time `json:"lastEditedAt" form:"lastEditedAt"`
	CreatedAt      timex.Time `json:"createdAt" form:"createdAt"`
	UpdatedAt      timex.Time `json:"updatedAt" form:"updatedAt"`
}

// EntryNoContentDTO Entry DTO without content, used in listings
// EntryNoContentDTO 不包含内容的条目 DTO，用于列表
type EntryNoContentDTO struct {
	ID           int64      `json:"id" form:"id"`
	NotebookID   int64      `json:"notebookId" form:"notebookId"`
	NotebookName string     `json:"notebookName" form:"notebookName"`
	Title        string     `json:"title" form:"title"`
	EntryDate    timex.Time `json:"entryDate" form:"entryDate"`
	State        string     `json:"state" form:"state"`
	Mood         string     `json:"mood" form:"mood"`
	MoodLabel    string     `json:"moodLabel" form:"moodLabel"`
	IsFavorite   bool       `json:"isFavorite" form:"isFavorite"`
	WordCount    int        `json:"wordCount" form:"wordCount"`
	CharCount    int        `json:"charCount" form:"charCount"`
	Tags         []*TagDTO  `json:"tags" form:"tags"`
	LastEditedAt timex.Time `json:"lastEditedAt" form:"lastEditedAt"`
}

// EntryCreateRequest Request parameters for creating an entry
// 用于创建条目的请求参数
type EntryCreateRequest struct {
	NotebookID int64   `json:"notebookId" form:"notebookId"` // 为 0 时由上层落入默认笔记本
	Title      string  `json:"title" form:"title" binding:"required,min=2"`
	Content    string  `json:"content" form:"content"`
	EntryDate  string  `json:"entryDate" form:"entryDate"`
	Mood       string  `json:"mood" form:"mood"`
	TagIDs     []int64 `json:"tagIds" form:"tagIds"`
	TagNames   []string `json:"tagNames" form:"tagNames"`
}

// EntryUpdateRequest Request parameters for updating an entry
// 用于更新条目的请求参数
type EntryUpdateRequest struct {
	ID         int64    `json:"id" form:"id" binding:"required"`
	NotebookID int64    `json:"notebookId" form:"notebookId"`
	Title      string   `json:"title" form:"title" binding:"omitempty,min=2"`
	Content    *string  `json:"content" form:"content"`
	EntryDate  string   `json:"entryDate" form:"entryDate"`
	Mood       *string  `json:"mood" form:"mood"`
	TagIDs     []int64  `json:"tagIds" form:"tagIds"`
	TagNames   []string `json:"tagNames" form:"tagNames"`
}

// EntryGetRequest Parameters for fetching a single entry
// 获取单个条目的参数
type EntryGetRequest struct {
	ID int64 `json:"id" form:"id" binding:"required"`
}

// EntryListRequest Parameters for listing entries
// 条目列表请求参数
type EntryListRequest struct {
	NotebookID      int64  `json:"notebookId" form:"notebookId"`
	State           string `json:"state" form:"state" binding:"omitempty,oneof=draft published archived"`
	Mood            string `json:"mood" form:"mood"`
	HasMood         bool   `json:"hasMood" form:"hasMood"`
	TagID           int64  `json:"tagId" form:"tagId"`
	Favorite        *bool  `json:"favorite" form:"favorite"`
	Keyword         string `json:"keyword" form:"keyword"`
	IncludeArchived bool   `json:"includeArchived" form:"includeArchived"`
	DateFrom        string `json:"dateFrom" form:"dateFrom"`
	DateTo          string `json:"dateTo" form:"dateTo"`
}

// EntryRestoreRequest Parameters for restoring an archived entry, target state is explicit
// 恢复已归档条目的参数，目标状态由调用方指定
type EntryRestoreRequest struct {
	ID     int64  `json:"id" form:"id" binding:"required"`
	Target string `json:"target" form:"target" binding:"required,oneof=draft published"`
}

// EntryDuplicateRequest Parameters for duplicating an entry
// 复制条目的参数
type EntryDuplicateRequest struct {
	ID int64 `json:"id" form:"id" binding:"required"`
}

// EntryDeleteRequest Parameters required for deleting an entry
// 删除条目所需参数
type EntryDeleteRequest struct {
	ID int64 `json:"id" form:"id" binding:"required"`
}
