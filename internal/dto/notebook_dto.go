package dto

import (
	"github.com/inkwellapp/journal-service/pkg/timex"
)

// NotebookDTO Notebook data transfer object
// NotebookDTO 笔记本数据传输对象
type NotebookDTO struct {
	ID          int64       `json:"id" form:"id"`
	Name        string      `json:"name" form:"name"`
	Description string      `json:"description" form:"description"`
	Sequence    int         `json:"sequence" form:"sequence"`
	Color       int         `json:"color" form:"color"`
	ColorName   string      `json:"colorName" form:"colorName"`
	IsActive    bool        `json:"isActive" form:"isActive"`
	EntryCount  int64       `json:"entryCount" form:"entryCount"`
	LastEntryAt *timex.Time `json:"lastEntryAt,omitempty" form:"lastEntryAt"`
	CreatedAt   timex.Time  `json:"createdAt" form:"createdAt"`
	UpdatedAt   timex.Time  `json:"updatedAt" form:"updatedAt"`
}

// NotebookListRequest Parameters for listing notebooks
// 笔记本列表请求参数
type NotebookListRequest struct {
	IncludeInactive bool `json:"includeInactive" form:"includeInactive"`
}

// NotebookGetRequest Parameters for fetching a single notebook
// 获取单个笔记本的参数
type NotebookGetRequest struct {
	ID int64 `json:"id" form:"id" binding:"required"`
}

// NotebookArchiveRequest Parameters for archiving or unarchiving a notebook
// 停用或启用笔记本的参数
type NotebookArchiveRequest struct {
	ID int64 `json:"id" form:"id" binding:"required"`
}

// NotebookCreateRequest Request parameters for creating a notebook
// 用于创建笔记本的请求参数
type NotebookCreateRequest struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Description string `json:"description" form:"description"`
	Sequence    *int   `json:"sequence" form:"sequence"`
	Color       *int   `json:"color" form:"color"`
}

// NotebookUpdateRequest Request parameters for updating a notebook
// 用于更新笔记本的请求参数
type NotebookUpdateRequest struct {
	ID          int64   `json:"id" form:"id" binding:"required"`
	Name        string  `json:"name" form:"name"`
	Description *string `json:"description" form:"description"`
	Sequence    *int    `json:"sequence" form:"sequence"`
	Color       *int    `json:"color" form:"color"`
}

// NotebookDeleteRequest Parameters required for deleting a notebook
// 删除笔记本所需参数
type NotebookDeleteRequest struct {
	ID      int64 `json:"id" form:"id" binding:"required"`
	Confirm bool  `json:"confirm" form:"confirm"`
}
