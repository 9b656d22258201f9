package dto

import (
	"github.com/inkwellapp/journal-service/pkg/timex"
)

// TagDTO Tag data transfer object
// TagDTO 标签数据传输对象
type TagDTO struct {
	ID         int64      `json:"id" form:"id"`
	Name       string     `json:"name" form:"name"`
	Color      int        `json:"color" form:"color"`
	ColorName  string     `json:"colorName" form:"colorName"`
	IsActive   bool       `json:"isActive" form:"isActive"`
	UsageCount int64      `json:"usageCount" form:"usageCount"`
	CreatedAt  timex.Time `json:"createdAt" form:"createdAt"`
	UpdatedAt  timex.Time `json:"updatedAt" form:"updatedAt"`
}

// TagListRequest Parameters for listing tags
// 标签列表请求参数
type TagListRequest struct {
	IncludeInactive bool `json:"includeInactive" form:"includeInactive"`
}

// TagGetRequest Parameters for fetching a single tag
// 获取单个标签的参数
type TagGetRequest struct {
	ID int64 `json:"id" form:"id" binding:"required"`
}

// TagArchiveRequest Parameters for archiving or unarchiving a tag
// 停用或启用标签的参数
type TagArchiveRequest struct {
	ID int64 `json:"id" form:"id" binding:"required"`
}

// TagCreateRequest Request parameters for creating a tag
// 用于创建标签的请求参数
type TagCreateRequest struct {
	Name  string `json:"name" form:"name" binding:"required"`
	Color *int   `json:"color" form:"color"`
}

// TagUpdateRequest Request parameters for updating a tag
// 用于更新标签的请求参数
type TagUpdateRequest struct {
	ID    int64  `json:"id" form:"id" binding:"required"`
	Name  string `json:"name" form:"name"`
	Color *int   `json:"color" form:"color"`
}

// TagDeleteRequest Parameters required for deleting a tag
// 删除标签所需参数
type TagDeleteRequest struct {
	ID int64 `json:"id" form:"id" binding:"required"`
}
