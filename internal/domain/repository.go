// Package domain 定义领域模型和接口
package domain

import (
	"context"
	"time"
)

// EntryRepository 条目仓储接口
type EntryRepository interface {
	// GetByID 根据ID获取条目（含标签）
	GetByID(ctx context.Context, id, uid int64) (*Entry, error)

	// Create 创建条目
	Create(ctx context.Context, entry *Entry, uid int64) (*Entry, error)

	// Update 更新条目
	Update(ctx context.Context, entry *Entry, uid int64) (*Entry, error)

	// UpdateState 更新条目状态
	UpdateState(ctx context.Context, state EntryState, id, uid int64) error

	// UpdateFavorite 更新条目收藏标记
	UpdateFavorite(ctx context.Context, favorite bool, id, uid int64) error

	// Delete 物理删除条目
	Delete(ctx context.Context, id, uid int64) error

	// List 分页获取条目列表
	List(ctx context.Context, filter EntryFilter, page, pageSize int, uid int64) ([]*Entry, error)

	// ListCount 获取条目数量
	ListCount(ctx context.Context, filter EntryFilter, uid int64) (int64, error)

	// SetTags 重建条目的标签关联
	SetTags(ctx context.Context, entryID int64, tagIDs []int64, uid int64) error

	// ClearTags 清空条目的标签关联
	ClearTags(ctx context.Context, entryID, uid int64) error

	// DetachTag 将标签从所有条目上摘除
	DetachTag(ctx context.Context, tagID, uid int64) error

	// CountByNotebook 统计笔记本下的条目数量
	CountByNotebook(ctx context.Context, notebookID, uid int64) (int64, error)

	// DeleteByNotebook 删除笔记本下的全部条目
	DeleteByNotebook(ctx context.Context, notebookID, uid int64) error

	// MoodCounts 按心情聚合条目数量，时间范围可选
	MoodCounts(ctx context.Context, uid int64, from, to *time.Time, includeArchived bool) ([]*MoodCountResult, error)

	// ListStats 获取统计用的轻量条目行（透视、时间线、日历在服务层聚合）
	ListStats(ctx context.Context, uid int64, from, to *time.Time, includeArchived bool) ([]*EntryStat, error)
}

// EntryVersionRepository 条目版本仓储接口
type EntryVersionRepository interface {
	// Create 写入一个版本快照
	Create(ctx context.Context, version *EntryVersion, uid int64) (*EntryVersion, error)

	// GetByID 根据ID获取版本
	GetByID(ctx context.Context, id, uid int64) (*EntryVersion, error)

	// GetBySequence 根据条目与序号获取版本
	GetBySequence(ctx context.Context, entryID, sequence, uid int64) (*EntryVersion, error)

	// MaxSequence 获取条目当前最大版本序号，无版本时返回 0
	MaxSequence(ctx context.Context, entryID, uid int64) (int64, error)

	// List 分页获取条目的版本列表，序号升序
	List(ctx context.Context, entryID, uid int64, page, pageSize int) ([]*EntryVersion, error)

	// ListCount 获取条目的版本数量
	ListCount(ctx context.Context, entryID, uid int64) (int64, error)

	// DeleteExcess 删除条目超出保留数量的最旧版本，返回删除数量
	DeleteExcess(ctx context.Context, entryID, uid int64, keep int) (int64, error)

	// DeleteExcessAll 对所有条目执行保留数量清理，返回删除数量
	DeleteExcessAll(ctx context.Context, keep int) (int64, error)

	// DeleteByEntry 删除条目的全部版本
	DeleteByEntry(ctx context.Context, entryID, uid int64) error
}

// NotebookRepository 笔记本仓储接口
type NotebookRepository interface {
	// GetByID 根据ID获取笔记本
	GetByID(ctx context.Context, id, uid int64) (*Notebook, error)

	// GetByName 根据名称获取笔记本
	GetByName(ctx context.Context, name string, uid int64) (*Notebook, error)

	// Create 创建笔记本
	Create(ctx context.Context, notebook *Notebook, uid int64) (*Notebook, error)

	// Update 更新笔记本
	Update(ctx context.Context, notebook *Notebook, uid int64) (*Notebook, error)

	// UpdateActive 更新笔记本的启用标记
	UpdateActive(ctx context.Context, active bool, id, uid int64) error

	// Delete 删除笔记本
	Delete(ctx context.Context, id, uid int64) error

	// List 获取笔记本列表，按 sequence 升序、name 升序，附带条目数量与最近条目日期
	List(ctx context.Context, uid int64, includeInactive bool) ([]*Notebook, error)

	// ListInactiveBefore 获取所有用户在指定时间前停用的笔记本
	ListInactiveBefore(ctx context.Context, before time.Time) ([]*Notebook, error)
}

// TagRepository 标签仓储接口
type TagRepository interface {
	// GetByID 根据ID获取标签
	GetByID(ctx context.Context, id, uid int64) (*Tag, error)

	// GetByName 根据名称获取标签
	GetByName(ctx context.Context, name string, uid int64) (*Tag, error)

	// Create 创建标签
	Create(ctx context.Context, tag *Tag, uid int64) (*Tag, error)

	// Update 更新标签
	Update(ctx context.Context, tag *Tag, uid int64) (*Tag, error)

	// UpdateActive 更新标签的启用标记
	UpdateActive(ctx context.Context, active bool, id, uid int64) error

	// Delete 删除标签
	Delete(ctx context.Context, id, uid int64) error

	// List 获取标签列表，按名称升序，附带使用数量
	List(ctx context.Context, uid int64, includeInactive bool) ([]*Tag, error)

	// ListByIDs 根据ID集合获取标签
	ListByIDs(ctx context.Context, ids []int64, uid int64) ([]*Tag, error)

	// ListInactiveBefore 获取所有用户在指定时间前停用的标签
	ListInactiveBefore(ctx context.Context, before time.Time) ([]*Tag, error)
}

// UserRepository 用户仓储接口
type UserRepository interface {
	// GetByID 根据ID获取用户
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByEmail 根据邮箱获取用户
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Create 创建用户
	Create(ctx context.Context, user *User) (*User, error)

	// Update 更新用户
	Update(ctx context.Context, user *User) (*User, error)

	// UpdatePassword 更新用户密码
	UpdatePassword(ctx context.Context, id int64, password, salt string) error

	// DeleteSoftDeletedBefore 物理删除在指定时间前软删除的用户
	DeleteSoftDeletedBefore(ctx context.Context, before time.Time) (int64, error)
}
