package domain

import "time"

// Entry 日志条目领域模型
type Entry struct {
	ID           int64
	UID          int64
	NotebookID   int64
	Title        string
	Content      string
	EntryDate    time.Time
	State        EntryState
	Mood         Mood
	IsFavorite   bool
	WordCount    int
	CharCount    int
	ContentHash  string
	SearchVector string
	Tags         []*Tag
	LastEditedAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsDraft 判断条目是否为草稿
func (e *Entry) IsDraft() bool {
	return e.State == EntryStateDraft
}

// IsPublished 判断条目是否已发布
func (e *Entry) IsPublished() bool {
	return e.State == EntryStatePublished
}

// IsArchived 判断条目是否已归档
func (e *Entry) IsArchived() bool {
	return e.State == EntryStateArchived
}

// TagNames 返回条目标签名列表
func (e *Entry) TagNames() []string {
	names := make([]string, 0, len(e.Tags))
	for _, t := range e.Tags {
		names = append(names, t.Name)
	}
	return names
}

// EntryFilter 条目列表筛选条件
type EntryFilter struct {
	NotebookID      int64      // 0 表示全部笔记本
	State           EntryState // 空表示全部状态
	Mood            Mood       // 空表示全部心情
	HasMood         bool       // 仅保留设置了心情的条目
	TagID           int64      // 0 表示不按标签过滤
	Favorite        *bool      // nil 表示不过滤
	Keyword         string     // 匹配标题，FullText 开启时同时匹配搜索向量
	FullText        bool       // 关键词是否匹配全文搜索向量
	IncludeArchived bool       // 未按状态过滤时是否包含已归档条目
	DateFrom        *time.Time
	DateTo          *time.Time
}

// MoodCountResult 心情聚合统计结果
type MoodCountResult struct {
	Mood  Mood
	Count int64
}

// EntryStat 统计用的轻量条目行
type EntryStat struct {
	ID         int64
	NotebookID int64
	State      EntryState
	Mood       Mood
	EntryDate  time.Time
	WordCount  int64
}
