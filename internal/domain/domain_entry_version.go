package domain

import "time"

// EntryVersion 条目内容快照领域模型
type EntryVersion struct {
	ID        int64
	UID       int64
	EntryID   int64
	Sequence  int64
	Title     string
	Content   string
	WordCount int
	CharCount int
	CreatedAt time.Time
}
