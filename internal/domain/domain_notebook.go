package domain

import "time"

// Notebook 笔记本领域模型
type Notebook struct {
	ID          int64
	UID         int64
	Name        string
	Description string
	Sequence    int
	Color       Color
	IsActive    bool
	EntryCount  int64
	LastEntryAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
