package domain

import "time"

// Tag 标签领域模型
type Tag struct {
	ID         int64
	UID        int64
	Name       string
	Color      Color
	IsActive   bool
	UsageCount int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
