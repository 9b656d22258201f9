package domain

import "time"

// User 用户领域模型
type User struct {
	ID        int64
	Email     string
	Nickname  string
	Password  string
	Salt      string
	Avatar    string
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
