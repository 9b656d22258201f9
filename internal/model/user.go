package model

import "github.com/inkwellapp/journal-service/pkg/timex"

const TableNameUser = "user"

// User mapped from table <user>
type User struct {
	ID        int64      `gorm:"column:id;primaryKey" json:"id" form:"id"`
	Email     string     `gorm:"column:email;not null;uniqueIndex:udx_user_email" json:"email" form:"email"`
	Nickname  string     `gorm:"column:nickname" json:"nickname" form:"nickname"`
	Password  string     `gorm:"column:password;not null" json:"-" form:"-"`
	Salt      string     `gorm:"column:salt" json:"-" form:"-"`
	Avatar    string     `gorm:"column:avatar" json:"avatar" form:"avatar"`
	IsDeleted bool       `gorm:"column:is_deleted;default:false;index:idx_user_deleted" json:"isDeleted" form:"isDeleted"`
	CreatedAt timex.Time `gorm:"column:created_at;type:datetime;default:NULL;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	UpdatedAt timex.Time `gorm:"column:updated_at;type:datetime;default:NULL;autoUpdateTime:false" json:"updatedAt" form:"updatedAt"`
}

// TableName User's table name
func (*User) TableName() string {
	return TableNameUser
}
