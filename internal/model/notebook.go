package model

import "github.com/inkwellapp/journal-service/pkg/timex"

const TableNameNotebook = "notebook"

// Notebook mapped from table <notebook>
type Notebook struct {
	ID          int64      `gorm:"column:id;primaryKey" json:"id" form:"id"`
	UID         int64      `gorm:"column:uid;not null;uniqueIndex:udx_notebook_name,priority:1" json:"uid" form:"uid"`
	Name        string     `gorm:"column:name;not null;uniqueIndex:udx_notebook_name,priority:2" json:"name" form:"name"`
	Description string     `gorm:"column:description" json:"description" form:"description"`
	Sequence    int        `gorm:"column:sequence;default:10" json:"sequence" form:"sequence"`
	Color       int        `gorm:"column:color;default:0" json:"color" form:"color"`
	IsActive    bool       `gorm:"column:is_active;default:true" json:"isActive" form:"isActive"`
	CreatedAt   timex.Time `gorm:"column:created_at;type:datetime;default:NULL;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	UpdatedAt   timex.Time `gorm:"column:updated_at;type:datetime;default:NULL;autoUpdateTime:false" json:"updatedAt" form:"updatedAt"`
}

// TableName Notebook's table name
func (*Notebook) TableName() string {
	return TableNameNotebook
}
