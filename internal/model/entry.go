package model

import "github.com/inkwellapp/journal-service/pkg/timex"

const TableNameEntry = "entry"

// Entry mapped from table <entry>
type Entry struct {
	ID           int64      `gorm:"column:id;primaryKey" json:"id" form:"id"`
	UID          int64      `gorm:"column:uid;not null;index:idx_entry_uid" json:"uid" form:"uid"`
	NotebookID   int64      `gorm:"column:notebook_id;not null;index:idx_entry_notebook" json:"notebookId" form:"notebookId"`
	Title        string     `gorm:"column:title;not null" json:"title" form:"title"`
	Content      string     `gorm:"column:content;type:text" json:"content" form:"content"`
	EntryDate    timex.Time `gorm:"column:entry_date;type:datetime;index:idx_entry_date" json:"entryDate" form:"entryDate"`
	State        string     `gorm:"column:state;not null;default:draft;index:idx_entry_state" json:"state" form:"state"`
	Mood         string     `gorm:"column:mood;index:idx_entry_mood" json:"mood" form:"mood"`
	IsFavorite   bool       `gorm:"column:is_favorite;default:false" json:"isFavorite" form:"isFavorite"`
	WordCount    int        `gorm:"column:word_count;default:0" json:"wordCount" form:"wordCount"`
	CharCount    int        `gorm:"column:char_count;default:0" json:"charCount" form:"charCount"`
	ContentHash  string     `gorm:"column:content_hash;default:''" json:"contentHash" form:"contentHash"`
	SearchVector string     `gorm:"column:search_vector;type:text" json:"searchVector" form:"searchVector"`
	LastEditedAt timex.Time `gorm:"column:last_edited_at;type:datetime;default:NULL" json:"lastEditedAt" form:"lastEditedAt"`
	CreatedAt    timex.Time `gorm:"column:created_at;type:datetime;default:NULL;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	UpdatedAt    timex.Time `gorm:"column:updated_at;type:datetime;default:NULL;autoUpdateTime:false" json:"updatedAt" form:"updatedAt"`
}

// TableName Entry's table name
func (*Entry) TableName() string {
	return TableNameEntry
}
