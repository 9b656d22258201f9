package model

import "github.com/inkwellapp/journal-service/pkg/timex"

const TableNameEntryVersion = "entry_version"

// EntryVersion mapped from table <entry_version>
type EntryVersion struct {
	ID        int64      `gorm:"column:id;primaryKey" json:"id" form:"id"`
	UID       int64      `gorm:"column:uid;not null;index:idx_version_uid" json:"uid" form:"uid"`
	EntryID   int64      `gorm:"column:entry_id;not null;uniqueIndex:udx_version_entry_seq,priority:1" json:"entryId" form:"entryId"`
	Sequence  int64      `gorm:"column:sequence;not null;uniqueIndex:udx_version_entry_seq,priority:2" json:"sequence" form:"sequence"`
	Title     string     `gorm:"column:title;not null" json:"title" form:"title"`
	Content   string     `gorm:"column:content;type:text" json:"content" form:"content"`
	WordCount int        `gorm:"column:word_count;default:0" json:"wordCount" form:"wordCount"`
	CharCount int        `gorm:"column:char_count;default:0" json:"charCount" form:"charCount"`
	CreatedAt timex.Time `gorm:"column:created_at;type:datetime;default:NULL;autoCreateTime:false" json:"createdAt" form:"createdAt"`
}

// TableName EntryVersion's table name
func (*EntryVersion) TableName() string {
	return TableNameEntryVersion
}
