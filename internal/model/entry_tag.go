package model

const TableNameEntryTag = "entry_tag"

// EntryTag mapped from table <entry_tag>, the entry to tag join table
type EntryTag struct {
	ID      int64 `gorm:"column:id;primaryKey" json:"id" form:"id"`
	UID     int64 `gorm:"column:uid;not null;index:idx_entry_tag_uid" json:"uid" form:"uid"`
	EntryID int64 `gorm:"column:entry_id;not null;uniqueIndex:udx_entry_tag,priority:1" json:"entryId" form:"entryId"`
	TagID   int64 `gorm:"column:tag_id;not null;uniqueIndex:udx_entry_tag,priority:2;index:idx_entry_tag_tag" json:"tagId" form:"tagId"`
}

// TableName EntryTag's table name
func (*EntryTag) TableName() string {
	return TableNameEntryTag
}
