package model

import (
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB, key string) error {
	switch key {

	case "Entry":
		return db.AutoMigrate(Entry{})

	case "EntryVersion":
		return db.AutoMigrate(EntryVersion{})

	case "EntryTag":
		return db.AutoMigrate(EntryTag{})

	case "Notebook":
		return db.AutoMigrate(Notebook{})

	case "Tag":
		return db.AutoMigrate(Tag{})

	case "User":
		return db.AutoMigrate(User{})
	}
	return nil
}
