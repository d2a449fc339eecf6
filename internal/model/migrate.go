package model

import "gorm.io/gorm"

// AutoMigrate выполняет миграцию всех сущностей (порядок: родители раньше детей).
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Store{},
		&Category{},
		&Contact{},
		&Note{},
		&Reminder{},
	)
}
