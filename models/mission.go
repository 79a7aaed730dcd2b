package models

import "gorm.io/gorm"

// MissionTransformation is the student's long-form transformation statement,
// one record per user.
type MissionTransformation struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null"`

	Objective string `gorm:"type:text"`
	Why       string `gorm:"type:text"`
	Benefits  string `gorm:"type:text"`
	Changes   string `gorm:"type:text"`
}
