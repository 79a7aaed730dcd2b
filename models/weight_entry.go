package models

import (
	"time"

	"gorm.io/gorm"
)

// WeightEntry is one row of the insertion-ordered weight log. The profile's
// current weight always follows the last entry by insertion order.
type WeightEntry struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	Date     time.Time `gorm:"index;not null"`
	WeightKg float64   `gorm:"not null"`
	Note     string
}
