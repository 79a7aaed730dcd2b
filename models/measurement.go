package models

import (
	"time"

	"gorm.io/gorm"
)

// SkinfoldMeasurement stores one four-site caliper reading (mm) plus the
// derived totals. BodyFatPercent is nil when no estimate could be computed
// (e.g. all sites zero).
type SkinfoldMeasurement struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"`

	BicepsMm      float64
	TricepsMm     float64
	SubscapularMm float64
	SuprailiacMm  float64

	TotalMm        float64  // always the sum of the four sites
	BodyFatPercent *float64 // Durnin & Womersley estimate, re-derived on every write
}
