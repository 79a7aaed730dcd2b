package models

import (
	"time"

	"gorm.io/gorm"
)

// Exchange is one free-text note from a student, optionally annotated once by
// the linked coach. The coach comment is append-only: set at most one time.
type Exchange struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"not null"`

	StudentNote string `gorm:"type:text;not null"`

	CoachComment     string `gorm:"type:text"`
	CoachCommentDate *time.Time
}

// Annotated reports whether the coach has already commented.
func (e *Exchange) Annotated() bool { return e.CoachCommentDate != nil }
