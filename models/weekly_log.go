package models

import "gorm.io/gorm"

// DaysPerWeek is the fixed number of day slots in a weekly log sheet.
const DaysPerWeek = 7

// MaxWeek is the highest selectable week number (weeks run 0..52).
const MaxWeek = 52

// WeeklyLogSheet is one week of nutrition and sleep tracking, keyed by
// (user, week number). A sheet always carries exactly 7 day slots once
// persisted; an unedited week is served as an empty default without being
// written.
type WeeklyLogSheet struct {
	gorm.Model
	UserID uint `gorm:"index:idx_sheet_user_week,unique;not null"`
	Week   int  `gorm:"index:idx_sheet_user_week,unique;not null"` // 0..52

	Days []WeeklyLogDay `gorm:"foreignKey:SheetID;constraint:OnDelete:CASCADE"`
}

// WeeklyLogDay holds the free-text entries for one day slot.
// Weekday runs 0 (Monday) .. 6 (Sunday).
type WeeklyLogDay struct {
	gorm.Model
	SheetID uint `gorm:"index;not null"`
	Weekday int  `gorm:"not null"`

	Breakfast string `gorm:"type:text"`
	Lunch     string `gorm:"type:text"`
	Snack     string `gorm:"type:text"`
	Dinner    string `gorm:"type:text"`
	Water     string
	Alcohol   string

	Bedtime  string `gorm:"size:8"` // "22:30"
	Waketime string `gorm:"size:8"`
}

// EmptyWeek builds the lazily-materialized default: 7 day slots, all fields
// blank. Not persisted until the first edit.
func EmptyWeek(userID uint, week int) *WeeklyLogSheet {
	sheet := &WeeklyLogSheet{UserID: userID, Week: week}
	for d := 0; d < DaysPerWeek; d++ {
		sheet.Days = append(sheet.Days, WeeklyLogDay{Weekday: d})
	}
	return sheet
}

// Day returns the slot for the given weekday, or nil when out of range.
func (s *WeeklyLogSheet) Day(weekday int) *WeeklyLogDay {
	for i := range s.Days {
		if s.Days[i].Weekday == weekday {
			return &s.Days[i]
		}
	}
	return nil
}
