package services

import (
	"errors"
	"fmt"

	"github.com/JavaChrist/in-shape/models"

	"gorm.io/gorm"
)

// WeeklyLogService serves the per-week nutrition and sleep sheets. Weeks are
// lazily materialized: a never-edited week reads as the empty 7-day default
// and is only written on its first edit.
type WeeklyLogService struct{ db *gorm.DB }

func NewWeeklyLogService(db *gorm.DB) *WeeklyLogService {
	return &WeeklyLogService{db: db}
}

func validWeek(week int) error {
	if week < 0 || week > models.MaxWeek {
		return fmt.Errorf("week must be between 0 and %d", models.MaxWeek)
	}
	return nil
}

func (s *WeeklyLogService) GetWeek(userID uint, week int) (*models.WeeklyLogSheet, error) {
	if err := validWeek(week); err != nil {
		return nil, err
	}

	var sheet models.WeeklyLogSheet
	err := s.db.Preload("Days", func(db *gorm.DB) *gorm.DB {
		return db.Order("weekday ASC")
	}).Where("user_id = ? AND week = ?", userID, week).First(&sheet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.EmptyWeek(userID, week), nil
		}
		return nil, err
	}
	return &sheet, nil
}

type DayInput struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Snack     string `json:"snack"`
	Dinner    string `json:"dinner"`
	Water     string `json:"water"`
	Alcohol   string `json:"alcohol"`
	Bedtime   string `json:"bedtime"`
	Waketime  string `json:"waketime"`
}

// UpdateDay persists one day slot, materializing the full 7-slot sheet on the
// first edit of a week so no day is ever missing from a stored sheet.
func (s *WeeklyLogService) UpdateDay(userID uint, week, weekday int, in DayInput) (*models.WeeklyLogSheet, error) {
	if err := validWeek(week); err != nil {
		return nil, err
	}
	if weekday < 0 || weekday >= models.DaysPerWeek {
		return nil, fmt.Errorf("weekday must be between 0 and %d", models.DaysPerWeek-1)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var sheet models.WeeklyLogSheet
		err := tx.Where("user_id = ? AND week = ?", userID, week).First(&sheet).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sheet = models.WeeklyLogSheet{UserID: userID, Week: week}
			if err := tx.Create(&sheet).Error; err != nil {
				return err
			}
			for d := 0; d < models.DaysPerWeek; d++ {
				if err := tx.Create(&models.WeeklyLogDay{SheetID: sheet.ID, Weekday: d}).Error; err != nil {
					return err
				}
			}
		} else if err != nil {
			return err
		}

		var day models.WeeklyLogDay
		if err := tx.Where("sheet_id = ? AND weekday = ?", sheet.ID, weekday).First(&day).Error; err != nil {
			return err
		}

		day.Breakfast = in.Breakfast
		day.Lunch = in.Lunch
		day.Snack = in.Snack
		day.Dinner = in.Dinner
		day.Water = in.Water
		day.Alcohol = in.Alcohol
		day.Bedtime = in.Bedtime
		day.Waketime = in.Waketime
		return tx.Save(&day).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetWeek(userID, week)
}
