package services

import (
	"errors"

	"github.com/JavaChrist/in-shape/models"

	"gorm.io/gorm"
)

// HabitService tracks per-week completion of the fixed habit catalogue.
// Completion rows are only created and flipped, never deleted.
type HabitService struct{ db *gorm.DB }

func NewHabitService(db *gorm.DB) *HabitService { return &HabitService{db: db} }

// WeekCompletions returns habitID -> completed for a week. Habits with no
// row default to false.
func (s *HabitService) WeekCompletions(userID uint, week int) (map[string]bool, error) {
	if err := validWeek(week); err != nil {
		return nil, err
	}

	var rows []models.HabitCompletion
	if err := s.db.Where("user_id = ? AND week = ?", userID, week).Find(&rows).Error; err != nil {
		return nil, err
	}

	flags := make(map[string]bool, len(models.HabitCatalogue))
	for _, h := range models.HabitCatalogue {
		flags[h.ID] = false
	}
	for _, r := range rows {
		flags[r.HabitID] = r.Completed
	}
	return flags, nil
}

// SetCompletion sets one habit's flag for a week. Unknown habit ids are
// rejected; the catalogue itself never changes at runtime.
func (s *HabitService) SetCompletion(userID uint, habitID string, week int, completed bool) error {
	if err := validWeek(week); err != nil {
		return err
	}
	if _, ok := models.HabitByID(habitID); !ok {
		return ErrNotFound
	}

	var row models.HabitCompletion
	err := s.db.Where("user_id = ? AND habit_id = ? AND week = ?", userID, habitID, week).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.HabitCompletion{
			UserID:    userID,
			HabitID:   habitID,
			Week:      week,
			Completed: completed,
		}
		return s.db.Create(&row).Error
	}
	if err != nil {
		return err
	}

	row.Completed = completed
	return s.db.Save(&row).Error
}

// WeekScore is the share of catalogue habits completed in a week, as an
// integer percentage.
func (s *HabitService) WeekScore(userID uint, week int) (int, error) {
	flags, err := s.WeekCompletions(userID, week)
	if err != nil {
		return 0, err
	}

	done := 0
	for _, completed := range flags {
		if completed {
			done++
		}
	}
	return done * 100 / len(models.HabitCatalogue), nil
}
