package services

import (
	"errors"
	"time"

	"github.com/JavaChrist/in-shape/models"

	"gorm.io/gorm"
)

// WeightService maintains the insertion-ordered weight log and keeps the
// profile's current weight and BMI pinned to the most recent entry.
type WeightService struct{ db *gorm.DB }

func NewWeightService(db *gorm.DB) *WeightService { return &WeightService{db: db} }

func (s *WeightService) List(userID uint) ([]models.WeightEntry, error) {
	var entries []models.WeightEntry
	err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&entries).Error
	return entries, err
}

func (s *WeightService) Append(userID uint, weightKg float64, note string, date time.Time) (*models.WeightEntry, error) {
	if weightKg <= 0 {
		return nil, errors.New("weight must be positive")
	}
	if date.IsZero() {
		date = time.Now()
	}

	entry := &models.WeightEntry{
		UserID:   userID,
		Date:     date,
		WeightKg: weightKg,
		Note:     note,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, s.syncProfile(userID)
}

type WeightPatch struct {
	WeightKg *float64   `json:"weight_kg"`
	Note     *string    `json:"note"`
	Date     *time.Time `json:"date"`
}

// Update patches an existing entry. The profile only changes when the patched
// entry is the most recent one; syncProfile re-derives from the latest entry
// either way, which leaves older-entry edits without profile effect.
func (s *WeightService) Update(userID, id uint, patch WeightPatch) (*models.WeightEntry, error) {
	var entry models.WeightEntry
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		return nil, ErrNotFound
	}

	if patch.WeightKg != nil {
		if *patch.WeightKg <= 0 {
			return nil, errors.New("weight must be positive")
		}
		entry.WeightKg = *patch.WeightKg
	}
	if patch.Note != nil {
		entry.Note = *patch.Note
	}
	if patch.Date != nil && !patch.Date.IsZero() {
		entry.Date = *patch.Date
	}

	if err := s.db.Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, s.syncProfile(userID)
}

// Remove deletes an entry; removing the most recent one re-derives the
// profile weight from the new latest entry, or clears it when the log is
// empty. Unknown ids are a no-op reported as ErrNotFound.
func (s *WeightService) Remove(userID, id uint) error {
	var entry models.WeightEntry
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		return ErrNotFound
	}
	if err := s.db.Delete(&entry).Error; err != nil {
		return err
	}
	return s.syncProfile(userID)
}

// syncProfile pins user.WeightKg and BMI to the last entry by insertion order.
func (s *WeightService) syncProfile(userID uint) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return err
	}

	var latest models.WeightEntry
	err := s.db.Where("user_id = ?", userID).Order("id DESC").First(&latest).Error
	switch {
	case err == nil:
		user.WeightKg = latest.WeightKg
	case errors.Is(err, gorm.ErrRecordNotFound):
		user.WeightKg = 0
	default:
		return err
	}

	refreshBMI(&user)
	return s.db.Save(&user).Error
}
