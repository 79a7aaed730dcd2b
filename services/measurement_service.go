package services

import (
	"errors"
	"time"

	"github.com/JavaChrist/in-shape/models"
	"github.com/JavaChrist/in-shape/utils"

	"gorm.io/gorm"
)

// MeasurementService owns the skinfold log. Derived fields (total, body-fat
// percentage) are re-derived on every write so they never go stale against
// their inputs.
type MeasurementService struct{ db *gorm.DB }

func NewMeasurementService(db *gorm.DB) *MeasurementService {
	return &MeasurementService{db: db}
}

type MeasurementInput struct {
	Date          time.Time `json:"date"`
	BicepsMm      float64   `json:"biceps_mm"`
	TricepsMm     float64   `json:"triceps_mm"`
	SubscapularMm float64   `json:"subscapular_mm"`
	SuprailiacMm  float64   `json:"suprailiac_mm"`
}

func (in MeasurementInput) validate() error {
	if in.BicepsMm < 0 || in.TricepsMm < 0 || in.SubscapularMm < 0 || in.SuprailiacMm < 0 {
		return errors.New("skinfold readings cannot be negative")
	}
	return nil
}

func (s *MeasurementService) List(userID uint) ([]models.SkinfoldMeasurement, error) {
	var items []models.SkinfoldMeasurement
	err := s.db.Where("user_id = ?", userID).Order("date ASC, id ASC").Find(&items).Error
	return items, err
}

func (s *MeasurementService) Create(userID uint, in MeasurementInput) (*models.SkinfoldMeasurement, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	m := &models.SkinfoldMeasurement{
		UserID:        userID,
		Date:          in.Date,
		BicepsMm:      in.BicepsMm,
		TricepsMm:     in.TricepsMm,
		SubscapularMm: in.SubscapularMm,
		SuprailiacMm:  in.SuprailiacMm,
	}
	if m.Date.IsZero() {
		m.Date = time.Now()
	}
	if err := s.derive(userID, m); err != nil {
		return nil, err
	}
	return m, s.db.Create(m).Error
}

func (s *MeasurementService) Update(userID, id uint, in MeasurementInput) (*models.SkinfoldMeasurement, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var m models.SkinfoldMeasurement
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&m).Error; err != nil {
		return nil, ErrNotFound
	}

	m.BicepsMm = in.BicepsMm
	m.TricepsMm = in.TricepsMm
	m.SubscapularMm = in.SubscapularMm
	m.SuprailiacMm = in.SuprailiacMm
	if !in.Date.IsZero() {
		m.Date = in.Date
	}
	if err := s.derive(userID, &m); err != nil {
		return nil, err
	}
	return &m, s.db.Save(&m).Error
}

func (s *MeasurementService) Delete(userID, id uint) error {
	var m models.SkinfoldMeasurement
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&m).Error; err != nil {
		return ErrNotFound
	}
	return s.db.Delete(&m).Error
}

// derive fills TotalMm and BodyFatPercent from the four sites and the owner's
// age and sex. An estimate that cannot be computed is stored as nil, never as
// a non-finite number.
func (s *MeasurementService) derive(userID uint, m *models.SkinfoldMeasurement) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return err
	}

	m.TotalMm = m.BicepsMm + m.TricepsMm + m.SubscapularMm + m.SuprailiacMm
	m.BodyFatPercent = nil
	if percent, err := utils.EstimateBodyFat(m.TotalMm, user.Age, user.Sex); err == nil {
		m.BodyFatPercent = &percent
	}
	return nil
}
