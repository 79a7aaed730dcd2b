package services

import (
	"errors"

	"github.com/JavaChrist/in-shape/models"
	"github.com/JavaChrist/in-shape/utils"

	"gorm.io/gorm"
)

// CoachService exposes the coach-side views over linked students.
type CoachService struct{ db *gorm.DB }

func NewCoachService(db *gorm.DB) *CoachService { return &CoachService{db: db} }

// Student returns the student only when linked to the given coach.
func (s *CoachService) Student(coachID, studentID uint) (*models.User, error) {
	var student models.User
	if err := s.db.First(&student, studentID).Error; err != nil {
		return nil, ErrNotFound
	}
	if student.CoachID == nil || *student.CoachID != coachID {
		return nil, ErrForbidden
	}
	return &student, nil
}

func (s *CoachService) Students(coachID uint) ([]models.User, error) {
	var students []models.User
	err := s.db.Where("coach_id = ?", coachID).Order("name ASC").Find(&students).Error
	return students, err
}

// StudentOverview aggregates what a coach reviews for one student: profile
// numbers, the weight log, the latest skinfold estimate, and the weekly fill
// rates plus habit score for the requested week.
func (s *CoachService) StudentOverview(coachID, studentID uint, week int) (map[string]interface{}, error) {
	student, err := s.Student(coachID, studentID)
	if err != nil {
		return nil, err
	}

	weights, err := NewWeightService(s.db).List(studentID)
	if err != nil {
		return nil, err
	}

	var latest *models.SkinfoldMeasurement
	var m models.SkinfoldMeasurement
	err = s.db.Where("user_id = ?", studentID).Order("date DESC, id DESC").First(&m).Error
	if err == nil {
		latest = &m
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	sheet, err := NewWeeklyLogService(s.db).GetWeek(studentID, week)
	if err != nil {
		return nil, err
	}

	habitScore, err := NewHabitService(s.db).WeekScore(studentID, week)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"student": map[string]interface{}{
			"id":               student.ID,
			"name":             student.Name,
			"email":            student.Email,
			"age":              student.Age,
			"height_cm":        student.HeightCm,
			"weight_kg":        student.WeightKg,
			"target_weight_kg": student.TargetWeightKg,
			"bmi":              utils.Round1(student.BMI),
			"bmi_category":     utils.BMICategory(student.BMI),
		},
		"weight_entries":     weights,
		"latest_measurement": latest,
		"week":               week,
		"fill_rates":         WeeklySummary(sheet),
		"habit_score":        habitScore,
	}, nil
}
