package services

import (
	"errors"
	"strings"
	"time"

	"github.com/JavaChrist/in-shape/models"

	"gorm.io/gorm"
)

// ExchangeService is the append-only note log between a student and their
// coach. Students add notes; the linked coach may annotate each note once.
type ExchangeService struct{ db *gorm.DB }

func NewExchangeService(db *gorm.DB) *ExchangeService { return &ExchangeService{db: db} }

func (s *ExchangeService) List(userID uint) ([]models.Exchange, error) {
	var exchanges []models.Exchange
	err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&exchanges).Error
	return exchanges, err
}

func (s *ExchangeService) Add(userID uint, note string) (*models.Exchange, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return nil, errors.New("note cannot be empty")
	}

	exchange := &models.Exchange{
		UserID:      userID,
		Date:        time.Now(),
		StudentNote: note,
	}
	if err := s.db.Create(exchange).Error; err != nil {
		return nil, err
	}
	return exchange, nil
}

// Annotate sets the one-shot coach comment. Only the coach the student is
// linked to may comment, and only while no comment exists yet. The student is
// notified through the alert bus.
func (s *ExchangeService) Annotate(coachID, studentID, exchangeID uint, comment string) (*models.Exchange, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, errors.New("comment cannot be empty")
	}

	var student models.User
	if err := s.db.First(&student, studentID).Error; err != nil {
		return nil, ErrNotFound
	}
	if student.CoachID == nil || *student.CoachID != coachID {
		return nil, ErrForbidden
	}

	var exchange models.Exchange
	err := s.db.Where("id = ? AND user_id = ?", exchangeID, studentID).First(&exchange).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if exchange.Annotated() {
		return nil, ErrAlreadyAnnotated
	}

	now := time.Now()
	exchange.CoachComment = comment
	exchange.CoachCommentDate = &now
	if err := s.db.Save(&exchange).Error; err != nil {
		return nil, err
	}

	EmitAlert(studentID, "coach.comment", "Your coach commented on one of your notes")
	return &exchange, nil
}
