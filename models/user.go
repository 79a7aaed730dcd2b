package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleStudent = "student"
	RoleCoach   = "coach"
)

const (
	SexMale   = "male"
	SexFemale = "female"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Name     string
	Role     string `gorm:"size:16;index;not null"` // "student" | "coach"

	Phone          string
	Age            int
	Sex            string `gorm:"size:8"` // "male" | "female"
	HeightCm       float64
	WeightKg       float64 // mirrors the latest weight entry; 0 when the log is empty
	TargetWeightKg float64
	WaistCm        float64
	BMI            float64 // recomputed whenever height or weight changes
	MedicalNotes   string  `gorm:"type:text"`
	ProfilePicture string

	// Coach fields
	CoachCode string `gorm:"size:6;index"` // join code shared with students
	Students  []User `gorm:"foreignKey:CoachID"`

	// Student fields
	CoachID *uint `gorm:"index"`

	ResetToken    string
	ResetTokenExp time.Time
}

func (u *User) IsCoach() bool { return u.Role == RoleCoach }
