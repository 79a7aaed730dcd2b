package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JavaChrist/in-shape/config"
	"github.com/JavaChrist/in-shape/models"
	"github.com/JavaChrist/in-shape/utils"

	"gorm.io/gorm"
)

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
	JoinCode string // required for students, ignored for coaches
}

// RegisterUser creates an account. Coaches get a fresh join code; students
// must present a valid coach code and are linked to that coach in the same
// transaction, so a failed link never leaves a half-registered student.
func RegisterUser(in RegisterInput) (*models.User, error) {
	if len(in.Password) < 6 {
		return nil, errors.New("password must be at least 6 characters")
	}
	if in.Role != models.RoleStudent && in.Role != models.RoleCoach {
		return nil, fmt.Errorf("unknown role %q", in.Role)
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Password: hashed,
		Name:     in.Name,
		Role:     in.Role,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if in.Role == models.RoleCoach {
			user.CoachCode = uniqueJoinCode(tx)
		} else {
			code := strings.ToUpper(strings.TrimSpace(in.JoinCode))
			var coach models.User
			if err := tx.Where("role = ? AND coach_code = ?", models.RoleCoach, code).
				First(&coach).Error; err != nil {
				return ErrInvalidJoinCode
			}
			user.CoachID = &coach.ID
		}
		return tx.Create(user).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// uniqueJoinCode retries until the generated code is unused. Collisions are
// rare with a 36^6 space, so a few attempts suffice.
func uniqueJoinCode(tx *gorm.DB) string {
	for {
		code := utils.GenerateJoinCode()
		var count int64
		tx.Model(&models.User{}).Where("coach_code = ?", code).Count(&count)
		if count == 0 {
			return code
		}
	}
}

// AuthenticateUser validates credentials and returns a signed JWT.
func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user)
	if result.Error != nil {
		return "", errors.New("invalid email or password")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid email or password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}
