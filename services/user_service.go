package services

import (
	"context"

	"github.com/JavaChrist/in-shape/config"
	"github.com/JavaChrist/in-shape/models"
	"github.com/JavaChrist/in-shape/utils"

	"gorm.io/gorm"
)

type ProfileInput struct {
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Age            int     `json:"age"`
	Sex            string  `json:"sex"`
	HeightCm       float64 `json:"height_cm"`
	TargetWeightKg float64 `json:"target_weight_kg"`
	WaistCm        float64 `json:"waist_cm"`
	MedicalNotes   string  `json:"medical_notes"`
	ProfilePicture string  `json:"profile_picture"` // base64 data URL
}

func FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		return nil, ErrNotFound
	}
	return &user, nil
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	profile := map[string]interface{}{
		"id":               user.ID,
		"email":            user.Email,
		"name":             user.Name,
		"role":             user.Role,
		"phone":            user.Phone,
		"age":              user.Age,
		"sex":              user.Sex,
		"height_cm":        user.HeightCm,
		"weight_kg":        user.WeightKg,
		"target_weight_kg": user.TargetWeightKg,
		"waist_cm":         user.WaistCm,
		"bmi":              utils.Round1(user.BMI),
		"bmi_category":     utils.BMICategory(user.BMI),
		"medical_notes":    user.MedicalNotes,
		"profile_picture":  user.ProfilePicture,
	}
	if user.IsCoach() {
		profile["coach_code"] = user.CoachCode
	} else if user.CoachID != nil {
		profile["coach_id"] = *user.CoachID
	}
	return profile, nil
}

// UpdateUserProfile applies non-zero fields and keeps the derived BMI in sync
// with height and current weight. Photo payloads run through moderation
// before the upload.
func UpdateUserProfile(ctx context.Context, userID uint, input ProfileInput) error {
	user, err := FindUserByID(userID)
	if err != nil {
		return err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Age > 0 {
		user.Age = input.Age
	}
	if input.Sex == models.SexMale || input.Sex == models.SexFemale {
		user.Sex = input.Sex
	}
	if input.HeightCm > 0 {
		user.HeightCm = input.HeightCm
	}
	if input.TargetWeightKg > 0 {
		user.TargetWeightKg = input.TargetWeightKg
	}
	if input.WaistCm > 0 {
		user.WaistCm = input.WaistCm
	}
	if input.MedicalNotes != "" {
		user.MedicalNotes = input.MedicalNotes
	}
	if input.ProfilePicture != "" {
		raw, contentType, err := utils.DecodeBase64Image(input.ProfilePicture)
		if err != nil {
			return err
		}
		if err := utils.ModerateImage(ctx, raw); err != nil {
			return err
		}
		url, err := utils.UploadProfilePicture(raw, contentType)
		if err != nil {
			return err
		}
		user.ProfilePicture = url
	}

	refreshBMI(user)
	return config.DB.Save(user).Error
}

// refreshBMI re-derives the profile BMI, clearing it when inputs are
// incomplete rather than keeping a stale value.
func refreshBMI(user *models.User) {
	bmi, err := utils.CalculateBMI(user.HeightCm, user.WeightKg)
	if err != nil {
		user.BMI = 0
		return
	}
	user.BMI = bmi
}

// GetMission returns the user's transformation statement, defaulting to an
// empty one when none is stored yet.
func GetMission(userID uint) (*models.MissionTransformation, error) {
	var mission models.MissionTransformation
	err := config.DB.Where("user_id = ?", userID).First(&mission).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return &models.MissionTransformation{UserID: userID}, nil
		}
		return nil, err
	}
	return &mission, nil
}

type MissionInput struct {
	Objective string `json:"objective"`
	Why       string `json:"why"`
	Benefits  string `json:"benefits"`
	Changes   string `json:"changes"`
}

func UpsertMission(userID uint, input MissionInput) (*models.MissionTransformation, error) {
	mission := models.MissionTransformation{
		UserID:    userID,
		Objective: input.Objective,
		Why:       input.Why,
		Benefits:  input.Benefits,
		Changes:   input.Changes,
	}
	err := config.DB.
		Where("user_id = ?", userID).
		Assign(map[string]interface{}{
			"objective": input.Objective,
			"why":       input.Why,
			"benefits":  input.Benefits,
			"changes":   input.Changes,
		}).
		FirstOrCreate(&mission).Error
	if err != nil {
		return nil, err
	}
	return &mission, nil
}
