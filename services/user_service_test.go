package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/JavaChrist/in-shape/models"
	"github.com/JavaChrist/in-shape/services"

	"github.com/stretchr/testify/require"
)

func TestGetUserProfile_StudentShape(t *testing.T) {
	db := newTestDB(t)
	coach := createCoach(t, db, "profile-coach@test.local", "FF66GG")
	student := createStudent(t, db, "profile-student@test.local")
	linkStudent(t, db, student, coach)

	_, err := services.NewWeightService(db).Append(student.ID, 70, "", time.Time{})
	require.NoError(t, err)

	profile, err := services.GetUserProfile(student.ID)
	require.NoError(t, err)
	require.Equal(t, 70.0, profile["weight_kg"])
	require.Equal(t, 22.9, profile["bmi"])
	require.Equal(t, "normal", profile["bmi_category"])
	require.Equal(t, coach.ID, profile["coach_id"])
	require.NotContains(t, profile, "coach_code")
}

func TestGetUserProfile_CoachShowsJoinCode(t *testing.T) {
	db := newTestDB(t)
	coach := createCoach(t, db, "profile-code@test.local", "GG77HH")

	profile, err := services.GetUserProfile(coach.ID)
	require.NoError(t, err)
	require.Equal(t, "GG77HH", profile["coach_code"])
	require.NotContains(t, profile, "coach_id")
}

func TestUpdateUserProfile_PatchesAndRefreshesBMI(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, "profile-update@test.local")

	_, err := services.NewWeightService(db).Append(student.ID, 70, "", time.Time{})
	require.NoError(t, err)

	err = services.UpdateUserProfile(context.Background(), student.ID, services.ProfileInput{
		Name:     "Updated Name",
		HeightCm: 180,
	})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.First(&user, student.ID).Error)
	require.Equal(t, "Updated Name", user.Name)
	require.Equal(t, 180.0, user.HeightCm)
	// Same weight at the new height.
	require.InDelta(t, 21.6, user.BMI, 0.05)
	// Untouched fields keep their values.
	require.Equal(t, 25, user.Age)
}

func TestUpdateUserProfile_IncompleteInputsClearBMI(t *testing.T) {
	db := newTestDB(t)
	student := &models.User{
		Email:    "profile-nobmi@test.local",
		Password: "x",
		Name:     "No Height",
		Role:     models.RoleStudent,
	}
	require.NoError(t, db.Create(student).Error)

	err := services.UpdateUserProfile(context.Background(), student.ID, services.ProfileInput{Name: "Still No Height"})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.First(&user, student.ID).Error)
	require.Equal(t, 0.0, user.BMI)
}

func TestMission_DefaultsEmpty(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, "mission-empty@test.local")

	mission, err := services.GetMission(student.ID)
	require.NoError(t, err)
	require.Equal(t, student.ID, mission.UserID)
	require.Empty(t, mission.Objective)

	// Reading must not create a row.
	var count int64
	require.NoError(t, db.Model(&models.MissionTransformation{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestMission_Upsert(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, "mission-upsert@test.local")

	_, err := services.UpsertMission(student.ID, services.MissionInput{
		Objective: "drop to 80kg",
		Why:       "energy",
	})
	require.NoError(t, err)

	updated, err := services.UpsertMission(student.ID, services.MissionInput{
		Objective: "drop to 78kg",
		Why:       "energy",
		Benefits:  "better sleep",
	})
	require.NoError(t, err)
	require.Equal(t, "drop to 78kg", updated.Objective)
	require.Equal(t, "better sleep", updated.Benefits)

	// Upsert keeps a single row per user.
	var count int64
	require.NoError(t, db.Model(&models.MissionTransformation{}).Where("user_id = ?", student.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
