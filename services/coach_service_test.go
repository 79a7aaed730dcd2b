package services_test

import (
	"testing"
	"time"

	"github.com/JavaChrist/in-shape/models"
	"github.com/JavaChrist/in-shape/services"

	"github.com/stretchr/testify/require"
)

func TestCoachService_StudentAccessControl(t *testing.T) {
	db := newTestDB(t)
	coach := createCoach(t, db, "coach-acl@test.local", "AA11BB")
	other := createCoach(t, db, "coach-acl-other@test.local", "BB22CC")
	student := createStudent(t, db, "student-acl@test.local")
	linkStudent(t, db, student, coach)
	svc := services.NewCoachService(db)

	got, err := svc.Student(coach.ID, student.ID)
	require.NoError(t, err)
	require.Equal(t, student.ID, got.ID)

	_, err = svc.Student(other.ID, student.ID)
	require.ErrorIs(t, err, services.ErrForbidden)

	_, err = svc.Student(coach.ID, 404)
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestCoachService_StudentsSortedByName(t *testing.T) {
	db := newTestDB(t)
	coach := createCoach(t, db, "coach-list@test.local", "CC33DD")
	svc := services.NewCoachService(db)

	for _, name := range []string{"Zoe", "Anna", "Marc"} {
		student := &models.User{
			Email:    name + "-list@test.local",
			Password: "x",
			Name:     name,
			Role:     models.RoleStudent,
			CoachID:  &coach.ID,
		}
		require.NoError(t, db.Create(student).Error)
	}

	students, err := svc.Students(coach.ID)
	require.NoError(t, err)
	require.Len(t, students, 3)
	require.Equal(t, "Anna", students[0].Name)
	require.Equal(t, "Marc", students[1].Name)
	require.Equal(t, "Zoe", students[2].Name)
}

func TestCoachService_StudentOverview(t *testing.T) {
	db := newTestDB(t)
	coach := createCoach(t, db, "coach-ov@test.local", "DD44EE")
	student := createStudent(t, db, "student-ov@test.local")
	linkStudent(t, db, student, coach)

	_, err := services.NewWeightService(db).Append(student.ID, 88, "", time.Time{})
	require.NoError(t, err)
	_, err = services.NewMeasurementService(db).Create(student.ID, services.MeasurementInput{
		BicepsMm: 8, TricepsMm: 12, SubscapularMm: 15, SuprailiacMm: 10,
	})
	require.NoError(t, err)
	_, err = services.NewWeeklyLogService(db).UpdateDay(student.ID, 1, 0, services.DayInput{Breakfast: "oats"})
	require.NoError(t, err)
	require.NoError(t, services.NewHabitService(db).SetCompletion(student.ID, "diet1", 1, true))

	overview, err := services.NewCoachService(db).StudentOverview(coach.ID, student.ID, 1)
	require.NoError(t, err)

	profile, ok := overview["student"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, student.Name, profile["name"])
	require.Equal(t, 88.0, profile["weight_kg"])

	require.NotNil(t, overview["latest_measurement"])
	require.Equal(t, 1, overview["week"])
	require.Equal(t, 100/len(models.HabitCatalogue), overview["habit_score"])

	rates, ok := overview["fill_rates"].(map[string]int)
	require.True(t, ok)
	require.Equal(t, 14, rates[services.CategoryNutrition])
}

func TestCoachService_OverviewForbiddenWhenUnlinked(t *testing.T) {
	db := newTestDB(t)
	coach := createCoach(t, db, "coach-ov-unlinked@test.local", "EE55FF")
	student := createStudent(t, db, "student-ov-unlinked@test.local")
	svc := services.NewCoachService(db)

	_, err := svc.StudentOverview(coach.ID, student.ID, 0)
	require.ErrorIs(t, err, services.ErrForbidden)
}
