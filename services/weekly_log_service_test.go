package services_test

import (
	"testing"

	"github.com/JavaChrist/in-shape/models"
	"github.com/JavaChrist/in-shape/services"

	"github.com/stretchr/testify/require"
)

func TestWeeklyLogService_UnseenWeekReadsEmpty(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, "week-empty@test.local")
	svc := services.NewWeeklyLogService(db)

	sheet, err := svc.GetWeek(student.ID, 3)
	require.NoError(t, err)
	require.Len(t, sheet.Days, models.DaysPerWeek)
	for _, day := range sheet.Days {
		require.Empty(t, day.Breakfast)
		require.Empty(t, day.Bedtime)
	}

	// Reading must not persist anything.
	var count int64
	require.NoError(t, db.Model(&models.WeeklyLogSheet{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestWeeklyLogService_FirstEditMaterializesWeek(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, "week-edit@test.local")
	svc := services.NewWeeklyLogService(db)

	sheet, err := svc.UpdateDay(student.ID, 3, 2, services.DayInput{
		Dinner: "fish and rice",
		Water:  "2L",
	})
	require.NoError(t, err)
	require.Len(t, sheet.Days, models.DaysPerWeek)
	require.Equal(t, "fish and rice", sheet.Day(2).Dinner)
	require.Equal(t, "2L", sheet.Day(2).Water)
	require.Empty(t, sheet.Day(1).Dinner)

	var dayCount int64
	require.NoError(t, db.Model(&models.WeeklyLogDay{}).Count(&dayCount).Error)
	require.EqualValues(t, models.DaysPerWeek, dayCount)
}

func TestWeeklyLogService_EditOverwritesDay(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, "week-overwrite@test.local")
	svc := services.NewWeeklyLogService(db)

	_, err := svc.UpdateDay(student.ID, 0, 0, services.DayInput{Breakfast: "oats", Bedtime: "23:00"})
	require.NoError(t, err)
	sheet, err := svc.UpdateDay(student.ID, 0, 0, services.DayInput{Breakfast: "eggs"})
	require.NoError(t, err)

	require.Equal(t, "eggs", sheet.Day(0).Breakfast)
	// Update replaces the whole day slot, so the old bedtime is gone.
	require.Empty(t, sheet.Day(0).Bedtime)

	var sheetCount int64
	require.NoError(t, db.Model(&models.WeeklyLogSheet{}).Count(&sheetCount).Error)
	require.EqualValues(t, 1, sheetCount)
}

func TestWeeklyLogService_WeeksAreIndependent(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, "week-isolated@test.local")
	svc := services.NewWeeklyLogService(db)

	_, err := svc.UpdateDay(student.ID, 1, 0, services.DayInput{Lunch: "salad"})
	require.NoError(t, err)

	other, err := svc.GetWeek(student.ID, 2)
	require.NoError(t, err)
	require.Empty(t, other.Day(0).Lunch)
}

func TestWeeklyLogService_RangeValidation(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, "week-range@test.local")
	svc := services.NewWeeklyLogService(db)

	_, err := svc.GetWeek(student.ID, -1)
	require.Error(t, err)
	_, err = svc.GetWeek(student.ID, models.MaxWeek+1)
	require.Error(t, err)

	_, err = svc.UpdateDay(student.ID, 0, -1, services.DayInput{})
	require.Error(t, err)
	_, err = svc.UpdateDay(student.ID, 0, models.DaysPerWeek, services.DayInput{})
	require.Error(t, err)

	// Boundary weeks are both valid.
	_, err = svc.GetWeek(student.ID, 0)
	require.NoError(t, err)
	_, err = svc.GetWeek(student.ID, models.MaxWeek)
	require.NoError(t, err)
}
