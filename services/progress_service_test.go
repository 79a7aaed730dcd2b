package services_test

import (
	"testing"

	"github.com/JavaChrist/in-shape/models"
	"github.com/JavaChrist/in-shape/services"

	"github.com/stretchr/testify/require"
)

func TestWeeklyFillRate_Nutrition(t *testing.T) {
	sheet := models.EmptyWeek(1, 3)
	// Monday, Wednesday and Friday each have a single meal slot filled.
	sheet.Day(0).Breakfast = "oats"
	sheet.Day(2).Dinner = "fish and rice"
	sheet.Day(4).Snack = "apple"

	rate, err := services.WeeklyFillRate(sheet, services.CategoryNutrition)
	require.NoError(t, err)
	require.Equal(t, 43, rate)
}

func TestWeeklyFillRate_SleepNeedsBothEnds(t *testing.T) {
	sheet := models.EmptyWeek(1, 3)
	sheet.Day(0).Bedtime = "22:30"
	sheet.Day(0).Waketime = "06:45"
	sheet.Day(1).Bedtime = "23:00" // no waketime, does not count

	rate, err := services.WeeklyFillRate(sheet, services.CategorySleep)
	require.NoError(t, err)
	require.Equal(t, 14, rate)
}

func TestWeeklyFillRate_Hydration(t *testing.T) {
	sheet := models.EmptyWeek(1, 3)
	sheet.Day(3).Water = "2L"

	rate, err := services.WeeklyFillRate(sheet, services.CategoryHydration)
	require.NoError(t, err)
	require.Equal(t, 14, rate)
}

func TestWeeklyFillRate_EmptyWeek(t *testing.T) {
	sheet := models.EmptyWeek(1, 0)
	for _, cat := range []string{services.CategoryNutrition, services.CategorySleep, services.CategoryHydration} {
		rate, err := services.WeeklyFillRate(sheet, cat)
		require.NoError(t, err)
		require.Equal(t, 0, rate)
	}
}

func TestWeeklyFillRate_WhitespaceDoesNotCount(t *testing.T) {
	sheet := models.EmptyWeek(1, 0)
	sheet.Day(0).Lunch = "   "
	sheet.Day(1).Water = "\t"

	for _, cat := range []string{services.CategoryNutrition, services.CategoryHydration} {
		rate, err := services.WeeklyFillRate(sheet, cat)
		require.NoError(t, err)
		require.Equal(t, 0, rate)
	}
}

func TestWeeklyFillRate_FullWeek(t *testing.T) {
	sheet := models.EmptyWeek(1, 0)
	for d := 0; d < models.DaysPerWeek; d++ {
		day := sheet.Day(d)
		day.Breakfast = "toast"
		day.Water = "1.5L"
		day.Bedtime = "23:00"
		day.Waketime = "07:00"
	}

	for _, cat := range []string{services.CategoryNutrition, services.CategorySleep, services.CategoryHydration} {
		rate, err := services.WeeklyFillRate(sheet, cat)
		require.NoError(t, err)
		require.Equal(t, 100, rate)
	}
}

func TestWeeklyFillRate_Idempotent(t *testing.T) {
	sheet := models.EmptyWeek(1, 5)
	sheet.Day(2).Breakfast = "eggs"

	first, err := services.WeeklyFillRate(sheet, services.CategoryNutrition)
	require.NoError(t, err)
	second, err := services.WeeklyFillRate(sheet, services.CategoryNutrition)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestWeeklyFillRate_UnknownCategory(t *testing.T) {
	_, err := services.WeeklyFillRate(models.EmptyWeek(1, 0), "mood")
	require.Error(t, err)
}

func TestWeeklySummary(t *testing.T) {
	sheet := models.EmptyWeek(1, 2)
	sheet.Day(0).Breakfast = "oats"
	sheet.Day(1).Water = "2L"

	summary := services.WeeklySummary(sheet)
	require.Equal(t, map[string]int{
		services.CategoryNutrition: 14,
		services.CategorySleep:     0,
		services.CategoryHydration: 14,
	}, summary)
}
