package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/JavaChrist/in-shape/models"
)

// Fill-rate categories over a weekly log sheet.
const (
	CategoryNutrition = "nutrition"
	CategorySleep     = "sleep"
	CategoryHydration = "hydration"
)

// WeeklyFillRate returns the percentage (0..100, rounded to the nearest
// integer) of the week's 7 day slots with data for the category. A week with
// no materialized data yields 0.
func WeeklyFillRate(sheet *models.WeeklyLogSheet, category string) (int, error) {
	var filled func(*models.WeeklyLogDay) bool
	switch category {
	case CategoryNutrition:
		filled = nutritionFilled
	case CategorySleep:
		filled = sleepFilled
	case CategoryHydration:
		filled = hydrationFilled
	default:
		return 0, fmt.Errorf("unknown category %q", category)
	}

	count := 0
	for i := range sheet.Days {
		if filled(&sheet.Days[i]) {
			count++
		}
	}
	return int(math.Round(float64(count) / models.DaysPerWeek * 100)), nil
}

// WeeklySummary computes the fill rate for every category at once.
func WeeklySummary(sheet *models.WeeklyLogSheet) map[string]int {
	summary := make(map[string]int, 3)
	for _, cat := range []string{CategoryNutrition, CategorySleep, CategoryHydration} {
		rate, _ := WeeklyFillRate(sheet, cat)
		summary[cat] = rate
	}
	return summary
}

// A day counts for nutrition when any meal slot holds text.
func nutritionFilled(d *models.WeeklyLogDay) bool {
	return hasText(d.Breakfast) || hasText(d.Lunch) || hasText(d.Snack) || hasText(d.Dinner)
}

// Sleep needs both ends of the night recorded.
func sleepFilled(d *models.WeeklyLogDay) bool {
	return hasText(d.Bedtime) && hasText(d.Waketime)
}

func hydrationFilled(d *models.WeeklyLogDay) bool {
	return hasText(d.Water)
}

func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}
