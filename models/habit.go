package models

import "gorm.io/gorm"

const (
	HabitCategoryDiet       = "diet"
	HabitCategorySleep      = "sleep"
	HabitCategoryTraining   = "training"
	HabitCategoryReflection = "reflection"
)

// Habit is one statement from the fixed coaching catalogue. The catalogue is
// immutable at runtime; only per-week completion flags change.
type Habit struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Text     string `json:"text"`
}

// HabitCatalogue lists every trackable habit, grouped by category.
var HabitCatalogue = []Habit{
	{ID: "diet1", Category: HabitCategoryDiet, Text: "Focused on a savoury breakfast"},
	{ID: "diet2", Category: HabitCategoryDiet, Text: "Split my plates 50% vegetables + 25% protein + 25% carbs"},
	{ID: "diet3", Category: HabitCategoryDiet, Text: "Did not snack between meals"},
	{ID: "diet4", Category: HabitCategoryDiet, Text: "Drank 2 litres of water per day"},
	{ID: "diet5", Category: HabitCategoryDiet, Text: "Did not drink alcohol"},
	{ID: "diet6", Category: HabitCategoryDiet, Text: "Hit the daily protein target set by my coach"},
	{ID: "diet7", Category: HabitCategoryDiet, Text: "Completed a 24h fast"},
	{ID: "diet8", Category: HabitCategoryDiet, Text: "Ran carb cycling: 3 low days, 3 normal days, 1 fasting day"},

	{ID: "sleep1", Category: HabitCategorySleep, Text: "Slept at regular times"},
	{ID: "sleep2", Category: HabitCategorySleep, Text: "Had good quality sleep"},

	{ID: "train1", Category: HabitCategoryTraining, Text: "Walked every day, 6000 steps minimum"},
	{ID: "train2", Category: HabitCategoryTraining, Text: "Walked 3 times this week and hit 8000 steps at least once"},
	{ID: "train3", Category: HabitCategoryTraining, Text: "Completed 2 workout sessions"},
	{ID: "train4", Category: HabitCategoryTraining, Text: "Completed 3 workout sessions"},
	{ID: "train5", Category: HabitCategoryTraining, Text: "Increased my loads and followed my coach's recommendations"},

	{ID: "refl1", Category: HabitCategoryReflection, Text: "Asked my coach my questions for the week"},
	{ID: "refl2", Category: HabitCategoryReflection, Text: "Got answers and they are clear to me"},
	{ID: "refl3", Category: HabitCategoryReflection, Text: "Planned my week ahead"},
	{ID: "refl4", Category: HabitCategoryReflection, Text: "Measurably lost weight"},
	{ID: "refl5", Category: HabitCategoryReflection, Text: "Measurably lost waist size"},
	{ID: "refl6", Category: HabitCategoryReflection, Text: "Filled in my weekly sheet so my coach can review the week"},
	{ID: "refl7", Category: HabitCategoryReflection, Text: "Learned new things I can put into practice"},
}

// HabitByID looks up a catalogue entry; ok is false for unknown ids.
func HabitByID(id string) (Habit, bool) {
	for _, h := range HabitCatalogue {
		if h.ID == id {
			return h, true
		}
	}
	return Habit{}, false
}

// HabitCompletion is the sparse (user, habit, week) -> completed mapping.
// Rows are only ever created and flipped, never deleted.
type HabitCompletion struct {
	gorm.Model
	UserID    uint   `gorm:"index:idx_habit_user_week_id,unique;not null"`
	HabitID   string `gorm:"index:idx_habit_user_week_id,unique;size:16;not null"`
	Week      int    `gorm:"index:idx_habit_user_week_id,unique;not null"`
	Completed bool
}
