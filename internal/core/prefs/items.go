package prefs

// MealCategory groups favorite foods by meal.
type MealCategory string

const (
	Breakfast MealCategory = "Breakfast"
	Lunch     MealCategory = "Lunch"
	Dinner    MealCategory = "Dinner"
	Snacks    MealCategory = "Snacks"
)

// MealCategories is the label set for favorite foods.
var MealCategories = MustCategories(Breakfast, Lunch, Dinner, Snacks)

// FavoriteFood is one favorite food entry.
type FavoriteFood struct {
	Category MealCategory `yaml:"category"`
	FoodName string       `yaml:"food_name"`
}

// DislikeSeverity grades how strongly a food is disliked.
type DislikeSeverity string

const (
	MildDislike DislikeSeverity = "Mild dislike"
	WontEat     DislikeSeverity = "Absolutely won't eat"
)

// DislikeSeverities is the label set for disliked foods.
var DislikeSeverities = MustCategories(MildDislike, WontEat)

// DislikedFood is one disliked food entry.
type DislikedFood struct {
	Severity DislikeSeverity `yaml:"severity"`
	FoodName string          `yaml:"food_name"`
}

// AllergySeverity distinguishes intolerances from allergies.
type AllergySeverity string

const (
	MildIntolerance AllergySeverity = "Mild intolerance"
	SevereAllergy   AllergySeverity = "Severe allergy"
)

// AllergySeverities is the label set for allergies.
var AllergySeverities = MustCategories(MildIntolerance, SevereAllergy)

// Allergy is one allergy or intolerance entry.
type Allergy struct {
	Severity AllergySeverity `yaml:"severity"`
	FoodName string          `yaml:"food_name"`
}
