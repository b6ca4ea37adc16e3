package catalog

import "github.com/julianstephens/mealweek/internal/models"

// Option is one filter chip: constraint value, emoji and short label.
type Option struct {
	Value string
	Emoji string
	Label string
}

var ProteinOptions = []Option{
	{models.All, "🍱", "All"},
	{"Tofu", "🧊", "Tofu"},
	{"Chicken", "🍗", "Chicken"},
	{"Beef", "🥩", "Beef"},
	{"Pork", "🥓", "Pork"},
	{"Seafood", "🐟", "Seafood"},
	{"Vegan", "🥦", "Vegan"},
	{"Egg", "🥚", "Egg"},
	{"Mixed", "🍲", "Mixed"},
}

var CuisineOptions = []Option{
	{models.All, "🌏", "All"},
	{"Chinese", "🥡", "Chinese"},
	{"Japanese", "🍱", "Japanese"},
	{"Korean", "🔥", "Korean"},
	{"Thai", "🌶️", "Thai"},
	{"Vietnamese", "🍜", "Viet"},
	{"Indian", "🪔", "Indian"},
	{"Mediterranean", "🌿", "Med"},
	{"Mexican", "🌮", "Mex"},
	{"Fusion", "✨", "Fusion"},
	{"Other", "🍽️", "Other"},
}

var SpiceOptions = []Option{
	{models.All, "🍚", "Any heat"},
	{"mild", "🙂", "Mild"},
	{"medium", "🌶️", "Medium"},
	{"hot", "🔥", "Hot"},
}

// ProteinEmoji falls back to 🍱 for unknown protein types.
func ProteinEmoji(proteinType string) string {
	return lookupEmoji(ProteinOptions, proteinType, "🍱")
}

// CuisineEmoji falls back to 🌏 for unknown cuisines.
func CuisineEmoji(cuisine string) string {
	return lookupEmoji(CuisineOptions, cuisine, "🌏")
}

func lookupEmoji(options []Option, value, fallback string) string {
	if value == models.All {
		return fallback
	}
	for _, o := range options {
		if o.Value == value {
			return o.Emoji
		}
	}
	return fallback
}
