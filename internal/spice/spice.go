// Package spice derives a coarse heat level from a recipe's sauces and tags.
package spice

import (
	"regexp"
	"strings"

	"github.com/julianstephens/mealweek/internal/models"
)

var mediumPattern = regexp.MustCompile(`\bchil(?:e|es|i|ies|li)\b|gochujang|gochugaru|curry paste|sambal|sriracha|doubanjiang|harissa|jalape[nñ]o|chipotle|pepper flake`)

// Classify returns Hot when the text says "spicy", Medium when it names a
// chili-style ingredient, and Mild otherwise. The first matching rule wins.
func Classify(r models.Recipe) models.SpiceLevel {
	text := strings.ToLower(r.Sauces + " " + strings.Join(r.Tags, " "))
	switch {
	case strings.Contains(text, "spicy"):
		return models.SpiceLevel{Label: models.SpiceHot, Score: 2}
	case mediumPattern.MatchString(text):
		return models.SpiceLevel{Label: models.SpiceMedium, Score: 1}
	default:
		return models.SpiceLevel{Label: models.SpiceMild, Score: 0}
	}
}

// Key returns the lowercase label used by constraints ("mild", "medium", "hot").
func Key(r models.Recipe) string {
	return strings.ToLower(string(Classify(r).Label))
}

// Options lists the spice filter values in display order.
func Options() []string {
	return []string{models.All, "mild", "medium", "hot"}
}
