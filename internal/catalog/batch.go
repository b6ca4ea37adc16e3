package catalog

import (
	"regexp"
	"strings"

	"github.com/julianstephens/mealweek/internal/constants"
	"github.com/julianstephens/mealweek/internal/models"
)

var halfBatchRules = []struct {
	pattern *regexp.Regexp
	repl    string
}{
	{regexp.MustCompile(`(?i)2 rice-cooker cups`), "1 rice-cooker cup"},
	{regexp.MustCompile(`(?i)2 rice cooker cups`), "1 rice-cooker cup"},
	{regexp.MustCompile(`(?i)2-cup line`), "1-cup line"},
	{regexp.MustCompile(`(?i)2 cup line`), "1-cup line"},
	{regexp.MustCompile(`(?i)2 cups`), "1 cup"},
	{regexp.MustCompile(`(?i)2-cup`), "1-cup"},
}

// AdjustForBatch rewrites the "2" quantity marker in rice/liquid text for a
// half batch. Any batch other than "1" leaves the text untouched.
func AdjustForBatch(text, batch string) string {
	if batch != constants.BatchHalf {
		return text
	}
	for _, rule := range halfBatchRules {
		text = rule.pattern.ReplaceAllString(text, rule.repl)
	}
	return text
}

func BatchLabel(batch string) string {
	if batch == constants.BatchHalf {
		return "Half batch (1 cup)"
	}
	return "Standard batch (2 cups)"
}

// CopyText renders the plain-text ingredient block used for sharing a recipe.
func CopyText(r models.Recipe, batch string) string {
	return strings.Join([]string{
		r.Name,
		"Protein: " + r.Protein,
		"Veggies: " + r.Veggies,
		"Sauces: " + r.Sauces,
		"Rice: " + AdjustForBatch(r.RiceAmount, batch),
		"Liquid: " + AdjustForBatch(r.Liquid, batch),
	}, "\n")
}
