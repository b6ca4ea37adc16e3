package shopping

import (
	"fmt"
	"strings"

	"github.com/julianstephens/mealweek/internal/models"
)

// PickLabel is the 1-based display name for a slot index.
func PickLabel(index int) string {
	return fmt.Sprintf("Pick %d", index+1)
}

// Line renders one item with the picks that need it, e.g. "Garlic (Pick 1, Pick 3)".
func Line(it models.ShoppingItem) string {
	picks := make([]string, len(it.Picks))
	for i, p := range it.Picks {
		picks[i] = PickLabel(p)
	}
	return fmt.Sprintf("%s (%s)", it.Label, strings.Join(picks, ", "))
}

// Text renders non-empty sections as a plain-text checklist.
func Text(sections []models.ShoppingSection) string {
	var b strings.Builder
	for _, s := range sections {
		if len(s.Items) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s.Title + "\n")
		for _, it := range s.Items {
			b.WriteString("- " + Line(it) + "\n")
		}
	}
	return b.String()
}

// Count returns the number of items across all sections.
func Count(sections []models.ShoppingSection) int {
	n := 0
	for _, s := range sections {
		n += len(s.Items)
	}
	return n
}
