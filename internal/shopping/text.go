package shopping

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	numberRe   = regexp.MustCompile(`^(?:\d+(?:[./]\d+)?|[½¼¾⅓⅔])(?:-(?:\d+(?:[./]\d+)?))?$`)
	parensRe   = regexp.MustCompile(`\([^()]*\)`)
	conjRe     = regexp.MustCompile(`(?i)\s+(?:and|&|\+|plus)\s+`)
	orRe       = regexp.MustCompile(`(?i)\s+or\s+`)
	spacesRe   = regexp.MustCompile(`\s+`)
	prepPhrase = regexp.MustCompile(`(?i)\b(?:cut in half|cut into [a-z-]+(?: pieces)?|to serve|for serving|to garnish|for garnish|to finish|for finishing|once cooled|bite-sized?|marinated in|splash of|drizzle of|pinch of|dash of|knob of)\b`)
)

var units = set(
	"g", "kg", "gram", "grams", "oz", "ounce", "ounces", "lb", "lbs", "pound", "pounds", "ml", "l",
	"cup", "cups", "tbsp", "tsp", "tablespoon", "tablespoons", "teaspoon", "teaspoons",
	"block", "blocks", "can", "cans", "tin", "tins", "clove", "cloves", "bunch", "bunches",
	"handful", "handfuls", "stalk", "stalks", "inch", "inches", "piece", "pieces", "slice", "slices",
	"pack", "packs", "package", "packages", "head", "heads", "pinch", "dash", "splash", "knob",
)

// prepWords never name an ingredient on their own; they describe how it is cut,
// stored or cooked.
var prepWords = set(
	"sliced", "diced", "minced", "chopped", "julienned", "grated", "smashed", "crushed", "zested",
	"shredded", "halved", "soaked", "rinsed", "drained", "peeled", "deveined", "trimmed", "cubed",
	"quartered", "torn", "thinly", "finely", "roughly", "coarsely", "optional", "fresh", "frozen",
	"baby", "boneless", "skinless", "bone-in", "skin-on", "cooked", "raw", "lean", "large", "small",
	"roasted", "toasted", "leftover",
)

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// splitTopLevel splits s on any rune in seps that is not inside parentheses.
func splitTopLevel(s string, seps string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case depth == 0 && strings.ContainsRune(seps, r):
			parts = append(parts, s[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	parts = append(parts, s[start:])

	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func stripParens(s string) string {
	for parensRe.MatchString(s) {
		s = parensRe.ReplaceAllString(s, " ")
	}
	return s
}

// stripQuantities drops numbers together with the unit words (and a trailing
// "of") that directly follow them.
func stripQuantities(s string) string {
	words := strings.Fields(s)
	out := words[:0]
	afterNumber := false
	for _, w := range words {
		lw := strings.ToLower(w)
		switch {
		case numberRe.MatchString(lw):
			afterNumber = true
			continue
		case afterNumber && (units[lw] || lw == "of"):
			continue
		}
		afterNumber = false
		out = append(out, w)
	}
	return strings.Join(out, " ")
}

func stripPrep(s string) string {
	s = prepPhrase.ReplaceAllString(s, " ")
	words := strings.Fields(s)
	out := words[:0]
	for _, w := range words {
		if !prepWords[strings.ToLower(strings.Trim(w, ".,"))] {
			out = append(out, w)
		}
	}
	return strings.Join(out, " ")
}

// tidy collapses whitespace and trims stray punctuation.
func tidy(s string) string {
	s = spacesRe.ReplaceAllString(s, " ")
	return strings.Trim(s, " .,:;-–")
}

// clean runs the shared cleanup used by every field: parenthesised asides,
// quantities and prep words are removed.
func clean(s string) string {
	return tidy(stripPrep(stripQuantities(stripParens(s))))
}

func splitConjunctions(s string) []string {
	var out []string
	for _, p := range conjRe.Split(s, -1) {
		if p = tidy(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// firstAlternative keeps "soy sauce" from "soy sauce or tamari".
func firstAlternative(s string) string {
	return tidy(orRe.Split(s, 2)[0])
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
