package shopping

import (
	"regexp"
	"strings"
)

// Rule maps any phrase matching Pattern to one canonical shopping label.
// Finish routes pantry hits to the Finishers group even without a finish cue.
type Rule struct {
	Pattern *regexp.Regexp
	Label   string
	Finish  bool
}

// Key is the dedup key shared by every phrase the rule matches.
func (r Rule) Key() string {
	return strings.ToLower(r.Label)
}

// RuleTable is evaluated top to bottom; the first matching rule wins, so more
// specific patterns must come before general ones.
type RuleTable []Rule

func (t RuleTable) Find(text string) (Rule, bool) {
	lower := strings.ToLower(text)
	for _, r := range t {
		if r.Pattern.MatchString(lower) {
			return r, true
		}
	}
	return Rule{}, false
}

func rule(pattern, label string) Rule {
	return Rule{Pattern: regexp.MustCompile(pattern), Label: label}
}

func finisher(pattern, label string) Rule {
	r := rule(pattern, label)
	r.Finish = true
	return r
}

var ProteinRules = RuleTable{
	rule(`silken tofu`, "Silken tofu"),
	rule(`(?:firm|pressed) tofu`, "Firm tofu"),
	rule(`tofu puff`, "Tofu puffs"),
	rule(`tofu`, "Tofu"),
	rule(`chicken thigh`, "Chicken thighs"),
	rule(`chicken breast`, "Chicken breast"),
	rule(`chicken (?:wing|drumstick|leg)`, "Chicken drumsticks / wings"),
	rule(`(?:ground|minced) chicken|chicken mince`, "Ground chicken"),
	rule(`chicken`, "Chicken"),
	rule(`(?:ground|minced) beef|beef mince`, "Ground beef"),
	rule(`beef|ribeye|sirloin|steak`, "Beef"),
	rule(`(?:ground|minced) pork|pork mince`, "Ground pork"),
	rule(`pork belly`, "Pork belly"),
	rule(`chinese sausage|lap cheong`, "Chinese sausage"),
	rule(`pork`, "Pork"),
	rule(`shrimp|prawn`, "Shrimp"),
	rule(`salmon`, "Salmon"),
	rule(`tuna`, "Tuna"),
	rule(`chickpea`, "Chickpeas"),
	rule(`black bean`, "Black beans"),
	rule(`\beggs?\b`, "Eggs"),
}

var ProduceRules = RuleTable{
	rule(`scallion|green onion|spring onion`, "Scallions / green onion"),
	rule(`garlic`, "Garlic"),
	rule(`ginger`, "Ginger"),
	rule(`lemongrass`, "Lemongrass"),
	rule(`shallot`, "Shallots"),
	rule(`onion`, "Onion"),
	rule(`spinach`, "Spinach"),
	rule(`bok choy|pak choi`, "Bok choy"),
	rule(`pickled carrot|do chua`, "Pickled carrots"),
	rule(`carrot`, "Carrots"),
	rule(`shiitake`, "Shiitake mushrooms"),
	rule(`mushroom`, "Mushrooms"),
	rule(`bell pepper|capsicum`, "Bell pepper"),
	rule(`jalape[nñ]o`, "Jalapeño"),
	rule(`\bchil(?:e|es|i|ies|li)\b`, "Fresh chilies"),
	rule(`broccoli`, "Broccoli"),
	rule(`cabbage`, "Cabbage"),
	rule(`kimchi`, "Kimchi"),
	rule(`bean sprout`, "Bean sprouts"),
	rule(`\bcorn\b`, "Corn"),
	rule(`\bpeas?\b`, "Peas"),
	rule(`edamame`, "Edamame"),
	rule(`zucchini|courgette`, "Zucchini"),
	rule(`eggplant|aubergine`, "Eggplant"),
	rule(`cherry tomato`, "Cherry tomatoes"),
	rule(`tomato`, "Tomatoes"),
	rule(`sweet potato`, "Sweet potato"),
	rule(`potato`, "Potatoes"),
	rule(`squash|pumpkin`, "Squash"),
	rule(`cucumber`, "Cucumber"),
	rule(`pineapple`, "Pineapple"),
	rule(`avocado`, "Avocado"),
	rule(`cilantro|coriander leaves`, "Cilantro"),
	rule(`thai basil`, "Thai basil"),
	rule(`basil`, "Basil"),
	rule(`\bmint\b`, "Mint"),
	rule(`parsley`, "Parsley"),
	rule(`bay lea`, "Bay leaves"),
	rule(`\bnori\b`, "Nori sheets"),
	rule(`\blimes?\b`, "Limes"),
	rule(`\blemons?\b`, "Lemons"),
}

var PantryRules = RuleTable{
	rule(`dark soy`, "Dark soy sauce"),
	rule(`light soy`, "Light soy sauce"),
	rule(`tamari`, "Tamari"),
	rule(`\bsoy\b`, "Soy sauce"),
	rule(`oyster sauce`, "Oyster sauce"),
	rule(`fish sauce`, "Fish sauce"),
	rule(`hoisin`, "Hoisin sauce"),
	rule(`shaoxing|rice wine|cooking wine`, "Shaoxing wine"),
	rule(`mirin`, "Mirin"),
	rule(`\bsake\b`, "Sake"),
	rule(`rice vinegar`, "Rice vinegar"),
	rule(`black vinegar|chinkiang`, "Black vinegar"),
	rule(`vinegar`, "Vinegar"),
	rule(`sesame oil`, "Sesame oil"),
	finisher(`sesame seed`, "Sesame seeds"),
	rule(`gochujang`, "Gochujang"),
	rule(`gochugaru`, "Gochugaru"),
	rule(`doubanjiang|chili bean paste`, "Doubanjiang"),
	rule(`sambal`, "Sambal oelek"),
	rule(`sriracha`, "Sriracha"),
	rule(`curry paste|masala paste`, "Curry paste"),
	rule(`curry powder`, "Curry powder"),
	rule(`garam masala`, "Garam masala"),
	finisher(`chil[ie] crisp`, "Chili crisp"),
	finisher(`chil[ie] oil`, "Chili oil"),
	rule(`chil[ie] flake|pepper flake`, "Chili flakes"),
	rule(`chipotle`, "Chipotle in adobo"),
	rule(`miso`, "Miso"),
	rule(`\bmsg\b`, "MSG"),
	rule(`sichuan pepper`, "Sichuan peppercorns"),
	rule(`black pepper`, "Black pepper"),
	rule(`cumin`, "Cumin"),
	rule(`turmeric`, "Turmeric"),
	rule(`paprika`, "Paprika"),
	rule(`oregano`, "Dried oregano"),
	rule(`five[- ]spice`, "Five-spice powder"),
	rule(`(?:brown|palm|cane) sugar`, "Brown sugar"),
	rule(`honey`, "Honey"),
	rule(`butter`, "Butter"),
	rule(`coconut milk`, "Coconut milk"),
	rule(`cream`, "Cream"),
	rule(`yogh?urt`, "Yogurt"),
	rule(`neutral oil|vegetable oil|canola`, "Neutral oil"),
	rule(`olive oil`, "Olive oil"),
	rule(`kewpie|\bmayo`, "Kewpie mayo"),
	finisher(`furikake`, "Furikake"),
	finisher(`\bnori\b`, "Nori"),
	finisher(`cashew`, "Cashews"),
	finisher(`peanut`, "Peanuts"),
	rule(`feta`, "Feta"),
	rule(`parmesan`, "Parmesan"),
	rule(`\blimes?\b`, "Limes"),
	rule(`\blemons?\b`, "Lemons"),
}

// stockRe captures the flavour of a "<flavour> stock" or "<flavour> broth".
var stockRe = regexp.MustCompile(`\b(chicken|vegetable|veggie|beef|mushroom|pork|fish|bone)\s+(?:stock|broth)\b`)

var LiquidRules = RuleTable{
	rule(`coconut milk`, "Coconut milk"),
	rule(`coconut water`, "Coconut water"),
	rule(`\bdashi\b`, "Dashi"),
}

var (
	finishRe      = regexp.MustCompile(`(?i)\b(?:finish(?:ing)?|garnish|after cooking|to serve|for serving|topping)\b`)
	instructionRe = regexp.MustCompile(`(?i)\b(?:fill(?:s|ed|ing)?|mix(?:es|ed|ing)?|stir(?:s|red|ring)?|reduc(?:e|es|ed|ing)|whisk(?:s|ed|ing)?|combin(?:e|es|ed|ing)|pour(?:s|ed|ing)?|add(?:s|ed|ing)?|toss(?:es|ed|ing)?|simmer(?:s|ed|ing)?|let|cook|shap(?:e|es|ed|ing)|season|taste|rest|bring|cover(?:s|ed)?|marinat(?:e|es|ed|ing))\b`)
	toTasteRe     = regexp.MustCompile(`(?i)\bto taste\b`)
	genericRe     = regexp.MustCompile(`(?i)^(?:(?:cold|hot|warm|plain|kosher|sea|table|white|granulated)\s+)?(?:water|salt|sugar)$`)
)
