package models

// Recipe is a single catalog entry. Recipes are owned by the catalog and never
// mutated by the planner.
type Recipe struct {
	ID          int      `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Cuisine     string   `json:"cuisine" yaml:"cuisine"`
	ProteinType string   `json:"proteinType" yaml:"proteinType"`
	RiceType    string   `json:"riceType" yaml:"riceType"`
	Setting     string   `json:"setting" yaml:"setting"`
	RiceAmount  string   `json:"riceAmount" yaml:"riceAmount"` // contains the "2" batch marker
	Liquid      string   `json:"liquid" yaml:"liquid"`         // contains the "2" batch marker
	Protein     string   `json:"protein" yaml:"protein"`
	Veggies     string   `json:"veggies" yaml:"veggies"`
	Sauces      string   `json:"sauces" yaml:"sauces"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

type SpiceLabel string

const (
	SpiceMild   SpiceLabel = "Mild"
	SpiceMedium SpiceLabel = "Medium"
	SpiceHot    SpiceLabel = "Hot"
)

// SpiceLevel is derived from a recipe's sauces and tags; it is never stored.
type SpiceLevel struct {
	Label SpiceLabel `json:"label"`
	Score int        `json:"score"` // 0 mild, 1 medium, 2 hot
}
