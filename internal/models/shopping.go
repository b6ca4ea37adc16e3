package models

type ShoppingGroup string

const (
	GroupRice    ShoppingGroup = "rice"
	GroupProtein ShoppingGroup = "protein"
	GroupProduce ShoppingGroup = "produce"
	GroupPantry  ShoppingGroup = "pantry"
	GroupFinish  ShoppingGroup = "finish"
)

// ShoppingGroups is the fixed emission order of shopping list sections.
var ShoppingGroups = []ShoppingGroup{GroupRice, GroupProtein, GroupProduce, GroupPantry, GroupFinish}

// Title returns the section heading for the group.
func (g ShoppingGroup) Title() string {
	switch g {
	case GroupRice:
		return "Rice & Liquid"
	case GroupProtein:
		return "Protein"
	case GroupProduce:
		return "Produce & Aromatics"
	case GroupPantry:
		return "Sauces & Pantry"
	case GroupFinish:
		return "Finishers"
	default:
		return string(g)
	}
}

type ShoppingItem struct {
	Group ShoppingGroup `json:"group"`
	Key   string        `json:"key"`
	Label string        `json:"label"`
	Picks []int         `json:"picks"` // sorted slot indices, 0-based
}

type ShoppingSection struct {
	Group ShoppingGroup  `json:"group"`
	Title string         `json:"title"`
	Items []ShoppingItem `json:"items"`
}
