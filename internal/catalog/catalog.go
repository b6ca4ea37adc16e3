// Package catalog holds the read-only recipe collection the planner draws from.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/mealweek/internal/models"
)

//go:embed data/recipes.json
var dataFS embed.FS

// Catalog is an ordered, immutable sequence of recipes. It is safe for
// concurrent reads.
type Catalog struct {
	recipes []models.Recipe
	index   map[int]int
}

// New builds a catalog from recipes, preserving their order. Recipe ids must be unique.
func New(recipes []models.Recipe) (*Catalog, error) {
	c := &Catalog{
		recipes: make([]models.Recipe, len(recipes)),
		index:   make(map[int]int, len(recipes)),
	}
	for i, r := range recipes {
		if _, dup := c.index[r.ID]; dup {
			return nil, fmt.Errorf("duplicate recipe id %d", r.ID)
		}
		r.Tags = append([]string(nil), r.Tags...)
		c.recipes[i] = r
		c.index[r.ID] = i
	}
	return c, nil
}

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	data, err := dataFS.ReadFile("data/recipes.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read bundled recipes: %w", err)
	}
	return Parse(data, ".json")
}

// LoadFile reads a catalog from a JSON or YAML file, chosen by extension.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes a recipe list. ext selects the format (".yaml"/".yml" or JSON otherwise).
func Parse(data []byte, ext string) (*Catalog, error) {
	var recipes []models.Recipe
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &recipes); err != nil {
			return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &recipes); err != nil {
			return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
		}
	}
	return New(recipes)
}

// All returns a copy of the recipes in catalog order.
func (c *Catalog) All() []models.Recipe {
	out := make([]models.Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

func (c *Catalog) Len() int {
	return len(c.recipes)
}

// ByID looks up a recipe.
func (c *Catalog) ByID(id int) (models.Recipe, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Recipe{}, false
	}
	return c.recipes[i], true
}

// Search returns recipes whose name, protein, veggies, sauces or tags contain
// query (case-insensitive), in catalog order. An empty query matches everything.
func (c *Catalog) Search(query string) []models.Recipe {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.All()
	}
	var out []models.Recipe
	for _, r := range c.recipes {
		if strings.Contains(haystack(r), query) {
			out = append(out, r)
		}
	}
	return out
}

func haystack(r models.Recipe) string {
	return strings.ToLower(strings.Join([]string{
		r.Name, r.Protein, r.Veggies, r.Sauces, strings.Join(r.Tags, " "),
	}, " "))
}
