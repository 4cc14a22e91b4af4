package configs

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"preorder/entity"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type catalogFile struct {
	Meals []struct {
		ID       string `yaml:"id"`
		Name     string `yaml:"name"`
		Price    string `yaml:"price"`
		Category string `yaml:"category"`
		Calories int    `yaml:"calories"`
		Image    string `yaml:"image"`
	} `yaml:"meals"`
}

// LoadCatalog reads the meal catalog from path, or the embedded default when path is empty.
func LoadCatalog(path string) ([]entity.Meal, error) {
	raw := defaultCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		raw = b
	}
	return ParseCatalog(raw)
}

func ParseCatalog(raw []byte) ([]entity.Meal, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	seen := make(map[string]bool, len(doc.Meals))
	meals := make([]entity.Meal, 0, len(doc.Meals))
	for i, m := range doc.Meals {
		id := strings.TrimSpace(m.ID)
		if id == "" || strings.TrimSpace(m.Name) == "" {
			return nil, fmt.Errorf("catalog entry %d: id and name are required", i)
		}
		if seen[id] {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %q", i, id)
		}
		seen[id] = true

		price, err := decimal.NewFromString(m.Price)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %q: price: %w", id, err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("catalog entry %q: negative price", id)
		}
		meals = append(meals, entity.Meal{
			ID:       id,
			Name:     strings.TrimSpace(m.Name),
			Price:    price,
			Category: m.Category,
			Calories: m.Calories,
			ImageRef: m.Image,
		})
	}
	return meals, nil
}
