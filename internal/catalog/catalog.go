// Package catalog holds the static product option data consumed by the
// intake flow. The data is read-only input to the core and never mutated.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

//go:embed default.yaml
var defaultCatalog []byte

// PriceByQuote marks a custom option whose price requires a manual quote.
const PriceByQuote = "quote"

type Option struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Price       float64 `yaml:"price"`
	Description string  `yaml:"description"`
}

type CustomOption struct {
	ID               string  `yaml:"id"`
	Name             string  `yaml:"name"`
	Description      string  `yaml:"description"`
	Price            float64 `yaml:"price"`
	PriceCalculation string  `yaml:"price_calculation"`
}

type DeliverySettings struct {
	MinimumDays       int `yaml:"minimum_days"`
	MaxSelectableDays int `yaml:"max_selectable_days"`
}

type Catalog struct {
	Sizes             []Option         `yaml:"sizes"`
	Thicknesses       []Option         `yaml:"thicknesses"`
	Materials         []Option         `yaml:"materials"`
	Colors            []Option         `yaml:"colors"`
	MinimumQuantities map[string]int   `yaml:"minimum_quantities"`
	Delivery          DeliverySettings `yaml:"delivery"`
	CustomOptions     []CustomOption   `yaml:"custom_options"`
}

// Default parses the embedded catalog document.
func Default() (*Catalog, error) {
	return parse(defaultCatalog)
}

// Load reads the catalog from path, falling back to the embedded document
// when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	if len(c.Sizes) == 0 || len(c.Thicknesses) == 0 || len(c.Materials) == 0 || len(c.Colors) == 0 {
		return nil, fmt.Errorf("catalog is missing product options")
	}

	return &c, nil
}

func findOption(options []Option, id string) (Option, bool) {
	for _, opt := range options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

func (c *Catalog) SizeByID(id string) (Option, bool) {
	return findOption(c.Sizes, id)
}

func (c *Catalog) ThicknessByID(id string) (Option, bool) {
	return findOption(c.Thicknesses, id)
}

func (c *Catalog) MaterialByID(id string) (Option, bool) {
	return findOption(c.Materials, id)
}

func (c *Catalog) ColorByID(id string) (Option, bool) {
	return findOption(c.Colors, id)
}

// MinimumQuantity returns the minimum order quantity for a size. Sizes
// without an explicit entry fall back to the global floor of 100.
func (c *Catalog) MinimumQuantity(sizeID string) int {
	if min, ok := c.MinimumQuantities[sizeID]; ok {
		return min
	}
	return 100
}
