package product

import (
	"iter"
	"slices"

	"github.com/jsamuelsen11/go-transform-demo/internal/pipeline"
)

// Catalog is a fixed, read-only list of products.
type Catalog struct {
	items []Product
}

// NewCatalog validates every product and returns a catalog holding a copy of
// them in the given order.
func NewCatalog(items ...Product) (*Catalog, error) {
	for _, p := range items {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	return &Catalog{items: slices.Clone(items)}, nil
}

// DefaultCatalog returns the four-item catalog used by the walkthrough.
func DefaultCatalog() *Catalog {
	return &Catalog{items: []Product{
		{Name: "Laptop", Price: 1200},
		{Name: "Mouse", Price: 20},
		{Name: "Keyboard", Price: 50},
		{Name: "Monitor", Price: 300},
	}}
}

// All returns the products in catalog order.
func (c *Catalog) All() iter.Seq[Product] {
	return pipeline.From(c.items)
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.items)
}

// NamesAbove returns the names of products priced strictly above threshold,
// in catalog order.
func (c *Catalog) NamesAbove(threshold float64) []string {
	return pipeline.Collect(
		pipeline.Map(pipeline.Filter(c.All(), PricedAbove(threshold)), NameOf),
	)
}
