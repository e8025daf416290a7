// Package product holds the priced item used by the collection demos.
package product

import (
	"fmt"
	"math"
	"strings"

	"github.com/jsamuelsen11/go-transform-demo/internal/domain"
	"github.com/jsamuelsen11/go-transform-demo/internal/transform"
)

// Product is a named item with a price. Values are compared by field
// equality and never mutated after construction.
type Product struct {
	Name  string
	Price float64
}

// New returns a validated Product.
func New(name string, price float64) (Product, error) {
	p := Product{Name: name, Price: price}
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

// Validate checks that the product has a name and a finite, non-negative
// price. Returns a *domain.ValidationError wrapping domain.ErrValidation.
func (p Product) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
		fields["price"] = "must be a finite number"
	} else if p.Price < 0 {
		fields["price"] = fmt.Sprintf("must not be negative, got %g", p.Price)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// String implements fmt.Stringer.
func (p Product) String() string {
	return fmt.Sprintf("%s ($%g)", p.Name, p.Price)
}

// NameOf maps a product to its name.
var NameOf = transform.Func[Product, string](func(p Product) string { return p.Name })

// PricedAbove returns a predicate matching products strictly more expensive
// than threshold.
func PricedAbove(threshold float64) transform.Predicate[Product] {
	return func(p Product) bool { return p.Price > threshold }
}
