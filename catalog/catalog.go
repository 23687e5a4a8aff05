package catalog

import (
	"fmt"
	"maps"
)

// Catalog is an ordered, read-only id -> Attraction mapping. Iteration order is
// the insertion order given to New and never changes.
type Catalog struct {
	order    []string
	byID     map[string]Attraction
	currency string
}

// DefaultCurrency is used when New is given no currency.
const DefaultCurrency = "AUD"

// New validates attractions and freezes them into a Catalog.
func New(currency string, attractions []Attraction) (*Catalog, error) {
	if currency == "" {
		currency = DefaultCurrency
	}
	c := &Catalog{
		order:    make([]string, 0, len(attractions)),
		byID:     make(map[string]Attraction, len(attractions)),
		currency: currency,
	}
	for _, a := range attractions {
		if err := a.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[a.ID]; dup {
			return nil, fmt.Errorf("duplicate attraction id %q", a.ID)
		}
		a = a.clone()
		c.order = append(c.order, a.ID)
		c.byID[a.ID] = a
	}
	return c, nil
}

// Currency is the ISO 4217 code all prices are expressed in.
func (c *Catalog) Currency() string {
	return c.currency
}

// Len returns the number of attractions.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Lookup returns the attraction stored under an exact (already normalized) id.
func (c *Catalog) Lookup(id string) (Attraction, bool) {
	a, ok := c.byID[id]
	return a.clone(), ok
}

// IDs returns every id in catalog order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// All returns every attraction in catalog order.
func (c *Catalog) All() []Attraction {
	out := make([]Attraction, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id].clone())
	}
	return out
}

// Each calls fn for every attraction in catalog order until fn returns false.
func (c *Catalog) Each(fn func(Attraction) bool) {
	for _, id := range c.order {
		if !fn(c.byID[id].clone()) {
			return
		}
	}
}

// clone copies the Hours map so no caller shares it with the catalog.
func (a Attraction) clone() Attraction {
	if a.Hours != nil {
		a.Hours = maps.Clone(a.Hours)
	}
	return a
}
