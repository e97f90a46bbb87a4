// Package catalog holds the in-memory ordered collection of stores.
package catalog

import (
	"iter"
	"slices"

	"github.com/jacksmith/stores/internal/model"
)

// Catalog is an ordered, mutable list of stores for one session.
// Insertion order is kept until a sort reorders it. Names are not unique.
type Catalog struct {
	stores []model.Store
}

// New returns a catalog holding the given stores in order.
func New(stores ...model.Store) *Catalog {
	return &Catalog{stores: slices.Clone(stores)}
}

// Add appends a store to the end of the catalog.
func (c *Catalog) Add(s model.Store) {
	c.stores = append(c.stores, s)
}

// RemoveWhere removes every store matching pred, keeping survivors in order.
// It returns how many were removed.
func (c *Catalog) RemoveWhere(pred func(model.Store) bool) int {
	before := len(c.stores)
	c.stores = slices.DeleteFunc(c.stores, pred)
	return before - len(c.stores)
}

// SortBy reorders the catalog in place using cmp, which returns a negative
// number when a sorts before b. The order of equal elements is unspecified.
func (c *Catalog) SortBy(cmp func(a, b model.Store) int) {
	slices.SortFunc(c.stores, cmp)
}

// All iterates the stores in current order. Each call starts from the
// beginning and reflects any mutation made since the previous one.
func (c *Catalog) All() iter.Seq[model.Store] {
	return func(yield func(model.Store) bool) {
		for _, s := range c.stores {
			if !yield(s) {
				return
			}
		}
	}
}

// Stores returns a copy of the stores in current order.
func (c *Catalog) Stores() []model.Store {
	return slices.Clone(c.stores)
}

// Len returns the number of stores.
func (c *Catalog) Len() int {
	return len(c.stores)
}
