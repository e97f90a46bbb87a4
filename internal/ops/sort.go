package ops

import (
	"fmt"
	"strings"

	"github.com/jacksmith/stores/internal/catalog"
	"github.com/jacksmith/stores/internal/model"
)

// Comparator orders two stores: negative when a sorts first, zero when equal.
type Comparator func(a, b model.Store) int

// SortKey names one of the supported catalog orderings.
type SortKey string

const (
	SortByName           SortKey = "name"
	SortByCity           SortKey = "city"
	SortBySpecialization SortKey = "specialization"
)

// SortKeys lists the supported sort keys in menu order.
var SortKeys = []SortKey{SortByName, SortByCity, SortBySpecialization}

// ByName orders stores by name, comparing bytes.
func ByName(a, b model.Store) int {
	return strings.Compare(a.Name, b.Name)
}

// ByCity orders stores by the city token of their address.
func ByCity(a, b model.Store) int {
	return strings.Compare(CityOf(a.Address), CityOf(b.Address))
}

// BySpecialization orders stores by specialization, comparing bytes.
func BySpecialization(a, b model.Store) int {
	return strings.Compare(a.Specialization, b.Specialization)
}

// CityOf returns the address up to the first space, or the whole address
// when it has no space.
func CityOf(address string) string {
	city, _, _ := strings.Cut(address, " ")
	return city
}

// ComparatorFor returns the comparator for a sort key.
func ComparatorFor(key SortKey) (Comparator, error) {
	switch key {
	case SortByName:
		return ByName, nil
	case SortByCity:
		return ByCity, nil
	case SortBySpecialization:
		return BySpecialization, nil
	default:
		return nil, fmt.Errorf("unknown sort key %q", key)
	}
}

// Sort reorders the catalog in place by the given key.
func Sort(c *catalog.Catalog, key SortKey) error {
	cmp, err := ComparatorFor(key)
	if err != nil {
		return err
	}
	c.SortBy(cmp)
	return nil
}
