// Package ops implements the query and mutation operations run against a catalog.
package ops

import (
	"strings"

	"github.com/jacksmith/stores/internal/catalog"
	"github.com/jacksmith/stores/internal/model"
)

// Search returns the stores whose name, address or specialization contains
// keyword, ignoring case. An empty keyword matches every store.
// Results keep catalog order.
func Search(c *catalog.Catalog, keyword string) []model.Store {
	keywordLower := strings.ToLower(keyword)

	var results []model.Store
	for s := range c.All() {
		if strings.Contains(strings.ToLower(s.Name), keywordLower) ||
			strings.Contains(strings.ToLower(s.Address), keywordLower) ||
			strings.Contains(strings.ToLower(s.Specialization), keywordLower) {
			results = append(results, s)
		}
	}
	return results
}

// IsSpecific reports whether a store is open 24/7 and has both a short
// phone number and a Ukrainian mobile number.
func IsSpecific(s model.Store) bool {
	return s.WorksEverydayWithoutBreak() && s.HasShortPhoneNumber() && s.HasUkrainianMobileNumber()
}

// Specific returns the stores matching IsSpecific, in catalog order.
func Specific(c *catalog.Catalog) []model.Store {
	var results []model.Store
	for s := range c.All() {
		if IsSpecific(s) {
			results = append(results, s)
		}
	}
	return results
}

// DeleteByName removes every store whose name equals name, ignoring case.
// It returns the number of stores removed; zero is not an error.
func DeleteByName(c *catalog.Catalog, name string) int {
	return c.RemoveWhere(func(s model.Store) bool {
		return strings.EqualFold(s.Name, name)
	})
}
