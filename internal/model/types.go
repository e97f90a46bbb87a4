// Package model defines the core data structures for stores.
package model

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// RoundTheClock is the working-hours value meaning the store never closes.
	RoundTheClock = "24/7"

	// ukrainianMobilePrefix is the country code a Ukrainian mobile number starts with.
	ukrainianMobilePrefix = "380"

	// shortPhoneLength is the length below which a phone number counts as short.
	shortPhoneLength = 5

	// phoneSeparator joins phone numbers in the rendered form of a store.
	phoneSeparator = ", "
)

// Store is one catalog entry describing a retail outlet.
// Field order matches the persisted JSON layout.
type Store struct {
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Phones         []string `json:"phones"`
	Specialization string   `json:"specialization"`
	WorkingHours   string   `json:"workingHours"`
}

// NewStore builds a store with no phones attached.
func NewStore(name, address, specialization, workingHours string) Store {
	return Store{
		Name:           name,
		Address:        address,
		Phones:         []string{},
		Specialization: specialization,
		WorkingHours:   workingHours,
	}
}

// AddPhone appends a phone number, preserving insertion order.
func (s *Store) AddPhone(phone string) {
	s.Phones = append(s.Phones, phone)
}

// WorksEverydayWithoutBreak reports whether the working hours are "24/7",
// compared case-insensitively and without trimming.
func (s Store) WorksEverydayWithoutBreak() bool {
	return strings.EqualFold(s.WorkingHours, RoundTheClock)
}

// HasShortPhoneNumber reports whether any phone has fewer than 5 characters.
func (s Store) HasShortPhoneNumber() bool {
	for _, phone := range s.Phones {
		if utf8.RuneCountInString(phone) < shortPhoneLength {
			return true
		}
	}
	return false
}

// HasUkrainianMobileNumber reports whether any phone starts with "380".
func (s Store) HasUkrainianMobileNumber() bool {
	for _, phone := range s.Phones {
		if strings.HasPrefix(phone, ukrainianMobilePrefix) {
			return true
		}
	}
	return false
}

func (s Store) String() string {
	return fmt.Sprintf("Store(Name='%s', Address='%s', Phones=%s, Specialization='%s', WorkingHours='%s')",
		s.Name, s.Address, strings.Join(s.Phones, phoneSeparator), s.Specialization, s.WorkingHours)
}
