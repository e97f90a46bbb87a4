// Package cli provides console infrastructure for stores.
package cli

import "strings"

// MatchChoice resolves input to one of choices, ignoring case.
// An exact match wins; otherwise input must be a prefix of exactly one choice,
// so "spec" selects "specialization".
func MatchChoice(input string, choices []string) (string, error) {
	inputLower := strings.ToLower(input)

	for _, c := range choices {
		if strings.ToLower(c) == inputLower {
			return c, nil
		}
	}

	var matches []string
	for _, c := range choices {
		if strings.HasPrefix(strings.ToLower(c), inputLower) {
			matches = append(matches, c)
		}
	}

	if len(matches) == 1 {
		return matches[0], nil
	}
	return "", &ChoiceError{Input: input, Matches: matches, Allowed: choices}
}
