package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jacksmith/stores/internal/cli"
)

// Selection is a menu option number.
type Selection int

const (
	SelectAdd Selection = iota + 1
	SelectList
	SelectDelete
	SelectSearch
	SelectSortName
	SelectSortCity
	SelectSortSpecialization
	SelectSpecific
	SelectExit
)

// Valid reports whether sel is one of the menu options.
func (sel Selection) Valid() bool {
	return sel >= SelectAdd && sel <= SelectExit
}

func (sel Selection) String() string {
	if !sel.Valid() {
		return fmt.Sprintf("Selection(%d)", int(sel))
	}
	return menuItems[sel-1]
}

// ParseSelection reads a menu option number from a line of input.
// A line that is not an integer yields an *cli.InputError. An integer
// outside the menu is returned as is; check it with Valid.
func ParseSelection(line string) (Selection, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, &cli.InputError{
			Input:  line,
			Reason: fmt.Sprintf("enter a number from %d to %d", int(SelectAdd), int(SelectExit)),
		}
	}
	return Selection(n), nil
}
