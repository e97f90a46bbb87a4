package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/jacksmith/stores/internal/model"
	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// colorEnabled tracks whether color output is enabled.
// It starts from terminal detection and is overridden by --no-color or config.
var colorEnabled = true

func init() {
	colorEnabled = IsTerminal(os.Stdout)
}

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func colorize(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Green returns s wrapped in green ANSI codes if colors are enabled.
func Green(s string) string { return colorize(colorGreen, s) }

// Yellow returns s wrapped in yellow ANSI codes if colors are enabled.
func Yellow(s string) string { return colorize(colorYellow, s) }

// Gray returns s wrapped in gray ANSI codes if colors are enabled.
func Gray(s string) string { return colorize(colorGray, s) }

// DefaultMaxAddressWidth caps the address column in store tables.
const DefaultMaxAddressWidth = 40

// Table formats columnar output with automatic column width calculation.
type Table struct {
	rows      [][]string
	colWidths []int
	maxWidths map[int]int // optional per-column max visible width
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{}
}

// SetMaxWidth sets the maximum visible width for a column.
// Longer plain-text cells are cut and end with "...".
func (t *Table) SetMaxWidth(col, maxWidth int) {
	if t.maxWidths == nil {
		t.maxWidths = make(map[int]int)
	}
	t.maxWidths[col] = maxWidth
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}

	row := make([]string, len(cols))
	for i, col := range cols {
		if maxW, ok := t.maxWidths[i]; ok {
			col = Truncate(col, maxW)
		}
		if w := visibleWidth(col); w > t.colWidths[i] {
			t.colWidths[i] = w
		}
		row[i] = col
	}

	t.rows = append(t.rows, row)
}

// Render writes the table to w with columns separated by two spaces.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		var b strings.Builder
		for i, col := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(col)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", t.colWidths[i]-visibleWidth(col)))
			}
		}
		fmt.Fprintln(w, b.String())
	}
}

// Truncate shortens plain text s to at most maxWidth characters, ending with
// "..." when cut. Widths below 4 cut without an ellipsis.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	if maxWidth < 4 {
		return string(runes[:maxWidth])
	}
	return string(runes[:maxWidth-3]) + "..."
}

// visibleWidth returns the number of characters in s, excluding ANSI escape codes.
func visibleWidth(s string) int {
	width := 0
	inEscape := false

	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			width++
		}
	}

	return width
}

// RenderStoreLines writes each store's String form on its own line.
func RenderStoreLines(w io.Writer, stores []model.Store) {
	for _, s := range stores {
		fmt.Fprintln(w, s)
	}
}

// RenderStoreTable writes stores as an aligned table with a header row.
// Round-the-clock hours are green; stores without phones show a gray "-".
func RenderStoreTable(w io.Writer, stores []model.Store) {
	table := NewTable()
	table.SetMaxWidth(1, DefaultMaxAddressWidth)
	table.AddRow("NAME", "ADDRESS", "SPECIALIZATION", "HOURS", "PHONES")

	for _, s := range stores {
		hours := s.WorkingHours
		if s.WorksEverydayWithoutBreak() {
			hours = Green(hours)
		}
		phones := Gray("-")
		if len(s.Phones) > 0 {
			phones = strings.Join(s.Phones, ", ")
		}
		table.AddRow(s.Name, s.Address, s.Specialization, hours, phones)
	}

	table.Render(w)
}
