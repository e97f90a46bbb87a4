// Package shell runs the numbered menu loop over a catalog.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jacksmith/stores/internal/catalog"
	"github.com/jacksmith/stores/internal/cli"
	"github.com/jacksmith/stores/internal/model"
	"github.com/jacksmith/stores/internal/ops"
	"github.com/jacksmith/stores/internal/storage"
	"go.uber.org/zap"
)

// Saver persists the catalog. *storage.Storage implements it.
type Saver interface {
	Save(c *catalog.Catalog) error
}

const terminatedMessage = "Program terminated."

// menuItems are printed in order, numbered from 1.
var menuItems = []string{
	"Add a new store",
	"View list of stores",
	"Delete a store by name",
	"Search stores by keyword",
	"Sort by Name",
	"Sort by City in Address",
	"Sort by Specialization",
	"Find specific stores",
	"Exit program",
}

// sortHeaders maps sort selections to their key and the line printed before
// the sorted listing.
var sortHeaders = map[Selection]struct {
	key    ops.SortKey
	header string
}{
	SelectSortName:           {ops.SortByName, "Stores sorted by name:"},
	SelectSortCity:           {ops.SortByCity, "Stores sorted by city in address:"},
	SelectSortSpecialization: {ops.SortBySpecialization, "Stores sorted by specialization:"},
}

// Shell is one interactive session. It owns the catalog for its lifetime
// and saves it on exit.
type Shell struct {
	in      *bufio.Scanner
	out     io.Writer
	catalog *catalog.Catalog
	saver   Saver
	log     *zap.Logger
}

// New returns a Shell reading lines from in and writing to out.
// A nil logger discards log output.
func New(in io.Reader, out io.Writer, c *catalog.Catalog, saver Saver, log *zap.Logger) *Shell {
	if log == nil {
		log = zap.NewNop()
	}
	return &Shell{
		in:      bufio.NewScanner(in),
		out:     out,
		catalog: c,
		saver:   saver,
		log:     log,
	}
}

// Run shows the menu until the user exits or input ends, then saves the
// catalog. Bad input is reported and the menu is shown again; only a
// failed save is returned as an error.
func (s *Shell) Run() error {
	for {
		s.printMenu()

		line, ok := s.readLine()
		if !ok {
			fmt.Fprintln(s.out)
			return s.exit()
		}

		sel, err := ParseSelection(line)
		if err != nil {
			s.log.Warn("rejected menu input", zap.String("input", line))
			fmt.Fprintln(s.out, cli.FormatError(err))
			continue
		}

		s.log.Debug("menu selection", zap.Stringer("selection", sel))
		if sel == SelectExit {
			return s.exit()
		}
		if !s.dispatch(sel) {
			fmt.Fprintln(s.out)
			return s.exit()
		}
	}
}

// dispatch runs one menu action. It returns false when input ended
// partway through the action.
func (s *Shell) dispatch(sel Selection) bool {
	switch sel {
	case SelectAdd:
		return s.addStore()

	case SelectList:
		cli.RenderStoreLines(s.out, s.catalog.Stores())

	case SelectDelete:
		name, ok := s.prompt("Enter the store name to delete: ")
		if !ok {
			return false
		}
		removed := ops.DeleteByName(s.catalog, name)
		s.log.Debug("deleted stores", zap.String("name", name), zap.Int("removed", removed))
		fmt.Fprintf(s.out, "Store with the name %s deleted (if it was found).\n", name)

	case SelectSearch:
		keyword, ok := s.prompt("Enter keyword to search: ")
		if !ok {
			return false
		}
		cli.RenderStoreLines(s.out, ops.Search(s.catalog, keyword))

	case SelectSortName, SelectSortCity, SelectSortSpecialization:
		h := sortHeaders[sel]
		// Keys come from a fixed table, so Sort cannot fail here.
		_ = ops.Sort(s.catalog, h.key)
		fmt.Fprintln(s.out, h.header)
		cli.RenderStoreLines(s.out, s.catalog.Stores())

	case SelectSpecific:
		cli.RenderStoreLines(s.out, ops.Specific(s.catalog))

	default:
		fmt.Fprintln(s.out, "Invalid choice. Try again.")
	}
	return true
}

// addStore prompts for the store fields and any number of phones.
// The store is added only once every prompt has been answered.
func (s *Shell) addStore() bool {
	fmt.Fprintln(s.out, "Enter store details:")

	fields := make([]string, 4)
	for i, label := range []string{"Name: ", "Address: ", "Specialization: ", "Working Hours: "} {
		v, ok := s.prompt(label)
		if !ok {
			return false
		}
		fields[i] = v
	}

	store := model.NewStore(fields[0], fields[1], fields[2], fields[3])
	for {
		answer, ok := s.prompt("Add phone (Y/N): ")
		if !ok {
			return false
		}
		if !strings.EqualFold(answer, "Y") {
			break
		}
		phone, ok := s.prompt("Phone number: ")
		if !ok {
			return false
		}
		store.AddPhone(phone)
	}

	s.catalog.Add(store)
	s.log.Debug("store added", zap.String("name", store.Name), zap.Int("phones", len(store.Phones)))
	fmt.Fprintln(s.out, "Store added.")
	return true
}

func (s *Shell) exit() error {
	if err := s.saver.Save(s.catalog); err != nil {
		return err
	}
	fmt.Fprintln(s.out, terminatedMessage)
	return nil
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out, "Menu:")
	for i, item := range menuItems {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, item)
	}
	fmt.Fprint(s.out, "Select an option: ")
}

// prompt prints label and reads the answer. It returns false at end of input.
func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	return s.readLine()
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			s.log.Warn("failed to read input", zap.Error(err))
		}
		return "", false
	}
	return strings.TrimSuffix(s.in.Text(), "\r"), true
}

// autoStore is the record injected by RunAuto.
func autoStore() model.Store {
	return model.NewStore("AutoStore", "AutoAddress", "AutoSpecialization", model.RoundTheClock)
}

// RunAuto adds a fixed store, prints the catalog and saves it, without
// reading any input.
func RunAuto(out io.Writer, c *catalog.Catalog, saver Saver) error {
	c.Add(autoStore())
	cli.RenderStoreLines(out, c.Stores())
	if err := saver.Save(c); err != nil {
		return err
	}
	fmt.Fprintln(out, terminatedMessage)
	return nil
}

// ReportLoad prints the outcome of loading the data file.
func ReportLoad(out io.Writer, path string, res *storage.LoadResult) {
	switch res.Status {
	case storage.StatusLoaded:
		fmt.Fprintf(out, "Data loaded successfully from %s\n", path)
	case storage.StatusNotFound:
		fmt.Fprintf(out, "%s not found. Starting with an empty list.\n", path)
	case storage.StatusMalformed:
		fmt.Fprintf(out, "Error loading data from %s: %v. Starting with an empty list.\n", path, res.ParseErr)
	}
}
