// Package listing holds the view model of the stored-keys list screen.
package listing

import (
	"strconv"

	"github.com/keysinmypurse/purse/internal/output"
)

// CellIdentifier is the reuse identifier of the key row template.
const CellIdentifier = "KeysCell"

// AllKeys is the data source and delegate of the keys list.
// It renders a single placeholder row regardless of what is stored.
type AllKeys struct {
	view *output.TableView
}

// NewAllKeys creates the screen model.
func NewAllKeys() *AllKeys {
	return &AllKeys{}
}

// Load binds the screen to the host view as its data source and delegate.
func (s *AllKeys) Load(view *output.TableView) {
	s.view = view
	view.SetDataSource(s)
	view.SetDelegate(s)
}

// View returns the bound host view, or nil before Load.
func (s *AllKeys) View() *output.TableView {
	return s.view
}

func (s *AllKeys) Sections() int {
	return 1
}

// Rows is 1 for every section.
func (s *AllKeys) Rows(section int) int {
	return 1
}

func (s *AllKeys) Cell(section, row int) output.Cell {
	return output.Cell{Identifier: CellIdentifier, Label: strconv.Itoa(row)}
}

// CanEdit is false: the edit toggle exists but no row edits are wired.
func (s *AllKeys) CanEdit(section, row int) bool {
	return false
}

func (s *AllKeys) CanMove(section, row int) bool {
	return false
}
