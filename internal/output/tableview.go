package output

// Cell is one rendered row of a TableView
type Cell struct {
	Identifier string // Reuse identifier of the row template
	Label      string
}

// DataSource supplies the sections, rows and cells of a TableView
type DataSource interface {
	Sections() int
	Rows(section int) int
	Cell(section, row int) Cell
}

// Delegate answers interaction questions for a TableView
type Delegate interface {
	CanEdit(section, row int) bool
	CanMove(section, row int) bool
}

// TableView is a list rendered through a Formatter.
// It owns the edit-mode toggle; everything else comes from its DataSource.
type TableView struct {
	dataSource DataSource
	delegate   Delegate
	editing    bool
}

// TableRow is the flattened form of one cell, as printed
type TableRow struct {
	Section  int    `json:"section"`
	Row      int    `json:"row"`
	Label    string `json:"label"`
	Editable bool   `json:"editable"`
	Movable  bool   `json:"movable"`
}

// NewTableView creates an empty table view
func NewTableView() *TableView {
	return &TableView{}
}

// SetDataSource binds the row provider
func (tv *TableView) SetDataSource(ds DataSource) {
	tv.dataSource = ds
}

// SetDelegate binds the interaction delegate
func (tv *TableView) SetDelegate(d Delegate) {
	tv.delegate = d
}

// SetEditing toggles edit mode
func (tv *TableView) SetEditing(editing bool) {
	tv.editing = editing
}

// Editing reports whether edit mode is on
func (tv *TableView) Editing() bool {
	return tv.editing
}

// Snapshot asks the data source for every row
func (tv *TableView) Snapshot() []TableRow {
	if tv.dataSource == nil {
		return nil
	}

	var rows []TableRow
	for section := 0; section < tv.dataSource.Sections(); section++ {
		for row := 0; row < tv.dataSource.Rows(section); row++ {
			cell := tv.dataSource.Cell(section, row)
			tr := TableRow{Section: section, Row: row, Label: cell.Label}
			if tv.delegate != nil {
				tr.Editable = tv.editing && tv.delegate.CanEdit(section, row)
				tr.Movable = tv.editing && tv.delegate.CanMove(section, row)
			}
			rows = append(rows, tr)
		}
	}
	return rows
}

// Render prints the current snapshot
func (tv *TableView) Render(f Formatter) error {
	cols := []Column{
		{Name: "Row", Key: "Row"},
		{Name: "Label", Key: "Label"},
	}
	if tv.editing {
		cols = append(cols,
			Column{Name: "Editable", Key: "Editable"},
			Column{Name: "Movable", Key: "Movable"},
		)
	}

	rows := tv.Snapshot()
	if rows == nil {
		rows = []TableRow{}
	}
	return f.PrintList(rows, cols)
}
