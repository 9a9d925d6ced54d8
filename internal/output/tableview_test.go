package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gridSource struct{ sections, rows int }

func (g gridSource) Sections() int        { return g.sections }
func (g gridSource) Rows(section int) int { return g.rows }
func (g gridSource) Cell(section, row int) Cell {
	return Cell{Identifier: "grid", Label: string(rune('a'+section)) + string(rune('0'+row))}
}

type allowAll struct{}

func (allowAll) CanEdit(section, row int) bool { return true }
func (allowAll) CanMove(section, row int) bool { return false }

func TestTableViewWithoutDataSource(t *testing.T) {
	tv := NewTableView()
	assert.Nil(t, tv.Snapshot())

	var out bytes.Buffer
	require.NoError(t, tv.Render(NewWithWriters("plain", &out, &bytes.Buffer{})))
	assert.Equal(t, "Row\tLabel\n", out.String())
}

func TestTableViewSnapshot(t *testing.T) {
	tv := NewTableView()
	tv.SetDataSource(gridSource{sections: 2, rows: 2})

	rows := tv.Snapshot()
	require.Len(t, rows, 4)
	assert.Equal(t, "a0", rows[0].Label)
	assert.Equal(t, "b1", rows[3].Label)
	assert.Equal(t, 1, rows[3].Section)
}

func TestTableViewEditingUsesDelegate(t *testing.T) {
	tv := NewTableView()
	tv.SetDataSource(gridSource{sections: 1, rows: 1})
	tv.SetDelegate(allowAll{})

	assert.False(t, tv.Snapshot()[0].Editable)

	tv.SetEditing(true)
	assert.True(t, tv.Editing())
	row := tv.Snapshot()[0]
	assert.True(t, row.Editable)
	assert.False(t, row.Movable)

	var out bytes.Buffer
	require.NoError(t, tv.Render(NewWithWriters("plain", &out, &bytes.Buffer{})))
	assert.Equal(t, "Row\tLabel\tEditable\tMovable\n0\ta0\ttrue\tfalse\n", out.String())
}
