package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/rodaine/table"
)

// RenderTable renders a table to the writer for rich mode
func RenderTable(w io.Writer, columns []Column, rows []map[string]string) {
	if len(rows) == 0 {
		return
	}

	headers := make([]interface{}, len(columns))
	for i, col := range columns {
		headers[i] = col.Name
	}

	// Style the header line without its newline; widths ignore escape codes
	headerStyle := lipgloss.NewStyle().Bold(true)
	tbl := table.New(headers...).
		WithWriter(w).
		WithWidthFunc(lipgloss.Width).
		WithHeaderFormatter(func(format string, vals ...interface{}) string {
			line := strings.TrimSuffix(fmt.Sprintf(format, vals...), "\n")
			return headerStyle.Render(line) + "\n"
		})

	for _, row := range rows {
		rowData := make([]interface{}, len(columns))
		for i, col := range columns {
			value := row[col.Key]
			// Truncate if width is specified and value exceeds it
			if col.Width > 0 {
				value = TruncateString(value, col.Width)
			}
			rowData[i] = value
		}
		tbl.AddRow(rowData...)
	}

	tbl.Print()
}

// TruncateString truncates a string to maxLen and adds "..." if needed
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
