package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// maxCellWidth keeps long names from blowing up the table.
const maxCellWidth = 40

// renderTable writes rows under headers, padding by display width so CJK
// names line up.
func renderTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, len(headers))
		for i := range headers {
			if i >= len(row) {
				continue
			}
			cell := runewidth.Truncate(row[i], maxCellWidth, "…")
			cells[r][i] = cell
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	divider := "+"
	for _, cw := range widths {
		divider += strings.Repeat("-", cw+2) + "+"
	}

	line := func(values []string) {
		var b strings.Builder
		b.WriteString("|")
		for i, v := range values {
			b.WriteString(" ")
			b.WriteString(runewidth.FillRight(v, widths[i]))
			b.WriteString(" |")
		}
		fmt.Fprintln(w, b.String())
	}

	fmt.Fprintln(w, divider)
	line(headers)
	fmt.Fprintln(w, divider)
	for _, row := range cells {
		line(row)
	}
	fmt.Fprintln(w, divider)
}
