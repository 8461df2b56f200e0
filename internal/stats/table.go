// Package stats contains daily history reporting.
package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const columnGap = "  "

type column struct {
	title string
	right bool
}

// tallyColumns lays out one journal row per day and label.
var tallyColumns = []column{{title: "Day"}, {title: "Dhikr"}, {title: "Count", right: true}}

// formatTable renders rows under cols, padded by terminal columns so Arabic
// labels and wide runes line up. Cells beyond len(cols) are dropped.
func formatTable(cols []column, rows [][]string) []string {
	if len(cols) == 0 {
		return nil
	}
	widths := make([]int, len(cols))
	for i, col := range cols {
		widths[i] = runewidth.StringWidth(col.title)
	}
	for _, row := range rows {
		for i := range cols {
			if i < len(row) {
				widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
			}
		}
	}

	titles := make([]string, len(cols))
	for i, col := range cols {
		titles[i] = col.title
	}
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, joinCells(cols, widths, titles))
	for _, row := range rows {
		lines = append(lines, joinCells(cols, widths, row))
	}
	return lines
}

func joinCells(cols []column, widths []int, cells []string) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		if col.right {
			parts[i] = runewidth.FillLeft(cell, widths[i])
		} else {
			parts[i] = runewidth.FillRight(cell, widths[i])
		}
	}
	return strings.TrimRight(strings.Join(parts, columnGap), " ")
}
