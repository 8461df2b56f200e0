package stats

import (
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/verte-zerg/tasbih/internal/model"
)

const (
	minBarWidth         = 10
	terminalWidthBackup = 80
	barRune             = "█"
	colorBar            = "\x1b[33m"
	colorReset          = "\x1b[0m"
)

// renderBars draws one horizontal bar per day, scaled to the largest day.
func renderBars(days []model.DayTotal, width int, color bool) []string {
	if len(days) == 0 {
		return nil
	}
	peak := 0
	countWidth := 1
	for _, d := range days {
		if d.Count > peak {
			peak = d.Count
		}
		if w := len(strconv.Itoa(d.Count)); w > countWidth {
			countWidth = w
		}
	}
	dayWidth := len(days[0].Day)
	barWidth := BarWidthFor(width, dayWidth+countWidth+2)

	lines := make([]string, 0, len(days))
	for _, d := range days {
		n := 0
		if peak > 0 {
			n = d.Count * barWidth / peak
		}
		if n == 0 && d.Count > 0 {
			n = 1
		}
		bar := strings.Repeat(barRune, n)
		if color && bar != "" {
			bar = colorBar + bar + colorReset
		}
		count := strings.Repeat(" ", countWidth-len(strconv.Itoa(d.Count))) + strconv.Itoa(d.Count)
		lines = append(lines, strings.TrimRight(d.Day+" "+count+" "+bar, " "))
	}
	return lines
}

// BarWidthFor computes the bar area left after a label gutter of the given width.
func BarWidthFor(totalWidth, gutter int) int {
	if totalWidth <= 0 {
		return minBarWidth
	}
	w := totalWidth - gutter
	if w < minBarWidth {
		w = minBarWidth
	}
	return w
}

// TerminalWidth returns the width of w when it is a terminal, or a fallback.
func TerminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok {
		return terminalWidthBackup
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

// ShouldUseColor reports whether ANSI color fits the destination.
func ShouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
