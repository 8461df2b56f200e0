package stats

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/tasbih/internal/counter"
	"github.com/verte-zerg/tasbih/internal/model"
)

// TallySource lists journal rows.
type TallySource interface {
	ListDailyTallies(ctx context.Context, since string) ([]model.DailyTally, error)
}

// Report contains precomputed data for stats rendering.
type Report struct {
	Record  model.Record
	Days    []model.DayTotal
	Tallies []model.DailyTally
}

// BuildReport loads the journal for the last days days ending at now. Days without
// tallies appear with a zero count.
func BuildReport(ctx context.Context, src TallySource, rec model.Record, now time.Time, days int) (Report, error) {
	if days <= 0 {
		return Report{Record: rec}, nil
	}
	first := now.AddDate(0, 0, -(days - 1))
	tallies, err := src.ListDailyTallies(ctx, counter.DayKey(first))
	if err != nil {
		return Report{}, err
	}

	totals := make(map[string]int, days)
	for _, tally := range tallies {
		totals[tally.Day] += tally.Count
	}
	dayTotals := make([]model.DayTotal, 0, days)
	for i := 0; i < days; i++ {
		day := counter.DayKey(first.AddDate(0, 0, i))
		dayTotals = append(dayTotals, model.DayTotal{Day: day, Count: totals[day]})
	}

	return Report{
		Record:  rec,
		Days:    dayTotals,
		Tallies: tallies,
	}, nil
}

// WriteReport renders counters, the per-label table and the daily bar chart.
func WriteReport(w io.Writer, r Report, width int, color bool) error {
	var b strings.Builder
	rec := r.Record
	fmt.Fprintf(&b, "Dhikr:  %s\n", rec.CurrentDhikr)
	fmt.Fprintf(&b, "Count:  %d/%d\n", rec.CurrentCount, rec.Target)
	fmt.Fprintf(&b, "Today:  %d\n", rec.TodayCount)
	fmt.Fprintf(&b, "Week:   %d\n", rec.WeekCount)
	fmt.Fprintf(&b, "Total:  %d\n", rec.TotalCount)

	if len(r.Tallies) > 0 {
		b.WriteString("\n")
		rows := make([][]string, 0, len(r.Tallies))
		for _, tally := range r.Tallies {
			rows = append(rows, []string{tally.Day, tally.Dhikr, strconv.Itoa(tally.Count)})
		}
		for _, line := range formatTable(tallyColumns, rows) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	if len(r.Days) > 0 {
		b.WriteString("\n")
		for _, line := range renderBars(r.Days, width, color) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
