package counter

import (
	"fmt"

	"github.com/verte-zerg/tasbih/internal/model"
)

// LabelControl is one selectable label and whether it is the active one.
type LabelControl struct {
	Label  string
	Active bool
}

// View is everything a presenter shows for one record.
type View struct {
	Count     int
	Label     string
	Progress  string
	Fill      float64
	Today     int
	Week      int
	Total     int
	Target    int
	Sound     bool
	Vibration bool
	Labels    []LabelControl
}

// FillPercent returns Fill scaled to 0-100.
func (v View) FillPercent() float64 {
	return v.Fill * 100
}

// BuildView projects rec onto the presentation contract.
func BuildView(rec model.Record, labels []string) View {
	target := rec.Target
	if target < 1 {
		target = 1
	}
	fill := float64(rec.CurrentCount) / float64(target)
	if fill > 1 {
		fill = 1
	}
	if fill < 0 {
		fill = 0
	}
	controls := make([]LabelControl, 0, len(labels))
	for _, label := range labels {
		controls = append(controls, LabelControl{Label: label, Active: label == rec.CurrentDhikr})
	}
	return View{
		Count:     rec.CurrentCount,
		Label:     rec.CurrentDhikr,
		Progress:  fmt.Sprintf("%d/%d", rec.CurrentCount, rec.Target),
		Fill:      fill,
		Today:     rec.TodayCount,
		Week:      rec.WeekCount,
		Total:     rec.TotalCount,
		Target:    rec.Target,
		Sound:     rec.SoundEnabled,
		Vibration: rec.VibrationEnabled,
		Labels:    controls,
	}
}
