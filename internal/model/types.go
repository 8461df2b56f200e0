// Package model defines shared data structures.
package model

import "time"

// DefaultDhikr is the label selected on first run.
const DefaultDhikr = "سبحان الله"

// DefaultTarget is the goal used when none is stored or configured.
const DefaultTarget = 100

// DefaultLabels is the built-in label set offered for selection.
var DefaultLabels = []string{
	"سبحان الله",
	"الحمد لله",
	"الله أكبر",
	"لا إله إلا الله",
	"أستغفر الله",
}

// Record is the persisted counter state.
type Record struct {
	CurrentCount     int       `json:"currentCount"`
	TodayCount       int       `json:"todayCount"`
	WeekCount        int       `json:"weekCount"`
	TotalCount       int       `json:"totalCount"`
	CurrentDhikr     string    `json:"currentDhikr"`
	Target           int       `json:"target"`
	SoundEnabled     bool      `json:"soundEnabled"`
	VibrationEnabled bool      `json:"vibrationEnabled"`
	LastUsedDate     time.Time `json:"lastUsedDate"`
}

// DefaultRecord returns the record used when nothing has been persisted yet.
func DefaultRecord() Record {
	return Record{
		CurrentDhikr:     DefaultDhikr,
		Target:           DefaultTarget,
		SoundEnabled:     true,
		VibrationEnabled: true,
	}
}

// Config defines counter settings resolved from the config file and flags.
type Config struct {
	Target    int
	Sound     bool
	Vibration bool
	Dhikr     string
	Labels    []string
}

// DailyTally is the number of increments of one label on one day.
type DailyTally struct {
	Day   string
	Dhikr string
	Count int
}

// DayTotal sums every label for one day.
type DayTotal struct {
	Day   string
	Count int
}
