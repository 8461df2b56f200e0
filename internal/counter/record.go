package counter

import (
	"encoding/json"
	"time"

	"github.com/verte-zerg/tasbih/internal/model"
)

// decodeRecord merges a persisted JSON record onto defaults. Every field falls back to
// its default on its own when missing, mistyped or out of range. A zero LastUsedDate
// means no usable date was stored.
func decodeRecord(raw string, defaults model.Record) model.Record {
	rec := defaults
	rec.LastUsedDate = time.Time{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return rec
	}

	rec.CurrentCount = countField(fields["currentCount"], defaults.CurrentCount)
	rec.TodayCount = countField(fields["todayCount"], defaults.TodayCount)
	rec.WeekCount = countField(fields["weekCount"], defaults.WeekCount)
	rec.TotalCount = countField(fields["totalCount"], defaults.TotalCount)

	if v, ok := decodeField[string](fields["currentDhikr"]); ok && v != "" {
		rec.CurrentDhikr = v
	}
	if v, ok := decodeField[int](fields["target"]); ok && v >= 1 {
		rec.Target = v
	}
	if v, ok := decodeField[bool](fields["soundEnabled"]); ok {
		rec.SoundEnabled = v
	}
	if v, ok := decodeField[bool](fields["vibrationEnabled"]); ok {
		rec.VibrationEnabled = v
	}
	if v, ok := decodeField[string](fields["lastUsedDate"]); ok {
		if parsed, err := time.Parse(time.RFC3339Nano, v); err == nil {
			rec.LastUsedDate = parsed
		}
	}
	return rec
}

func countField(raw json.RawMessage, fallback int) int {
	v, ok := decodeField[int](raw)
	if !ok || v < 0 {
		return fallback
	}
	return v
}

func decodeField[T any](raw json.RawMessage) (T, bool) {
	var v T
	if len(raw) == 0 {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false
	}
	return v, true
}

func encodeRecord(rec model.Record) (string, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
