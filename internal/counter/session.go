// Package counter implements the tally session: load, day rollover, mutation and persistence.
package counter

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/verte-zerg/tasbih/internal/feedback"
	"github.com/verte-zerg/tasbih/internal/model"
)

const (
	// RecordKey holds the JSON-encoded record.
	RecordKey = "tasbeehData"
	// MarkerKey holds the day string of the last periodic rollover check.
	MarkerKey = "lastUsedDate"
	// RolloverInterval is how often the host should call CheckRollover.
	RolloverInterval = time.Minute
	// VibrationPulse is the haptic pulse length on increment.
	VibrationPulse = 50 * time.Millisecond
)

// KV is the persistent key-value store backing a session.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Journal receives one tally per increment.
type Journal interface {
	AddTally(ctx context.Context, day, dhikr string, n int) error
}

// Presenter reflects a view onto the presentation surface.
type Presenter interface {
	Render(View)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(View)

// Render implements Presenter.
func (f PresenterFunc) Render(v View) { f(v) }

// Options configures a Session. Zero values select defaults.
type Options struct {
	Now      func() time.Time
	Cue      feedback.Cue
	Haptics  feedback.Haptics
	Journal  Journal
	Logger   *log.Logger
	Labels   []string
	Defaults *model.Record
}

// Session owns the in-memory record. It is not safe for concurrent use; the host
// serializes calls on its event loop.
type Session struct {
	kv        KV
	presenter Presenter
	journal   Journal
	cue       feedback.Cue
	haptics   feedback.Haptics
	logger    *log.Logger
	now       func() time.Time
	labels    []string
	defaults  model.Record

	rec model.Record
	// unread is set while the stored record could not be read; nothing is
	// persisted until a reload succeeds or the user mutates the record.
	unread bool
}

// New constructs a session. Call Load before any other operation.
func New(kv KV, presenter Presenter, opts Options) *Session {
	s := &Session{
		kv:        kv,
		presenter: presenter,
		journal:   opts.Journal,
		cue:       opts.Cue,
		haptics:   opts.Haptics,
		logger:    opts.Logger,
		now:       opts.Now,
		labels:    opts.Labels,
		defaults:  model.DefaultRecord(),
	}
	if opts.Defaults != nil {
		s.defaults = *opts.Defaults
	}
	if s.presenter == nil {
		s.presenter = PresenterFunc(func(View) {})
	}
	if s.haptics == nil {
		s.haptics = feedback.None{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.now == nil {
		s.now = time.Now
	}
	if len(s.labels) == 0 {
		s.labels = model.DefaultLabels
	}
	s.rec = s.defaults
	return s
}

// Record returns a copy of the current record.
func (s *Session) Record() model.Record {
	return s.rec
}

// View returns the current presentation view.
func (s *Session) View() View {
	return BuildView(s.rec, s.labels)
}

// Load reads the persisted record and applies the load-time day check.
func (s *Session) Load(ctx context.Context) {
	raw, ok, err := s.kv.Get(ctx, RecordKey)
	if err != nil {
		s.logger.Error("failed to read record", "key", RecordKey, "err", err)
		s.rec = s.defaults
		s.unread = true
		s.render()
		return
	}
	s.unread = false
	if !ok {
		s.rec = s.defaults
		s.CheckRollover(ctx)
		s.render()
		return
	}

	s.rec = decodeRecord(raw, s.defaults)
	if !SameDay(s.rec.LastUsedDate, s.now()) {
		s.logger.Debug("new day since last use", "last", s.rec.LastUsedDate)
		s.rec.CurrentCount = 0
		s.CheckRollover(ctx)
	}
	s.render()
}

// CheckRollover zeroes the today counter once per calendar day, tracked by the
// day marker. Load calls it; the host also calls it every RolloverInterval.
// If the record could not be read at load, it retries the load instead.
func (s *Session) CheckRollover(ctx context.Context) {
	if s.unread {
		s.Load(ctx)
		return
	}
	today := DayMarker(s.now())
	marker, ok, err := s.kv.Get(ctx, MarkerKey)
	if err != nil {
		s.logger.Error("failed to read day marker", "err", err)
		return
	}
	if ok && marker == today {
		return
	}
	if err := s.kv.Set(ctx, MarkerKey, today); err != nil {
		s.logger.Error("failed to write day marker", "err", err)
	}
	s.logger.Info("daily rollover", "previous", marker, "today", today)
	s.rec.TodayCount = 0
	s.persist(ctx)
	s.render()
}

// Increment counts one repetition of the active label.
func (s *Session) Increment(ctx context.Context) {
	s.rec.CurrentCount++
	s.rec.TodayCount++
	s.rec.WeekCount++
	s.rec.TotalCount++

	if s.rec.SoundEnabled && s.cue != nil {
		s.cue.Rewind()
		if err := s.cue.Play(); err != nil {
			s.logger.Warn("failed to play cue", "err", err)
		}
	}
	if s.rec.VibrationEnabled && s.haptics.Available() {
		if err := s.haptics.Vibrate(VibrationPulse); err != nil {
			s.logger.Warn("failed to vibrate", "err", err)
		}
	}
	if s.journal != nil {
		if err := s.journal.AddTally(ctx, DayKey(s.now()), s.rec.CurrentDhikr, 1); err != nil {
			s.logger.Error("failed to journal tally", "err", err)
		}
	}

	s.render()
	s.persist(ctx)
}

// Reset clears progress toward the target. Aggregate counters are kept.
func (s *Session) Reset(ctx context.Context) {
	s.rec.CurrentCount = 0
	s.render()
	s.persist(ctx)
}

// ChangeLabel selects a label and restarts progress.
func (s *Session) ChangeLabel(ctx context.Context, label string) {
	s.rec.CurrentDhikr = label
	s.rec.CurrentCount = 0
	s.render()
	s.persist(ctx)
}

// SetTarget stores n, clamped to at least 1.
func (s *Session) SetTarget(ctx context.Context, n int) {
	s.rec.Target = max(1, n)
	s.render()
	s.persist(ctx)
}

// ToggleSound enables or disables the audio cue.
func (s *Session) ToggleSound(ctx context.Context, enabled bool) {
	s.rec.SoundEnabled = enabled
	s.persist(ctx)
	s.render()
}

// ToggleVibration enables or disables the haptic pulse.
func (s *Session) ToggleVibration(ctx context.Context, enabled bool) {
	s.rec.VibrationEnabled = enabled
	s.persist(ctx)
	s.render()
}

func (s *Session) render() {
	s.presenter.Render(s.View())
}

func (s *Session) persist(ctx context.Context) {
	s.unread = false
	s.rec.LastUsedDate = s.now()
	raw, err := encodeRecord(s.rec)
	if err != nil {
		s.logger.Error("failed to encode record", "err", err)
		return
	}
	if err := s.kv.Set(ctx, RecordKey, raw); err != nil {
		s.logger.Error("failed to persist record", "key", RecordKey, "err", err)
	}
}
