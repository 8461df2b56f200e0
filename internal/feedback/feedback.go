// Package feedback provides the audio and haptic cues played on each increment.
package feedback

import (
	"io"
	"time"
)

// Cue is a short sound with a playback position.
type Cue interface {
	// Rewind moves the playback position back to the start.
	Rewind()
	// Play emits the cue from the current position to its end.
	Play() error
}

// Haptics drives a vibration motor when the host has one.
type Haptics interface {
	Available() bool
	Vibrate(d time.Duration) error
}

// Bell plays the terminal bell as a one-sample cue.
type Bell struct {
	w      io.Writer
	sample []byte
	pos    int
}

// NewBell returns a bell that writes to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w, sample: []byte{'\a'}}
}

// Rewind implements Cue.
func (b *Bell) Rewind() {
	b.pos = 0
}

// Play implements Cue. A cue that already reached its end stays silent until rewound.
func (b *Bell) Play() error {
	if b.pos >= len(b.sample) {
		return nil
	}
	n, err := b.w.Write(b.sample[b.pos:])
	b.pos += n
	return err
}

// None reports no haptic capability. Terminals have no vibration motor.
type None struct{}

// Available implements Haptics.
func (None) Available() bool { return false }

// Vibrate implements Haptics.
func (None) Vibrate(time.Duration) error { return nil }
