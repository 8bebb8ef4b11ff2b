// Package sound plays short synthesized cues for round events.
package sound

import (
	"errors"
	"fmt"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
)

const sampleRate = beep.SampleRate(44100)

// ErrNoSpeaker is returned by builds without an audio backend.
var ErrNoSpeaker = errors.New("built without audio support")

type Cue int

const (
	CueCorrect Cue = iota
	CueWrong
	CueTimeout
	CueHint
	CueRoundComplete
)

func (c Cue) String() string {
	switch c {
	case CueCorrect:
		return "correct"
	case CueWrong:
		return "wrong"
	case CueTimeout:
		return "timeout"
	case CueHint:
		return "hint"
	case CueRoundComplete:
		return "round_complete"
	}
	return fmt.Sprintf("cue(%d)", int(c))
}

// Player plays cues without blocking the caller.
type Player interface {
	Play(c Cue)
	Close()
}

// Nop discards every cue. Used when sound is disabled or no audio device
// could be opened.
type Nop struct{}

func (Nop) Play(Cue) {}
func (Nop) Close()   {}

// Open returns a speaker-backed player when enabled, falling back to Nop if
// the audio device cannot be opened.
func Open(enabled bool, log zerolog.Logger) Player {
	if !enabled {
		return Nop{}
	}
	p, err := openSpeaker()
	if err != nil {
		log.Warn().Err(err).Msg("audio unavailable, sound disabled")
		return Nop{}
	}
	return p
}

// Gated forwards cues to p only while enabled reports true, so a settings
// change takes effect without reopening the device.
func Gated(p Player, enabled func() bool) Player {
	return gated{p: p, enabled: enabled}
}

type gated struct {
	p       Player
	enabled func() bool
}

func (g gated) Play(c Cue) {
	if g.enabled() {
		g.p.Play(c)
	}
}

func (g gated) Close() { g.p.Close() }
