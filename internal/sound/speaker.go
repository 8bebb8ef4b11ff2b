//go:build cgo

package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// BeepPlayer mixes cues onto the speaker.
type BeepPlayer struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	closed bool
}

// NewBeepPlayer initializes the speaker. It fails on hosts without an audio
// device.
func NewBeepPlayer() (*BeepPlayer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}
	p := &BeepPlayer{mixer: &beep.Mixer{}}
	speaker.Play(p.mixer)
	return p, nil
}

func openSpeaker() (Player, error) {
	return NewBeepPlayer()
}

func (p *BeepPlayer) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	speaker.Lock()
	p.mixer.Add(Stream(c))
	speaker.Unlock()
}

func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}
