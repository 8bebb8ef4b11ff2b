package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// note is one step of a cue.
type note struct {
	freq float64 // Hz; 0 is a rest
	dur  time.Duration
}

var cues = map[Cue][]note{
	CueCorrect:       {{660, 90 * time.Millisecond}, {880, 140 * time.Millisecond}},
	CueWrong:         {{180, 160 * time.Millisecond}},
	CueTimeout:       {{440, 120 * time.Millisecond}, {0, 40 * time.Millisecond}, {220, 220 * time.Millisecond}},
	CueHint:          {{990, 60 * time.Millisecond}},
	CueRoundComplete: {{523, 100 * time.Millisecond}, {659, 100 * time.Millisecond}, {784, 100 * time.Millisecond}, {1047, 220 * time.Millisecond}},
}

// Stream returns a finite streamer for c.
func Stream(c Cue) beep.Streamer {
	notes := cues[c]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := sampleRate.N(n.dur)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		parts = append(parts, beep.Take(samples, newTone(sampleRate, n.freq, samples)))
	}
	return beep.Seq(parts...)
}

// tone is a sine wave with a short attack and a linear release over its
// declared length, so consecutive notes do not click.
type tone struct {
	sr     beep.SampleRate
	freq   float64
	pos    int
	length int
}

func newTone(sr beep.SampleRate, freq float64, length int) *tone {
	return &tone{sr: sr, freq: freq, length: length}
}

const toneAmplitude = 0.2

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	attack := g.sr.N(5 * time.Millisecond)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		env := 1.0
		if g.pos < attack {
			env = float64(g.pos) / float64(attack)
		}
		if g.length > 0 {
			remaining := float64(g.length-g.pos) / float64(g.length)
			if remaining < 0 {
				remaining = 0
			}
			env *= remaining
		}
		v := toneAmplitude * env * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *tone) Err() error { return nil }
