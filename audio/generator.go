package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/collecta/parameter"
)

// SweepGenerator plays a sine whose pitch glides from one frequency to another
// over a fixed length, with a linear fade out
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
}

func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, length: sr.N(d)}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.length {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.length)
		freq := g.from + (g.to-g.from)*progress
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		sample := math.Sin(2*math.Pi*g.phase) * (1 - progress)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// ChimeGenerator plays two notes back to back, each with a quick exponential decay
type ChimeGenerator struct {
	sr        beep.SampleRate
	low, high float64
	length    int
	pos       int
}

func NewChimeGenerator(sr beep.SampleRate, low, high float64, d time.Duration) *ChimeGenerator {
	return &ChimeGenerator{sr: sr, low: low, high: high, length: sr.N(d)}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	half := g.length / 2
	for i := range samples {
		if g.pos >= g.length {
			return i, i > 0
		}
		freq, local := g.low, g.pos
		if g.pos >= half {
			freq, local = g.high, g.pos-half
		}
		t := float64(local) / float64(g.sr)
		envelope := math.Exp(-t * 30)
		sample := envelope * (0.7*math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// BeatGenerator is an endless kick and bass loop used as the default music bed
type BeatGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	kick    int
}

func NewBeatGenerator(sr beep.SampleRate) *BeatGenerator {
	return &BeatGenerator{
		sr:      sr,
		samples: sr.N(parameter.MusicBeatInterval),
		kick:    sr.N(parameter.MusicKickLength),
	}
}

func (g *BeatGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.samples
		t := float64(beatPos) / float64(g.sr)

		kick := 0.0
		if beatPos < g.kick {
			env := 1.0 - float64(beatPos)/float64(g.kick)
			freq := parameter.MusicKickHz * (1 + 2*env)
			kick = 0.6 * env * math.Sin(2*math.Pi*freq*t)
		}
		bass := 0.25 * math.Sin(2*math.Pi*parameter.MusicBassHz*t)

		sample := kick + bass
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BeatGenerator) Err() error {
	return nil
}
