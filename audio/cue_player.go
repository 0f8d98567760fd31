package audio

import (
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"go.uber.org/zap"

	"github.com/lixenwraith/collecta/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Volumes are linear gains in [0, 1]
type Volumes struct {
	Master  float64
	Drop    float64
	Collect float64
	Music   float64
}

func DefaultVolumes() Volumes {
	return Volumes{
		Master:  1,
		Drop:    parameter.DropVolume,
		Collect: parameter.CollectVolume,
		Music:   parameter.MusicVolume,
	}
}

// CuePlayer plays the loot cues and the looping music bed
// Every method is safe to call before Initialize or after Cleanup; without a device they do nothing
type CuePlayer struct {
	mu          sync.Mutex
	log         *zap.Logger
	volumes     Volumes
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicFile   string
	musicCloser beep.StreamSeekCloser
	initialized bool
}

func NewCuePlayer(log *zap.Logger, volumes Volumes, musicFile string) *CuePlayer {
	if log == nil {
		log = zap.NewNop()
	}
	return &CuePlayer{
		log:       log,
		volumes:   volumes,
		mixer:     &beep.Mixer{},
		musicFile: musicFile,
	}
}

// Initialize opens the speaker and starts the mixer
func (cp *CuePlayer) Initialize() error {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	if cp.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(cp.mixer)
	cp.initialized = true
	return nil
}

// Cleanup silences everything and releases the music file
func (cp *CuePlayer) Cleanup() {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	if !cp.initialized {
		return
	}
	speaker.Lock()
	if cp.music != nil {
		cp.music.Streamer = nil
	}
	cp.mixer.Clear()
	speaker.Unlock()

	cp.music = nil
	cp.closeMusic()
	cp.initialized = false
}

// Drop plays the cue for an item finishing its first bounce
func (cp *CuePlayer) Drop() {
	cp.play(NewSweepGenerator(sampleRate, parameter.DropCueStartHz, parameter.DropCueEndHz, parameter.DropCueDuration), cp.volumes.Drop)
}

// Collect plays the pickup cue
func (cp *CuePlayer) Collect() {
	cp.play(NewChimeGenerator(sampleRate, parameter.CollectCueLowHz, parameter.CollectCueHighHz, parameter.CollectCueDuration), cp.volumes.Collect)
}

func (cp *CuePlayer) play(s beep.Streamer, volume float64) {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	if !cp.initialized {
		return
	}
	speaker.Lock()
	cp.mixer.Add(withVolume(s, volume*cp.volumes.Master))
	speaker.Unlock()
}

// PlayMusic starts the music bed unless it is already playing
// A configured WAV file is looped; without one, or if it fails to open, a generated beat is used
func (cp *CuePlayer) PlayMusic() {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	if !cp.initialized {
		return
	}
	if cp.music != nil {
		return
	}

	source, err := cp.musicSource()
	if err != nil {
		cp.log.Warn("music file unavailable, using generated beat", zap.String("file", cp.musicFile), zap.Error(err))
		cp.musicFile = ""
		source = NewBeatGenerator(sampleRate)
	}
	ctrl := &beep.Ctrl{Streamer: withVolume(source, cp.volumes.Music*cp.volumes.Master)}
	speaker.Lock()
	cp.mixer.Add(ctrl)
	speaker.Unlock()
	cp.music = ctrl
}

// StopMusic ends the music bed; the next PlayMusic restarts it from the beginning
func (cp *CuePlayer) StopMusic() {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	if cp.music == nil {
		return
	}
	// A Ctrl without a streamer reports drained and the mixer drops it
	speaker.Lock()
	cp.music.Streamer = nil
	speaker.Unlock()
	cp.music = nil
	cp.closeMusic()
}

func (cp *CuePlayer) MusicPlaying() bool {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	return cp.music != nil
}

func (cp *CuePlayer) musicSource() (beep.Streamer, error) {
	if cp.musicFile == "" {
		return NewBeatGenerator(sampleRate), nil
	}
	f, err := os.Open(cp.musicFile)
	if err != nil {
		return nil, err
	}
	stream, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", cp.musicFile, err)
	}
	cp.closeMusic()
	cp.musicCloser = stream
	looped := beep.Loop(-1, stream)
	if format.SampleRate == sampleRate {
		return looped, nil
	}
	return beep.Resample(parameter.AudioResampleQuality, format.SampleRate, sampleRate, looped), nil
}

func (cp *CuePlayer) closeMusic() {
	if cp.musicCloser != nil {
		if err := cp.musicCloser.Close(); err != nil {
			cp.log.Debug("close music", zap.Error(err))
		}
		cp.musicCloser = nil
	}
}

// withVolume maps a linear gain onto beep's base-2 volume control
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	v := &effects.Volume{Streamer: s, Base: 2}
	if gain <= 0 {
		v.Silent = true
		return v
	}
	v.Volume = math.Log2(gain)
	return v
}
