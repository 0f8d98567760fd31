package engine

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/collecta/entity"
	"github.com/lixenwraith/collecta/level"
	"github.com/lixenwraith/collecta/parameter"
	"github.com/lixenwraith/collecta/vmath"
)

// NoBest is reported as the best time until a level has been finished with a running timer
const NoBest = 9999900 * time.Millisecond

// Soundtrack is the looping music bed a session keeps playing
type Soundtrack interface {
	PlayMusic()
	StopMusic()
	MusicPlaying() bool
}

type NopSoundtrack struct{}

func (NopSoundtrack) PlayMusic()         {}
func (NopSoundtrack) StopMusic()         {}
func (NopSoundtrack) MusicPlaying() bool { return false }

// SessionConfig holds the session timing knobs
type SessionConfig struct {
	Step      time.Duration
	Countdown time.Duration
}

func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Step:      parameter.TickInterval,
		Countdown: parameter.CountdownDuration,
	}
}

// Session drives a World through the levels of a project
//
// It owns the beat clock that gates movement, the survival timer and the best time.
// Switching level performs a full synchronous reset of every piece of world state.
type Session struct {
	log     *zap.Logger
	cfg     SessionConfig
	project *level.Project
	world   *World
	music   Soundtrack
	dt      int64 // cfg.Step in seconds, Q32.32

	index int

	beat     bool
	beatTime time.Duration
	beats    []time.Duration

	timer time.Duration
	best  time.Duration

	collected map[string]int
}

func NewSession(log *zap.Logger, cfg SessionConfig, project *level.Project, world *World, music Soundtrack) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	if music == nil {
		music = NopSoundtrack{}
	}
	s := &Session{
		log:       log,
		cfg:       cfg,
		project:   project,
		world:     world,
		music:     music,
		dt:        vmath.FromFloat(cfg.Step.Seconds()),
		best:      NoBest,
		collected: make(map[string]int),
	}
	world.OnCollect = s.onCollect
	return s
}

// Start loads the level at index, wrapping out-of-range values
func (s *Session) Start(index int) error {
	n := len(s.project.Levels)
	if n == 0 {
		return level.ErrNoLevels
	}
	return s.load(((index % n) + n) % n)
}

// Next advances to the following level, wrapping to the first
func (s *Session) Next() error {
	next := s.index + 1
	if next >= len(s.project.Levels) {
		next = 0
	}
	return s.load(next)
}

// Prev goes back one level, wrapping to the last
func (s *Session) Prev() error {
	prev := s.index - 1
	if prev < 0 {
		prev = len(s.project.Levels) - 1
	}
	return s.load(prev)
}

// Reload restarts the current level
func (s *Session) Reload() error { return s.load(s.index) }

// load switches to the level at index; on error the session and world are left untouched
func (s *Session) load(index int) error {
	if index < 0 || index >= len(s.project.Levels) {
		return level.ErrNoLevels
	}
	name := s.project.Levels[index]
	lv, err := s.project.LoadLevel(name)
	if err != nil {
		return fmt.Errorf("load level %s: %w", name, err)
	}
	if err := s.world.Load(s.project, lv); err != nil {
		return fmt.Errorf("build level %s: %w", name, err)
	}

	if s.timer > 0 && s.timer < s.best {
		s.best = s.timer
		s.log.Info("new best time", zap.Duration("best", s.best))
	}
	s.index = index
	s.timer = 0
	s.music.StopMusic()
	s.beats = s.beats[:0]
	s.beat = false
	s.beatTime = 0
	clear(s.collected)

	s.log.Info("level loaded",
		zap.String("level", name),
		zap.Int("index", s.index),
		zap.Int("walls", s.world.Walls.Len()),
		zap.Int("loot", s.world.Spawner.Pending()),
	)
	return nil
}

// Beat registers a tap on the beat key, applied on the next step
func (s *Session) Beat() { s.beat = true }

// Step advances the session clocks and the world by one fixed tick
func (s *Session) Step() {
	if s.beat {
		s.beats = append(s.beats, s.beatTime)
		s.beatTime = 0
		s.beat = false
	}
	started := s.beatTime > s.cfg.Countdown
	if s.world.Player != nil {
		s.world.Player.SetMoving(started)
	}
	if started && s.world.Entities.Len() > 1 {
		s.timer += s.cfg.Step
	}
	s.beatTime += s.cfg.Step
	if !s.music.MusicPlaying() {
		s.music.PlayMusic()
	}
	s.world.Step(s.dt)
}

func (s *Session) onCollect(item *entity.Loot) {
	s.collected[item.Kind]++
}

func (s *Session) World() *World             { return s.world }
func (s *Session) Index() int                { return s.index }
func (s *Session) Timer() time.Duration      { return s.timer }
func (s *Session) Best() time.Duration       { return s.best }
func (s *Session) Beats() []time.Duration    { return s.beats }
func (s *Session) Collected(kind string) int { return s.collected[kind] }
func (s *Session) LevelName() string         { return s.project.Levels[s.index] }

// Countdown returns the beat clock time left before the player starts moving
func (s *Session) Countdown() time.Duration {
	if left := s.cfg.Countdown - s.beatTime; left > 0 {
		return left
	}
	return 0
}

// Snapshot is the per-tick state published to observers
type Snapshot struct {
	Tick    uint64  `json:"tick"`
	Level   string  `json:"level"`
	X       int     `json:"x"`
	Y       int     `json:"y"`
	DirX    int     `json:"dir_x"`
	DirY    int     `json:"dir_y"`
	Blocked [4]bool `json:"blocked"`
	Synced  bool    `json:"synced"`
	Moving  bool    `json:"moving"`
	Debt    float64 `json:"debt"`
	Active  int     `json:"active"`
	Pending int     `json:"pending"`
	Timer   float64 `json:"timer"`
	Best    float64 `json:"best"`
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   s.world.Ticks(),
		Level:  s.LevelName(),
		Active: s.world.Entities.Len() - 1,
		Timer:  s.timer.Seconds(),
		Best:   s.best.Seconds(),
	}
	if p := s.world.Player; p != nil {
		snap.X, snap.Y = p.Rect.X, p.Rect.Y
		snap.DirX, snap.DirY = p.Dir.X, p.Dir.Y
		snap.Blocked = p.Blocked
		snap.Synced = p.Synced()
		snap.Moving = p.Moving()
		snap.Debt = p.Debt()
	}
	snap.Pending = s.world.Spawner.Pending()
	return snap
}
