package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/collecta/audio"
	"github.com/lixenwraith/collecta/config"
	"github.com/lixenwraith/collecta/core"
	"github.com/lixenwraith/collecta/engine"
	"github.com/lixenwraith/collecta/entity"
	"github.com/lixenwraith/collecta/input"
	"github.com/lixenwraith/collecta/level"
	"github.com/lixenwraith/collecta/logging"
	"github.com/lixenwraith/collecta/parameter"
	"github.com/lixenwraith/collecta/render"
	"github.com/lixenwraith/collecta/status"
	"github.com/lixenwraith/collecta/telemetry"
)

var (
	configFlag = flag.String("config", "config.toml", "TOML configuration file; missing file uses built-in defaults")
	keysFlag   = flag.String("keys", "", "YAML key bindings, overrides game.keys_file")
	levelsFlag = flag.String("levels", "", "level project directory, overrides game.levels_dir")
	levelFlag  = flag.Int("level", -1, "start level index, overrides game.start_level")
	debugFlag  = flag.Bool("debug", false, "show the debug overlay")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	log, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	game, err := NewGame(cfg, log)
	if err != nil {
		log.Error("startup failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	game.run()
}

// loadConfig reads path, falling back to defaults when the file does not exist
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

func applyFlags(cfg *config.Config) {
	if *keysFlag != "" {
		cfg.Game.KeysFile = *keysFlag
	}
	if *levelsFlag != "" {
		cfg.Game.LevelsDir = *levelsFlag
	}
	if *levelFlag >= 0 {
		cfg.Game.StartLevel = *levelFlag
	}
	if *debugFlag {
		cfg.Debug.Overlay = true
	}
}

// Game wires the terminal, the simulation and its observers together
type Game struct {
	log    *zap.Logger
	cfg    *config.Config
	screen tcell.Screen

	world    *engine.World
	session  *engine.Session
	clock    *engine.FixedStep
	renderer *render.TerminalRenderer
	input    *input.Dispatcher
	fps      render.FPSCounter

	sound *audio.CuePlayer

	stats     *status.Registry
	ticks     *atomic.Int64
	dropped   *atomic.Int64
	frameRate *status.AtomicFloat
	hub       *telemetry.Hub
	server    *telemetry.Server

	quit bool
}

func NewGame(cfg *config.Config, log *zap.Logger) (*Game, error) {
	project, err := level.LoadProject(cfg.Game.LevelsDir)
	if err != nil {
		return nil, err
	}
	keys, err := input.LoadKeyFile(cfg.Game.KeysFile)
	if err != nil {
		return nil, err
	}

	g := &Game{
		log:   log,
		cfg:   cfg,
		stats: status.NewRegistry(),
	}
	g.ticks = g.stats.Ints.Get("sim.ticks")
	g.dropped = g.stats.Ints.Get("sim.dropped_steps")
	g.frameRate = g.stats.Floats.Get("render.fps")

	// Audio failure is non-fatal; the game runs silent
	var (
		cues  entity.Cues
		music engine.Soundtrack
	)
	if cfg.Audio.Enabled {
		g.sound = audio.NewCuePlayer(log.Named("audio"), audio.Volumes{
			Master:  cfg.Audio.MasterVolume,
			Drop:    cfg.Audio.DropVolume,
			Collect: cfg.Audio.CollectVolume,
			Music:   cfg.Audio.MusicVolume,
		}, cfg.Audio.MusicFile)
		if err := g.sound.Initialize(); err != nil {
			log.Warn("audio initialization failed, continuing without sound", zap.Error(err))
		}
		cues, music = g.sound, g.sound
	}

	g.world = engine.NewWorld(cfg.WorldParams(), cues)
	g.session = engine.NewSession(log.Named("session"), cfg.SessionConfig(), project, g.world, music)
	if err := g.session.Start(cfg.Game.StartLevel); err != nil {
		g.closeSound()
		return nil, err
	}
	g.clock = engine.NewFixedStep(cfg.Game.Tick, cfg.Game.MaxCatchUp, nil)

	screen, err := tcell.NewScreen()
	if err != nil {
		g.closeSound()
		return nil, err
	}
	if err := screen.Init(); err != nil {
		g.closeSound()
		return nil, err
	}
	core.SetCrashScreen(screen)
	g.screen = screen

	g.renderer = render.NewTerminalRenderer(screen, cfg.Player.WorldSize)
	g.renderer.Debug = cfg.Debug.Overlay
	g.renderer.ShowFPS = cfg.Debug.FPS
	g.input = input.NewDispatcher(keys, g.handlers())

	if cfg.Telemetry.Enabled {
		g.hub = telemetry.NewHub(log.Named("telemetry"), cfg.Telemetry.Buffer, g.stats)
		srv, err := telemetry.Start(context.Background(), log.Named("telemetry"), cfg.Telemetry.Addr, g.hub)
		if err != nil {
			log.Warn("telemetry disabled", zap.Error(err))
			g.hub = nil
		} else {
			g.server = srv
		}
	}

	log.Info("collecta started",
		zap.String("levels", cfg.Game.LevelsDir),
		zap.Int("level_count", len(project.Levels)),
		zap.Duration("tick", cfg.Game.Tick),
	)
	return g, nil
}

func (g *Game) handlers() input.Handlers {
	switchLevel := func(name string, fn func() error) func() {
		return func() {
			if err := fn(); err != nil {
				g.log.Error("level switch failed", zap.String("action", name), zap.Error(err))
			}
			g.clock.Reset()
		}
	}
	return input.Handlers{
		Actions: map[input.Action]func(){
			input.ActionQuit:        func() { g.quit = true },
			input.ActionNextLevel:   switchLevel("next", g.session.Next),
			input.ActionPrevLevel:   switchLevel("prev", g.session.Prev),
			input.ActionReload:      switchLevel("reload", g.session.Reload),
			input.ActionBeat:        g.session.Beat,
			input.ActionToggleDebug: func() { g.renderer.Debug = !g.renderer.Debug },
		},
		Stick: func(x, y float64) {
			if p := g.world.Player; p != nil {
				p.SetAnalog(x, y)
			}
		},
		Resize: func(w, h int) {
			g.screen.Sync()
			g.renderer.Resize(w, h)
		},
	}
}

func (g *Game) run() {
	frame := time.NewTicker(g.cfg.Game.Frame)
	defer frame.Stop()

	events := make(chan tcell.Event, parameter.InputQueueSize)
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			g.input.Dispatch(ev)
			if g.quit {
				return
			}

		case now := <-frame.C:
			g.frame(now)
		}
	}
}

// frame runs the simulation steps owed since the previous frame, then draws
func (g *Game) frame(now time.Time) {
	before := g.clock.Dropped
	g.clock.Pump(func() {
		g.session.Step()
		if g.hub != nil {
			g.hub.Publish(g.session.Snapshot())
		}
	})
	if lost := g.clock.Dropped - before; lost > 0 {
		g.log.Debug("simulation fell behind", zap.Uint64("dropped_steps", lost))
	}

	fps := g.fps.Frame(now)
	g.ticks.Store(int64(g.world.Ticks()))
	g.dropped.Store(int64(g.clock.Dropped))
	g.frameRate.Set(fps)

	g.renderer.RenderFrame(g.session, fps)
}

func (g *Game) closeSound() {
	if g.sound != nil {
		g.sound.Cleanup()
	}
}

func (g *Game) cleanup() {
	if g.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		if err := g.server.Shutdown(ctx); err != nil {
			g.log.Debug("telemetry shutdown", zap.Error(err))
		}
		cancel()
	}
	g.closeSound()
	g.screen.Fini()
	core.SetCrashScreen(nil)
	g.log.Info("collecta stopped", zap.Uint64("ticks", g.world.Ticks()), zap.Duration("best", g.session.Best()))
}
