package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/JeremyLoy/config"
	"github.com/gdamore/tcell/v2"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/worldstore/audio"
	"github.com/lixenwraith/worldstore/core"
	"github.com/lixenwraith/worldstore/engine"
	"github.com/lixenwraith/worldstore/parameter"
)

// Config is read from WORLDSTORE_* environment variables, then overridden by flags
type Config struct {
	LogPath  string  `config:"WORLDSTORE_LOG"`
	LogLevel string  `config:"WORLDSTORE_LOG_LEVEL"`
	Audio    bool    `config:"WORLDSTORE_AUDIO"`
	Gain     float64 `config:"WORLDSTORE_GAIN"`
	FPS      int     `config:"WORLDSTORE_FPS"`
	Seed     int64   `config:"WORLDSTORE_SEED"`
}

func loadConfig(args []string) (Config, error) {
	cfg := Config{
		LogPath:  parameter.SandboxLogPath,
		LogLevel: parameter.SandboxLogLevel,
		Audio:    true,
		Gain:     parameter.SandboxGain,
		FPS:      parameter.SandboxFPS,
		Seed:     parameter.SandboxSeed,
	}
	if err := config.FromEnv().To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "read environment")
	}

	fs := flag.NewFlagSet("bounds-sandbox", flag.ContinueOnError)
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "Log file path")
	fs.StringVar(&cfg.LogLevel, "level", cfg.LogLevel, "Log level: trace|debug|info|warn|error")
	fs.BoolVar(&cfg.Audio, "audio", cfg.Audio, "Play contact and portal cues")
	fs.Float64Var(&cfg.Gain, "gain", cfg.Gain, "Cue volume in [0, 1]")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "Simulation and render rate")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "World generation seed")
	if err := fs.Parse(args); err != nil {
		return cfg, eris.Wrap(err, "parse flags")
	}

	if cfg.FPS <= 0 {
		return cfg, eris.Errorf("fps must be positive, got %d", cfg.FPS)
	}
	return cfg, nil
}

func main() {
	defer func() { core.HandleCrash(recover()) }()

	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(logFile).Level(level).With().Timestamp().Str("cmd", "bounds-sandbox").Logger()
	core.RegisterCrashLogger(log)

	cues := audio.NewCuePlayer(cfg.Gain, log)
	if cfg.Audio {
		if err := cues.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, running silent")
		}
	}
	defer cues.Cleanup()

	scr, err := tcell.NewScreen()
	if err != nil {
		log.Error().Err(err).Msg("create screen")
		fmt.Fprintf(os.Stderr, "create screen: %v\n", err)
		os.Exit(1)
	}
	if err := scr.Init(); err != nil {
		log.Error().Err(err).Msg("init screen")
		fmt.Fprintf(os.Stderr, "init screen: %v\n", err)
		os.Exit(1)
	}
	core.RegisterCrashTerminal(scr)
	defer scr.Fini()
	scr.HideCursor()

	active := engine.NewRegistry(engine.WithLogger(log.With().Str("world", "active").Logger()))
	s := newSandbox(active, cfg.Seed, cues, log)

	events := make(chan tcell.Event, 32)
	core.Go(func() {
		for {
			ev := scr.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()
	dt := 1 / float64(cfg.FPS)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				scr.Sync()
			case *tcell.EventKey:
				if s.handleKey(ev) {
					active.LogStats(zerolog.InfoLevel)
					return
				}
			}

		case now := <-ticker.C:
			s.step(dt, now)
			s.render(scr)
		}
	}
}
