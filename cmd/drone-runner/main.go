package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lixenwraith/drone-runner/audio"
	"github.com/lixenwraith/drone-runner/config"
	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/core"
	"github.com/lixenwraith/drone-runner/engine"
	"github.com/lixenwraith/drone-runner/input"
	"github.com/lixenwraith/drone-runner/persistence"
	"github.com/lixenwraith/drone-runner/status"
	"github.com/lixenwraith/drone-runner/systems"
	"github.com/lixenwraith/drone-runner/terminal"
)

var (
	configFlag = flag.String("config", "", "Config file path (default: user config dir)")
	envFlag    = flag.String("env", ".env", "Dotenv file path")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/")
	seedFlag   = flag.Int64("seed", 0, "Obstacle seed (0: from clock)")
	fpsFlag    = flag.Int("fps", 0, "Frame rate override")
	muteFlag   = flag.Bool("mute", false, "Start muted")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg)

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	keys, err := input.LoadKeyTable(cfg.Keymap)
	if err != nil {
		log.Printf("Keymap ignored: %v", err)
	}

	reg := status.NewRegistry()

	sound := audio.NewSoundManager(cfg.Audio, reg)
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()
	if *muteFlag {
		sound.SetMuted(true)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session := engine.NewGameSession(engine.SessionConfig{
		Scores: persistence.NewScoreboard(persistence.Open(cfg.ScoreFile), constants.BestScoreKey),
		Sound:  sound,
		Rand:   rand.New(rand.NewSource(seed)),
		Status: reg,
	})
	systems.Register(session)
	driver := engine.NewDriver(session, nil)

	screen, err := terminal.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := terminal.NewApp(screen, driver, terminal.Options{
		FrameInterval: time.Second / time.Duration(cfg.FPS),
		Keys:          keys,
		Audio:         sound,
	})
	log.Printf("Starting: seed=%d fps=%d best=%d", seed, cfg.FPS, session.Best())

	if err := app.Run(ctx); err != nil {
		log.Printf("Run failed: %v", err)
	}
}

// applyFlags lets command-line flags override file and environment values
func applyFlags(cfg *config.Config) {
	if *debugFlag {
		cfg.Debug = true
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *fpsFlag > 0 {
		cfg.FPS = *fpsFlag
	}
}
