package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lixenwraith/drone-runner/config"
	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/engine"
	"github.com/lixenwraith/drone-runner/persistence"
	"github.com/lixenwraith/drone-runner/pixel"
	"github.com/lixenwraith/drone-runner/status"
	"github.com/lixenwraith/drone-runner/systems"
)

var (
	configFlag = flag.String("config", "", "Config file path (default: user config dir)")
	envFlag    = flag.String("env", ".env", "Dotenv file path")
	seedFlag   = flag.Int64("seed", 0, "Obstacle seed (0: from clock)")
	scaleFlag  = flag.Int("scale", 1, "Window scale factor")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var sound *pixel.TonePlayer
	if cfg.Audio.Enabled {
		sound = pixel.NewTonePlayer(cfg.Audio)
	}

	sc := engine.SessionConfig{
		Scores: persistence.NewScoreboard(persistence.Open(cfg.ScoreFile), constants.BestScoreKey),
		Rand:   rand.New(rand.NewSource(seed)),
		Status: status.NewRegistry(),
	}
	if sound != nil {
		sc.Sound = sound
	}
	session := engine.NewGameSession(sc)
	systems.Register(session)

	scale := max(1, *scaleFlag)
	ebiten.SetWindowSize(int(constants.FieldWidth)*scale, int(constants.FieldHeight)*scale)
	ebiten.SetWindowTitle(constants.TitleText)
	ebiten.SetTPS(cfg.FPS)

	game := pixel.NewGame(engine.NewDriver(session, nil), sound)
	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
