package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sparkburst/audio"
	"github.com/lixenwraith/sparkburst/config"
	"github.com/lixenwraith/sparkburst/core"
	"github.com/lixenwraith/sparkburst/engine"
	"github.com/lixenwraith/sparkburst/render"
	"github.com/lixenwraith/sparkburst/system"
	"github.com/lixenwraith/sparkburst/vmath"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 uses config or the clock")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/sparkburst.log")
	muteFlag   = flag.Bool("mute", false, "Disable the burst sound")
	fpsFlag    = flag.Int("fps", 0, "Frame rate override")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the trace
	core.SetCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	// Normal exit terminal cleanup
	defer screen.Fini()

	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	term, err := render.NewTerminal(screen, cfg.View)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to create renderer: %v\n", err)
		os.Exit(1)
	}

	world := engine.NewWorld()
	world.Resource.Config.Config = cfg

	var sound *audio.Engine
	if cfg.Audio {
		sound = audio.NewEngine()
		if err := sound.Initialize(); err == nil {
			world.Resource.Audio.Player = sound
			defer sound.Close()
		} else {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
			sound = nil
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("starting: seed=%d fps=%d", seed, cfg.FrameRate)

	system.RegisterAll(world, vmath.NewFastRand(seed))

	clock := engine.NewFrameClock(engine.NewMonotonicTimeProvider())
	app := NewApp(screen, world, clock, term)
	app.SetSound(sound)
	app.Run(cfg.FrameRate)
}

// applyFlags lets explicitly set flags override the config file
func applyFlags(cfg *config.Config) {
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *muteFlag {
		cfg.Audio = false
	}
	if *fpsFlag > 0 {
		cfg.FrameRate = *fpsFlag
	}
}
