package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/arena/audio"
	"github.com/lixenwraith/arena/config"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/game"
	"github.com/lixenwraith/arena/host"
	"github.com/lixenwraith/arena/host/window"
	"github.com/lixenwraith/arena/render"
)

var (
	configFlag   = flag.String("config", "", "Scene TOML file (default: embedded arena)")
	frontendFlag = flag.String("frontend", "auto", "Frontend: auto, terminal, window, headless")
	ticksFlag    = flag.Int("ticks", 0, "Stop after N ticks in headless mode (0 = until interrupted)")
	recordFlag   = flag.String("record", "", "Record render frames to a msgpack file")
	profileFlag  = flag.String("profile", "off", "Profile: cpu, mem, off")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/arena-debug.log")
	muteFlag     = flag.Bool("mute", false, "Disable audio")
	parallelFlag = flag.Bool("parallel", false, "Run non-conflicting systems concurrently")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "arena: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	prof, err := startProfile(*profileFlag)
	if err != nil {
		return err
	}
	defer prof.Stop()

	sc, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	sc.ApplyEnv()

	frontend := *frontendFlag
	if frontend == "auto" {
		frontend = "headless"
		if term.IsTerminal(int(os.Stdout.Fd())) {
			frontend = "terminal"
		}
	}

	var player audio.Player = audio.NopPlayer{}
	if !*muteFlag && frontend != "headless" {
		player = audio.Open(sc.Audio.Enabled, sc.Audio.Volume)
	}

	g, err := game.New(sc, game.Options{Parallel: *parallelFlag, Player: player})
	if err != nil {
		return err
	}
	defer g.Close()

	var sink host.FrameSink
	if *recordFlag != "" {
		f, err := os.Create(*recordFlag)
		if err != nil {
			return fmt.Errorf("record: %w", err)
		}
		rec := render.NewRecorder(f)
		defer func() {
			if err := rec.Close(); err != nil {
				log.Printf("record: %v", err)
			}
			log.Printf("record: %d frames to %s", rec.Frames(), *recordFlag)
		}()
		sink = rec
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("frontend: %s", frontend)
	switch frontend {
	case "terminal":
		return runTerminal(ctx, g, sink)
	case "window":
		return window.Run(g, sink)
	case "headless":
		_, err := host.RunHeadless(ctx, g, host.HeadlessOptions{Ticks: *ticksFlag, Sink: sink})
		return err
	default:
		return fmt.Errorf("unknown frontend %q", frontend)
	}
}

func runTerminal(ctx context.Context, g *game.Game, sink host.FrameSink) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	core.RegisterCrashTerminal(screen)
	defer func() {
		core.RegisterCrashTerminal(nil)
		screen.Fini()
	}()

	return host.RunTerminal(ctx, g, screen, host.TerminalOptions{Sink: sink})
}
