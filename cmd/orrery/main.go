// Command orrery runs the planetary system simulation in a terminal, headless, or as a snapshot server
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/orrery/asset"
	"github.com/lixenwraith/orrery/audio"
	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/input"
	"github.com/lixenwraith/orrery/metrics"
	"github.com/lixenwraith/orrery/render"
	"github.com/lixenwraith/orrery/render/renderer"
	"github.com/lixenwraith/orrery/scene"
	"github.com/lixenwraith/orrery/server"
	"github.com/lixenwraith/orrery/service"
	"github.com/lixenwraith/orrery/status"
)

var (
	configPath  = flag.String("config", "", "System TOML file (empty uses the built-in system)")
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/orrery.log")
	headless    = flag.Bool("headless", false, "Run -ticks ticks without a UI and print a report")
	ticks       = flag.Int("ticks", 1000, "Ticks to simulate in headless mode")
	serveAddr   = flag.String("serve", "", "Serve /ws, /snapshot and /metrics on this address")
	noTUI       = flag.Bool("no-tui", false, "Run the simulation and server without the terminal UI")
	audioFlag   = flag.Bool("audio", false, "Play a chime on every completed orbit")
	seedFlag    = flag.Uint64("seed", 0, "Override the physics seed (0 keeps the config value)")
	colorFlag   = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	keymapPath  = flag.String("keymap", "", "TOML keymap overriding the default bindings")
	printConfig = flag.Bool("print-config", false, "Print the annotated default system and exit")
)

// app holds everything shared by the run modes
type app struct {
	cfg       *config.Config
	reg       *status.Registry
	collector *metrics.Collector
	loader    *asset.Loader
	scene     *scene.Scene
	audio     *audio.SoundManager
}

func newApp(cfg *config.Config) (*app, error) {
	reg := status.NewRegistry()
	collector := metrics.New(reg)
	loader := asset.NewLoader(cfg.AssetsDir, nil)

	sc, err := scene.New(scene.Options{
		Config:   cfg,
		Loader:   loader,
		Status:   reg,
		Observer: collector,
	})
	if err != nil {
		return nil, err
	}

	sm := audio.NewSoundManager(cfg.Audio)
	sc.OnOrbitComplete(collector.ObserveOrbit)
	sc.OnOrbitComplete(sm.OnOrbit)

	return &app{
		cfg:       cfg,
		reg:       reg,
		collector: collector,
		loader:    loader,
		scene:     sc,
		audio:     sm,
	}, nil
}

// services builds the hub for the live modes; frameReady is nil when nothing renders
func (a *app) services(frameReady <-chan struct{}, serve bool) (*service.Hub, *engine.Scheduler, <-chan struct{}, error) {
	sched, updateDone := engine.NewScheduler(a.scene, nil, a.cfg.Engine.TickInterval.Duration, frameReady, a.reg)

	hub := service.NewHub()
	svcs := []service.Service{sched, a.audio}
	if serve {
		svcs = append(svcs, server.New(a.cfg.Server, a.scene, a.collector, a.reg))
	}
	for _, svc := range svcs {
		if err := hub.Register(svc); err != nil {
			return nil, nil, nil, err
		}
	}
	if err := hub.InitAll(); err != nil {
		return nil, nil, nil, err
	}
	return hub, sched, updateDone, nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}
	if *seedFlag != 0 {
		cfg.Physics.Seed = *seedFlag
	}
	if *serveAddr != "" {
		cfg.Server.Addr = *serveAddr
	}
	if *audioFlag {
		cfg.Audio.Enabled = true
	}
	return cfg, nil
}

func loadKeyTable(path string) (*input.KeyTable, error) {
	table := input.DefaultKeyTable()
	if path == "" {
		return table, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, err
	}
	table.Merge(override)
	return table, nil
}

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	if *printConfig {
		fmt.Print(asset.DefaultSystemConfig)
		return 0
	}

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
		return 1
	}

	a, err := newApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
		return 1
	}
	defer a.scene.Close()

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	serve := *serveAddr != "" || *noTUI

	switch {
	case *headless || (!interactive && !*noTUI):
		err = runHeadless(a, *ticks, os.Stdout)
	case *noTUI:
		err = runServer(a)
	default:
		err = runTUI(a, serve)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
		return 1
	}
	return 0
}

// runHeadless steps the scene synchronously and prints a styled summary
func runHeadless(a *app, n int, w io.Writer) error {
	if n < 0 {
		return fmt.Errorf("ticks %d: must be non-negative", n)
	}

	start := time.Now()
	for i := 0; i < n; i++ {
		a.scene.Tick()
	}
	elapsed := time.Since(start)

	snap := a.scene.Snapshot()
	r := report{
		Ticks:      snap.Tick,
		SimTime:    snap.Time,
		Elapsed:    elapsed,
		Mode:       snap.Mode,
		Speed:      snap.Speed,
		Collisions: snap.Collisions,
		Bodies:     snap.Bodies,
	}
	_, err := fmt.Fprintln(w, r.Render())
	return err
}

// runServer ticks freely and serves until SIGINT or SIGTERM
func runServer(a *app) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub, _, _, err := a.services(nil, true)
	if err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()

	fmt.Fprintf(os.Stderr, "orrery: serving on %s\n", a.cfg.Server.Addr)
	<-ctx.Done()
	return nil
}

func applyColorMode(mode string) {
	switch mode {
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
	}
}

// runTUI draws every completed tick and feeds keys to the input handler
func runTUI(a *app, serve bool) error {
	table, err := loadKeyTable(*keymapPath)
	if err != nil {
		return fmt.Errorf("keymap: %w", err)
	}

	applyColorMode(*colorFlag)
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	core.RegisterResetHook(screen.Fini)
	defer screen.Fini()
	screen.HideCursor()

	orch := render.NewOrchestrator(screen, a.reg)
	hud := renderer.NewHUDRenderer()
	orch.Register(renderer.NewStarfieldRenderer(), render.PriorityStarfield)
	orch.Register(renderer.NewOrbitRenderer(), render.PriorityOrbits)
	orch.Register(renderer.NewBeltRenderer(), render.PriorityBelt)
	orch.Register(renderer.NewBodyRenderer(), render.PriorityBodies)
	orch.Register(renderer.NewLabelRenderer(), render.PriorityLabels)
	orch.Register(hud, render.PriorityHUD)

	frameReady := make(chan struct{}, 1)
	hub, sched, updateDone, err := a.services(frameReady, serve)
	if err != nil {
		return err
	}

	handler := input.NewHandler(table, a.scene)
	handler.SetPauser(sched)
	handler.SetHUD(hud)
	handler.SetMute(a.audio)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	// First frame is free so the scheduler's first tick does not wait
	frameReady <- struct{}{}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()

	var frame scene.Frame
	draw := func() {
		a.scene.FrameInto(&frame)
		orch.RenderFrame(&frame, sched.IsPaused())
	}
	draw()

	frameTicker := time.NewTicker(a.cfg.Engine.FrameInterval.Duration)
	defer frameTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				orch.Resize()
				draw()
			case *tcell.EventKey:
				if handler.HandleKey(ev) == input.IntentQuit {
					return nil
				}
			case *tcell.EventError:
				return errors.New(ev.Error())
			}

		case <-updateDone:
			draw()
			select {
			case frameReady <- struct{}{}:
			default:
			}

		case <-frameTicker.C:
			// Keep the view live while paused; camera and toggles still change
			if sched.IsPaused() {
				draw()
			}
		}
	}
}
