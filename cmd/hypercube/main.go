package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/e-schultz/hypercube/audio"
	"github.com/e-schultz/hypercube/config"
	"github.com/e-schultz/hypercube/engine"
	"github.com/e-schultz/hypercube/geom"
	"github.com/e-schultz/hypercube/input"
	"github.com/e-schultz/hypercube/render"
	"github.com/e-schultz/hypercube/scene"
)

// eventQueueSize buffers the poller goroutine ahead of the select loop.
const eventQueueSize = 100

var (
	colorFlag    = flag.String("color", "", "Color mode: auto, truecolor, 256")
	fpsFlag      = flag.Int("fps", 0, "Frame rate cap")
	logFlag      = flag.String("log", "", "Append log output to a file")
	contrastFlag = flag.Bool("contrast", false, "Start in high-contrast mode")
	noSoundFlag  = flag.Bool("no-sound", false, "Start with the hover tone disabled")
)

// App owns the wired subsystems for the lifetime of the program.
type App struct {
	screen        tcell.Screen
	opts          config.Options
	state         *scene.State
	camera        geom.Camera
	animator      *engine.Animator
	machine       *input.Machine
	orchestrator  *render.Orchestrator
	hypercube     *render.HypercubeRenderer
	hud           *render.HUDRenderer
	audio         *audio.Manager
	width, height int
}

func NewApp(opts config.Options) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	// Mouse capture also suppresses the terminal's native text selection
	screen.EnableMouse()

	manager := audio.NewManager()
	if err := manager.Init(); err != nil {
		// Non-fatal, the scene can run without sound
		log.Printf("Audio initialization failed: %v (continuing without sound)", err)
	}

	state := scene.NewState(opts.HighContrast, opts.Sound)
	hypercube := render.NewHypercubeRenderer()
	hud := render.NewHUDRenderer(manager.Ready())

	width, height := screen.Size()
	orch := render.NewOrchestrator(screen, width, height)
	orch.Register(hypercube, render.PriorityHypercube)
	orch.Register(render.NewFractalRenderer(state), render.PriorityFractal)
	orch.Register(render.NewStageLabelsRenderer(state), render.PriorityCaptions)
	orch.Register(hud, render.PriorityHUD)

	app := &App{
		screen:       screen,
		opts:         opts,
		state:        state,
		camera:       geom.NewCamera(),
		animator:     engine.NewAnimator(engine.TickInterval),
		machine:      input.NewMachine(),
		orchestrator: orch,
		hypercube:    hypercube,
		hud:          hud,
		audio:        manager,
		width:        width,
		height:       height,
	}
	app.applyAudio()
	return app, nil
}

// applyAudio reconciles the tone with the current sound and hover state.
func (a *App) applyAudio() {
	view := a.state.Snapshot()
	a.audio.Apply(view.SoundEnabled, view.Hovered)
}

// routeClick dispatches a click through the HUD switches first, then the
// cube's projected footprint. Clicks elsewhere do nothing.
func (a *App) routeClick(x, y int) {
	switch {
	case a.hud.ContrastBox().Contains(x, y):
		a.state.ToggleContrast()
	case a.hud.SoundBox().Contains(x, y):
		a.state.ToggleSound()
		a.applyAudio()
	case a.hypercube.Bounds().Contains(x, y):
		a.state.ToggleClicked()
	}
}

// routeHover updates the hover state against the previous frame's cube
// footprint and re-applies the tone on transitions.
func (a *App) routeHover(x, y int) {
	if a.state.SetHovered(a.hypercube.Bounds().Contains(x, y)) {
		a.applyAudio()
	}
}

// handleIntent applies one intent. Returns false when the app should exit.
func (a *App) handleIntent(intent *input.Intent) bool {
	if intent == nil {
		return true
	}

	switch intent.Type {
	case input.IntentQuit:
		return false
	case input.IntentResize:
		a.width, a.height = a.screen.Size()
		a.orchestrator.Resize(a.width, a.height)
	case input.IntentToggleContrast:
		a.state.ToggleContrast()
	case input.IntentToggleSound:
		a.state.ToggleSound()
		a.applyAudio()
	case input.IntentActivate:
		a.state.ToggleClicked()
	case input.IntentClick:
		a.routeClick(intent.X, intent.Y)
	case input.IntentHover:
		a.routeHover(intent.X, intent.Y)
	case input.IntentDrag:
		a.camera.Orbit(intent.DX, intent.DY)
	case input.IntentZoom:
		a.camera.Zoom(intent.Steps)
	}
	return true
}

func (a *App) frame() {
	view := a.state.Snapshot()
	angleX, angleY := a.animator.Angles()

	a.orchestrator.Frame(render.RenderContext{
		Scene:   view,
		Palette: scene.PaletteFor(view.HighContrast),
		AngleX:  angleX,
		AngleY:  angleY,
		Camera:  a.camera,
		Width:   a.width,
		Height:  a.height,
	})
}

func (a *App) run() {
	a.animator.Start()
	defer a.animator.Stop()

	ticker := time.NewTicker(a.opts.FrameInterval())
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, eventQueueSize)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleIntent(a.machine.Process(ev)) {
				return
			}

		case <-ticker.C:
			a.frame()
		}
	}
}

func (a *App) cleanup() {
	a.audio.Close()
	a.screen.DisableMouse()
	a.screen.Fini()
}

// overlayFlags applies explicitly-set command-line values over the
// env-derived options. Zero values mean "not set".
func overlayFlags(opts config.Options) config.Options {
	if *colorFlag != "" {
		opts.ColorMode = *colorFlag
	}
	if *fpsFlag > 0 {
		opts.FPS = *fpsFlag
	}
	if *logFlag != "" {
		opts.LogFile = *logFlag
	}
	if *contrastFlag {
		opts.HighContrast = true
	}
	if *noSoundFlag {
		opts.Sound = false
	}
	return opts.Normalize()
}

// applyColorMode biases tcell's capability detection before screen creation.
// tcell reads COLORTERM for the same decision the -color flag expresses.
func applyColorMode(mode string) {
	switch mode {
	case config.ColorTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	case config.Color256:
		os.Setenv("COLORTERM", "")
	}
}

func main() {
	flag.Parse()

	opts := overlayFlags(config.Load())

	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	applyColorMode(opts.ColorMode)

	// Panic recovery: restore the terminal before the stack trace so it
	// stays readable after the screen is torn down
	var app *App
	defer func() {
		if r := recover(); r != nil {
			if app != nil {
				app.screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\nhypercube crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	app, err := NewApp(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()

	app.run()
}
