package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vmath-kit/audio"
	"github.com/lixenwraith/vmath-kit/core"
	"github.com/lixenwraith/vmath-kit/logger"
	"github.com/lixenwraith/vmath-kit/vmath"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

var (
	debugFlag = flag.Bool("debug", false, "Write logs to "+logger.DefaultDir+"/"+logger.FileName)
	seedFlag  = flag.Uint64("seed", 0, "RNG seed, 0 for time based")
	chokeFlag = flag.Int("choke", 1, "Initial choke for random sampling (1-12)")
	speedFlag = flag.Float64("speed", vmath.DefaultEaseSpeed, "Ease speed per frame (0-1]")
	audioFlag = flag.Bool("audio", true, "Enable audio feedback")
)

var (
	styleA       = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue)
	styleB       = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleHit     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleTarget  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleSample  = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLightGray)
	styleOverlap = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
)

type app struct {
	screen tcell.Screen
	sim    *Sandbox
	player *audio.Player
	noise  bool
}

func newApp(seed uint64) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()

	// The noise bed samples on the speaker goroutine and gets its own generator
	simRng := rand.New(rand.NewPCG(seed, 1))
	noiseRng := rand.New(rand.NewPCG(seed, 2))

	w, h := screen.Size()
	a := &app{
		screen: screen,
		sim:    newSandbox(w, h, simRng, *chokeFlag, *speedFlag),
		player: audio.NewPlayer(noiseRng, *chokeFlag),
	}

	if *audioFlag {
		// Non-fatal, sandbox runs silent
		if err := a.player.Initialize(); err != nil {
			logger.Log().Warn().Err(err).Msg("audio disabled")
		}
	}
	return a, nil
}

func (a *app) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			a.sim.MoveTarget(0, -1)
		case tcell.KeyDown:
			a.sim.MoveTarget(0, 1)
		case tcell.KeyLeft:
			a.sim.MoveTarget(-1, 0)
		case tcell.KeyRight:
			a.sim.MoveTarget(1, 0)
		case tcell.KeyRune:
			return a.handleRune(ev.Rune())
		}

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			a.sim.SetTargetCell(x, y)
		}

	case *tcell.EventResize:
		a.screen.Sync()
		w, h := a.screen.Size()
		a.sim.Resize(w, h)
		logger.Log().Debug().Int("width", w).Int("height", h).Msg("resize")
	}
	return true
}

func (a *app) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 'r':
		a.sim.Randomize()
		logger.Log().Debug().
			Float64("radiusA", a.sim.A.Radius).
			Float64("radiusB", a.sim.B.Radius).
			Int("choke", a.sim.Choke).
			Msg("randomized")
	case 's':
		a.sim.Scatter()
	case 'c':
		a.sim.Samples = a.sim.Samples[:0]
	case '+', '=':
		a.sim.AdjustChoke(1)
		a.player.SetChoke(a.sim.Choke)
	case '-':
		a.sim.AdjustChoke(-1)
		a.player.SetChoke(a.sim.Choke)
	case 'n':
		a.noise = a.player.ToggleNoise()
	}
	return true
}

func (a *app) update() {
	if a.sim.Step() {
		logger.Log().Debug().Int("points", len(a.sim.Points)).Msg("intersection count changed")
		a.player.PlayIntersections(len(a.sim.Points))
	}
}

func (a *app) draw() {
	a.screen.Clear()

	for _, p := range a.sim.Samples {
		a.plot(p, '·', styleSample)
	}
	a.drawCircle(a.sim.A, styleA)
	a.drawCircle(a.sim.B, styleB)
	a.plot(a.sim.A.Center, '+', styleA)
	a.plot(a.sim.B.Center, '+', styleB)
	a.plot(a.sim.Target, 'x', styleTarget)
	for _, p := range a.sim.Points {
		a.plot(p, '●', styleHit)
	}

	a.drawStatus()
	a.screen.Show()
}

func (a *app) drawCircle(c Circle, style tcell.Style) {
	// One step per half cell of circumference
	steps := max(int(2*math.Pi*c.Radius*2), 16)
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		a.plot(core.Point{
			X: c.Center.X + c.Radius*math.Cos(theta),
			Y: c.Center.Y + c.Radius*math.Sin(theta),
		}, '∙', style)
	}
}

func (a *app) plot(p core.Point, r rune, style tcell.Style) {
	if !vmath.AreaContains(a.sim.Bounds, p) {
		return
	}
	x, y := worldToCell(p)
	a.screen.SetContent(x, y, r, nil, style)
}

func (a *app) drawStatus() {
	w, h := a.screen.Size()
	overlap := a.sim.Overlap()

	status := fmt.Sprintf(" hits:%d  heading:%6.1f°  overlap:%5.2f  choke:%d  noise:%v  |  arrows/mouse move  r rand  s scatter  c clear  +/- choke  n noise  q quit ",
		len(a.sim.Points),
		vmath.Round(a.sim.Heading(), 0.1),
		vmath.Round(overlap, 0.01),
		a.sim.Choke,
		a.noise,
	)

	style := styleStatus
	if overlap >= 0 && overlap <= 1 {
		style = styleOverlap
	}
	col := 0
	for _, r := range status {
		if col >= w {
			break
		}
		a.screen.SetContent(col, h-1, r, nil, style)
		col++
	}
	for ; col < w; col++ {
		a.screen.SetContent(col, h-1, ' ', nil, style)
	}
}

func (a *app) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}
		case <-ticker.C:
			a.update()
			a.draw()
		}
	}
}

func (a *app) cleanup() {
	a.player.Cleanup()
	a.screen.Fini()
}

func main() {
	flag.Parse()

	logFile, err := logger.Setup(*debugFlag, logger.DefaultDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Log().Info().Uint64("seed", seed).Int("choke", *chokeFlag).Float64("speed", *speedFlag).Msg("starting sandbox")

	a, err := newApp(seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			a.cleanup()
			logger.Log().Error().Interface("panic", r).Msg("sandbox crashed")
			fmt.Fprintf(os.Stderr, "\nVMATH-SANDBOX CRASHED: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	a.run()
	a.cleanup()
}
