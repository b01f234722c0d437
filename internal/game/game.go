// Package game runs the maze editor and the real-time shooter on a tcell
// screen.
package game

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"time"

	"maze-shooter/internal/config"
	"maze-shooter/internal/ecs"
	"maze-shooter/internal/grid"
	"maze-shooter/internal/maze"
	"maze-shooter/internal/physics"
	"maze-shooter/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// Mode tracks the main state machine.
type Mode uint8

const (
	ModeEdit Mode = iota
	ModePlay
	ModeWon
	ModeLost
)

func (m Mode) String() string {
	switch m {
	case ModeEdit:
		return "EDIT"
	case ModePlay:
		return "PLAY"
	case ModeWon:
		return "WON"
	case ModeLost:
		return "LOST"
	}
	return "?"
}

// maxMessages bounds the message log.
const maxMessages = 50

// maxFrame caps the simulated time of one tick so a stalled terminal does
// not make entities jump.
const maxFrame = 0.1

// Options configures a Game.
type Options struct {
	Config config.Config
	// MazePath is where the editor saves and loads. Defaults to Config.SaveFile.
	MazePath string
	// RunLogDir overrides where runs.jsonl is written. Empty uses the XDG
	// data directory.
	RunLogDir string
	Logger    zerolog.Logger
	// Seed drives maze generation. Zero seeds from the clock.
	Seed int64
}

// Game is the top-level orchestrator.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	cfg      config.Config
	log      zerolog.Logger
	rng      *rand.Rand

	mazePath  string
	runLogDir string
	maze      *maze.Maze
	layout    grid.Layout
	cursor    grid.Coord

	mode     Mode
	world    *ecs.World
	playerID ecs.EntityID
	keys     heldKeys
	fire     bool
	aim      *physics.Vec
	run      RunLog

	messages []string
	quit     bool
}

// NewTerminal creates a Game on the process terminal.
func NewTerminal(opts Options) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	g, err := New(screen, opts)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return g, nil
}

// New creates a Game on an initialized screen. The maze at the save path is
// loaded when present; otherwise the editor starts with an empty maze.
func New(screen tcell.Screen, opts Options) (*Game, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	path := opts.MazePath
	if path == "" {
		path = cfg.SaveFile
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	screen.EnableMouse()

	g := &Game{
		screen:    screen,
		renderer:  render.NewRenderer(screen, render.ThemeByName(cfg.Theme)),
		cfg:       cfg,
		log:       opts.Logger,
		rng:       rand.New(rand.NewSource(seed)),
		mazePath:  path,
		runLogDir: opts.RunLogDir,
		layout:    grid.NewLayout(cfg.CellSize),
		keys:      heldKeys{hold: cfg.InputHold},
	}

	m, err := maze.Load(path)
	switch {
	case err == nil:
		g.maze = m
		g.addMessage(fmt.Sprintf("Loaded %s.", path))
	case errors.Is(err, fs.ErrNotExist):
		m, err = maze.New(cfg.MazeWidth, cfg.MazeHeight)
		if err != nil {
			return nil, err
		}
		g.maze = m
		g.addMessage("New maze. Press g to generate one.")
	default:
		return nil, err
	}
	g.log.Info().Str("maze", path).Int("width", g.maze.Width()).Int("height", g.maze.Height()).Msg("game ready")
	return g, nil
}

// Mode returns the current mode.
func (g *Game) Mode() Mode { return g.mode }

// Maze returns the maze being edited or played.
func (g *Game) Maze() *maze.Maze { return g.maze }

// StartPlay leaves the editor and starts a run on the current maze. It
// fails when the maze cannot be played, leaving the editor open.
func (g *Game) StartPlay() error {
	if err := g.maze.Validate(); err != nil {
		return err
	}
	g.startPlay()
	return nil
}

// Run is the main loop. An input goroutine forwards screen events while a
// ticker drives the simulation. It returns when the player quits, the screen
// closes or ctx is done, and finalizes the screen.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Fini()

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(g.cfg.TickInterval())
	defer ticker.Stop()
	last := time.Now()

	g.draw()
	for !g.quit {
		select {
		case <-ctx.Done():
			g.abandonRun()
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				g.abandonRun()
				return nil
			}
			g.handleEvent(ev)
			g.draw()
		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), maxFrame)
			last = now
			if g.mode == ModePlay {
				g.Update(dt)
				g.draw()
			}
		}
	}
	g.abandonRun()
	return nil
}

// handleEvent routes one screen event to the current mode.
func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
	case *tcell.EventKey:
		switch g.mode {
		case ModeEdit:
			g.editAction(editKeyToAction(ev))
		case ModePlay:
			g.playAction(playKeyToAction(ev))
		default:
			g.endAction(endKeyToAction(ev))
		}
	case *tcell.EventMouse:
		cell := g.renderer.ScreenToCell(ev.Position())
		switch g.mode {
		case ModeEdit:
			g.editMouse(cell, ev.Buttons(), ev.Modifiers())
		case ModePlay:
			if ev.Buttons()&tcell.Button1 != 0 {
				g.aimAt(cell)
			}
		}
	}
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

// lastMessage returns the newest message, or "".
func (g *Game) lastMessage() string {
	if len(g.messages) == 0 {
		return ""
	}
	return g.messages[len(g.messages)-1]
}
