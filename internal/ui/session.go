package ui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/volvasvoyage/internal/game"
	"github.com/samdwyer/volvasvoyage/internal/world"
)

// command is a player input decoded from a key press.
type command int

const (
	cmdNone command = iota
	cmdUp
	cmdDown
	cmdLeft
	cmdRight
	cmdInteract
	cmdTravel
	cmdRest
	cmdQuit
)

// commandFor decodes a key press.
func commandFor(key tcell.Key, ch rune) command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyUp:
		return cmdUp
	case tcell.KeyDown:
		return cmdDown
	case tcell.KeyLeft:
		return cmdLeft
	case tcell.KeyRight:
		return cmdRight
	case tcell.KeyRune:
		switch ch {
		case 'k', 'w':
			return cmdUp
		case 'j', 's':
			return cmdDown
		case 'h', 'a':
			return cmdLeft
		case 'l', 'd':
			return cmdRight
		case 'e', 'E':
			return cmdInteract
		case 't', 'T':
			return cmdTravel
		case 'r', 'R':
			return cmdRest
		case 'q', 'Q':
			return cmdQuit
		}
	}
	return cmdNone
}

// Session runs the interactive loop over a World.
type Session struct {
	screen   *Screen
	renderer *Renderer
	world    *game.World
	messages *MessageLog
	logger   *log.Logger
	running  bool
}

// NewSession creates a session. The world must already hold an area.
func NewSession(screen *Screen, w *game.World, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		screen:   screen,
		renderer: NewRenderer(screen),
		world:    w,
		messages: &MessageLog{},
		logger:   logger,
		running:  true,
	}
}

// Messages returns the session console.
func (s *Session) Messages() *MessageLog {
	return s.messages
}

// Run executes the main loop until the player quits.
func (s *Session) Run(ctx context.Context) error {
	defer s.screen.Close()

	for s.running {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.renderer.Render(s.world, s.messages)
		s.handleInput(ctx)
	}
	return nil
}

// handleInput processes a single input event.
func (s *Session) handleInput(ctx context.Context) {
	ev := s.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.execute(ctx, commandFor(ev.Key(), ev.Rune()))
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return
		}
		if cell, ok := s.renderer.CellAt(ev.Position()); ok {
			s.moveTo(ctx, cell)
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
}

func (s *Session) execute(ctx context.Context, cmd command) {
	pos := s.world.Position()
	switch cmd {
	case cmdQuit:
		s.running = false
	case cmdUp:
		s.moveTo(ctx, pos.Add(0, -1))
	case cmdDown:
		s.moveTo(ctx, pos.Add(0, 1))
	case cmdLeft:
		s.moveTo(ctx, pos.Add(-1, 0))
	case cmdRight:
		s.moveTo(ctx, pos.Add(1, 0))
	case cmdInteract:
		res := s.world.InteractEncounter(ctx, pos.X, pos.Y)
		s.messages.Add(res.Message)
	case cmdTravel:
		s.travel(ctx)
	case cmdRest:
		s.rest(ctx)
	}
}

func (s *Session) moveTo(ctx context.Context, target world.Point) {
	res := s.world.Move(ctx, target)
	s.messages.Add(res.Messages...)
}

func (s *Session) travel(ctx context.Context) {
	arrival, err := s.world.TravelHere(ctx)
	switch {
	case errors.Is(err, game.ErrNotOnDoorway):
		s.messages.Add("There is no doorway here.")
	case errors.Is(err, game.ErrUnknownDoorway):
		s.messages.Add("This way leads nowhere yet.")
	case err != nil:
		s.logger.Error("travel failed", "err", err)
		s.messages.Add("The way is blocked.")
	default:
		s.messages.Add(arrival.Messages...)
	}
}

func (s *Session) rest(ctx context.Context) {
	res, err := s.world.Rest(ctx)
	if errors.Is(err, game.ErrRestUnavailable) {
		s.messages.Add("You cannot rest yet. Rest at 23:00 or during the Night.")
		return
	}
	if err != nil {
		s.logger.Error("rest failed", "err", err)
		return
	}
	s.messages.Add(res.Messages...)
}
