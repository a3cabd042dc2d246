// Package sandbox routes paint, command and tick events to the board, the step
// scheduler and the save slots, and exposes their state for display.
package sandbox

import (
	"context"
	"errors"
	"fmt"

	"lifebox/internal/core"
	"lifebox/internal/sims/life"
	"lifebox/internal/slots"
)

var (
	// ErrRunning is returned for edits attempted while the simulation runs.
	ErrRunning = errors.New("simulation is running")
	// ErrOutOfBounds is returned for paints outside the board interior.
	ErrOutOfBounds = errors.New("cell is outside the board")
	// ErrUnknownEvent is returned for events the controller does not handle.
	ErrUnknownEvent = errors.New("unknown event")
)

// Options configures a Controller.
type Options struct {
	// Speed is the initial number of ticks per generation.
	Speed int
	// Seed feeds the first board randomization; later ones increment it.
	Seed int64
}

// Controller owns the board, the scheduler and the slot store and applies
// events to them one at a time.
type Controller struct {
	board *life.Board
	sched *core.Scheduler
	store *slots.Store

	seed      int64
	quit      bool
	persisted bool
}

// New wires a controller around board and store. The simulation starts paused.
func New(board *life.Board, store *slots.Store, opts Options) *Controller {
	if store == nil {
		store = slots.NewStore()
	}
	return &Controller{
		board: board,
		sched: core.NewScheduler(board, opts.Speed),
		store: store,
		seed:  opts.Seed,
	}
}

// Board exposes the board for rendering.
func (c *Controller) Board() *life.Board { return c.board }

// Store exposes the slot store.
func (c *Controller) Store() *slots.Store { return c.store }

// Paused reports whether the simulation is paused.
func (c *Controller) Paused() bool { return c.sched.Paused() }

// Quitting reports whether a quit command was received.
func (c *Controller) Quitting() bool { return c.quit }

// Handle applies one event. A non-nil error means the event was rejected and
// nothing changed.
func (c *Controller) Handle(ev Event) error {
	switch e := ev.(type) {
	case Tick:
		c.sched.Tick()
		return nil
	case Paint:
		if !c.sched.Paused() {
			return ErrRunning
		}
		if !c.board.SetCell(e.X, e.Y, e.Alive) {
			return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, e.X, e.Y)
		}
		return nil
	case Command:
		return c.command(e)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownEvent, ev)
	}
}

func (c *Controller) command(cmd Command) error {
	if id, ok := cmd.Slot(); ok {
		if !c.sched.Paused() {
			return ErrRunning
		}
		_, err := c.store.Select(id, c.board)
		return err
	}

	switch cmd {
	case CmdQuit:
		c.quit = true
	case CmdSpeedUp:
		c.sched.SpeedUp()
	case CmdSlowDown:
		c.sched.SlowDown()
	case CmdResetSpeed:
		c.sched.ResetSpeed()
	case CmdTogglePause:
		if mode := c.store.Mode(); mode != slots.ModeNone {
			return fmt.Errorf("%w: %s", slots.ErrModeArmed, mode)
		}
		c.sched.TogglePause()
	case CmdClear, CmdRandomize, CmdArmBind, CmdArmDelete:
		if !c.sched.Paused() {
			return ErrRunning
		}
		return c.pausedCommand(cmd)
	default:
		return fmt.Errorf("%w: command %d", ErrUnknownEvent, cmd)
	}
	return nil
}

func (c *Controller) pausedCommand(cmd Command) error {
	switch cmd {
	case CmdClear:
		c.board.Clear()
	case CmdRandomize:
		c.board.Randomize(c.seed)
		c.seed++
	case CmdArmBind:
		// Pressing the key of the armed mode again turns it off.
		if c.store.Mode() == slots.ModeBind {
			c.store.Disarm()
			return nil
		}
		return c.store.ArmBind()
	case CmdArmDelete:
		if c.store.Mode() == slots.ModeDelete {
			c.store.Disarm()
			return nil
		}
		return c.store.ArmDelete()
	}
	return nil
}

// Load fills the slot store from src. The returned error is a warning; the
// store is usable either way.
func (c *Controller) Load(ctx context.Context, src slots.Source) error {
	return c.store.Load(ctx, src)
}

// Close persists the slot store to dst. Only the first call writes.
func (c *Controller) Close(ctx context.Context, dst slots.Sink) error {
	if c.persisted {
		return nil
	}
	c.persisted = true
	return c.store.Persist(ctx, dst)
}

// View is the state a renderer needs for one frame.
type View struct {
	Size       core.Size
	Cells      []core.Point
	Generation uint64
	Population int

	Paused    bool
	Threshold int

	Mode       slots.Mode
	Slots      []string
	Current    slots.ID
	HasCurrent bool
}

// View snapshots the controller state.
func (c *Controller) View() View {
	cells := c.board.LiveCells()
	current, ok := c.store.Current()
	return View{
		Size:       c.board.Size(),
		Cells:      cells,
		Generation: c.board.Generation(),
		Population: len(cells),
		Paused:     c.sched.Paused(),
		Threshold:  c.sched.Threshold(),
		Mode:       c.store.Mode(),
		Slots:      c.store.Describe(),
		Current:    current,
		HasCurrent: ok,
	}
}
