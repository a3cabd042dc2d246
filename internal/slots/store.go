package slots

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"lifebox/internal/core"
)

// Board is the part of the simulation a slot selection reads or replaces.
type Board interface {
	LiveCells() []core.Point
	Load(points []core.Point)
}

// Outcome describes what a slot selection did.
type Outcome uint8

const (
	// OutcomeLoaded means a filled slot replaced the board.
	OutcomeLoaded Outcome = iota + 1
	// OutcomeEmpty means an empty slot was selected and the board is untouched.
	OutcomeEmpty
	// OutcomeBound means the board was saved into the slot.
	OutcomeBound
	// OutcomeDeleted means the slot was emptied.
	OutcomeDeleted
	// OutcomeSkipped means delete mode hit an empty slot and stays armed.
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLoaded:
		return "loaded"
	case OutcomeEmpty:
		return "empty"
	case OutcomeBound:
		return "bound"
	case OutcomeDeleted:
		return "deleted"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Store owns the nine slots and the armed mode. The zero value is an empty
// store with no mode armed.
type Store struct {
	slots   Record
	mode    Mode
	current ID
}

// NewStore returns a store with all nine slots empty.
func NewStore() *Store { return &Store{} }

// Load replaces every slot with the record read from src. When the record is
// absent or incomplete all slots are emptied and the returned error, which
// wraps ErrNoSavedData, should be reported as a warning.
func (s *Store) Load(ctx context.Context, src Source) error {
	rec, err := src.ReadRecord(ctx)
	if err != nil {
		s.slots = Record{}
		if !errors.Is(err, ErrNoSavedData) {
			err = fmt.Errorf("%w: %w", ErrNoSavedData, err)
		}
		return err
	}
	s.slots = rec
	return nil
}

// Persist writes all nine slots to dst.
func (s *Store) Persist(ctx context.Context, dst Sink) error {
	if err := dst.WriteRecord(ctx, s.Snapshot()); err != nil {
		return fmt.Errorf("persist slots: %w", err)
	}
	return nil
}

// Snapshot returns a copy of every slot.
func (s *Store) Snapshot() Record {
	var rec Record
	for i, cells := range s.slots {
		rec[i] = slices.Clone(cells)
	}
	return rec
}

// Save overwrites the slot with a copy of cells.
func (s *Store) Save(id ID, cells []core.Point) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, id)
	}
	s.slots[id-1] = slices.Clone(cells)
	return nil
}

// Get returns a copy of the slot's cells. The boolean is false for an empty
// slot, in which case the board must be left as it is.
func (s *Store) Get(id ID) ([]core.Point, bool) {
	if !s.Filled(id) {
		return nil, false
	}
	return slices.Clone(s.slots[id-1]), true
}

// Filled reports whether the slot holds a board.
func (s *Store) Filled(id ID) bool {
	return id.Valid() && len(s.slots[id-1]) > 0
}

// Delete empties the slot.
func (s *Store) Delete(id ID) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, id)
	}
	s.slots[id-1] = nil
	return nil
}

// Describe lists "Slot N: Filled" or "Slot N: Empty" for every slot in order.
func (s *Store) Describe() []string {
	labels := make([]string, 0, NumSlots)
	for _, id := range IDs() {
		state := "Empty"
		if s.Filled(id) {
			state = "Filled"
		}
		labels = append(labels, fmt.Sprintf("Slot %s: %s", id, state))
	}
	return labels
}

// Mode returns the armed mode.
func (s *Store) Mode() Mode { return s.mode }

// ArmBind arms bind mode. It fails if any mode is already armed.
func (s *Store) ArmBind() error { return s.arm(ModeBind) }

// ArmDelete arms delete mode. It fails if any mode is already armed.
func (s *Store) ArmDelete() error { return s.arm(ModeDelete) }

// Disarm clears the armed mode.
func (s *Store) Disarm() { s.mode = ModeNone }

func (s *Store) arm(m Mode) error {
	if s.mode != ModeNone {
		return fmt.Errorf("%w: %s", ErrModeArmed, s.mode)
	}
	s.mode = m
	return nil
}

// Current returns the slot most recently bound or selected.
func (s *Store) Current() (ID, bool) { return s.current, s.current.Valid() }

// Select applies a slot key press according to the armed mode:
// bind saves the board and disarms, delete empties a filled slot and disarms,
// and with no mode armed a filled slot is loaded onto the board.
// Delete mode stays armed when the selected slot is already empty.
// Binding an empty board leaves the slot Empty but still makes it the
// current slot, the same as selecting an empty slot with no mode armed.
func (s *Store) Select(id ID, board Board) (Outcome, error) {
	if !id.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSlot, id)
	}
	switch s.mode {
	case ModeBind:
		if err := s.Save(id, board.LiveCells()); err != nil {
			return 0, err
		}
		s.mode = ModeNone
		s.current = id
		return OutcomeBound, nil
	case ModeDelete:
		if !s.Filled(id) {
			return OutcomeSkipped, nil
		}
		if err := s.Delete(id); err != nil {
			return 0, err
		}
		s.mode = ModeNone
		return OutcomeDeleted, nil
	default:
		s.current = id
		cells, ok := s.Get(id)
		if !ok {
			return OutcomeEmpty, nil
		}
		board.Load(cells)
		return OutcomeLoaded, nil
	}
}
