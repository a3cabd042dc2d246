// Package slots keeps the nine saved-board slots, their persisted record and
// the bind/delete mode interlock that gates slot key presses.
package slots

import (
	"errors"
	"strconv"
)

// NumSlots is the number of addressable save slots.
const NumSlots = 9

// ID identifies one save slot. Valid values are 1 through 9.
type ID uint8

// Slot identifiers.
const (
	Slot1 ID = iota + 1
	Slot2
	Slot3
	Slot4
	Slot5
	Slot6
	Slot7
	Slot8
	Slot9
)

// Valid reports whether the id addresses a slot.
func (id ID) Valid() bool { return id >= Slot1 && id <= Slot9 }

// String returns the record key for the slot ("1".."9").
func (id ID) String() string { return strconv.Itoa(int(id)) }

// IDs returns every slot id in ascending order.
func IDs() []ID {
	return []ID{Slot1, Slot2, Slot3, Slot4, Slot5, Slot6, Slot7, Slot8, Slot9}
}

// Mode is the armed state gating the next slot selection.
type Mode uint8

const (
	// ModeNone means a slot selection loads that slot onto the board.
	ModeNone Mode = iota
	// ModeBind means the next slot selection saves the board into the slot.
	ModeBind
	// ModeDelete means the next selection of a filled slot empties it.
	ModeDelete
)

func (m Mode) String() string {
	switch m {
	case ModeBind:
		return "bind"
	case ModeDelete:
		return "delete"
	default:
		return "none"
	}
}

var (
	// ErrInvalidSlot is returned for ids outside 1..9.
	ErrInvalidSlot = errors.New("invalid slot id")
	// ErrModeArmed is returned when arming while another mode is armed.
	ErrModeArmed = errors.New("a slot mode is already armed")
	// ErrNoSavedData marks a persisted record that is absent or incomplete.
	ErrNoSavedData = errors.New("no saved slot data")
)
