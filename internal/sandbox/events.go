package sandbox

import "lifebox/internal/slots"

// Event is one input delivered to the Controller.
type Event interface {
	isEvent()
}

// Paint sets or clears one cell. Cell coordinates include the margin.
type Paint struct {
	X, Y  int
	Alive bool
}

// Tick is delivered once per rendered frame.
type Tick struct{}

// Command is a discrete user command.
type Command uint8

// Commands understood by the Controller.
const (
	CmdTogglePause Command = iota + 1
	CmdClear
	CmdSpeedUp
	CmdSlowDown
	CmdResetSpeed
	CmdArmBind
	CmdArmDelete
	CmdRandomize
	CmdQuit
	CmdSlot1
	CmdSlot2
	CmdSlot3
	CmdSlot4
	CmdSlot5
	CmdSlot6
	CmdSlot7
	CmdSlot8
	CmdSlot9
)

// SlotCommand returns the command selecting id.
func SlotCommand(id slots.ID) Command {
	return CmdSlot1 + Command(id-slots.Slot1)
}

// Slot returns the slot a slot-selection command refers to.
func (c Command) Slot() (slots.ID, bool) {
	if c < CmdSlot1 || c > CmdSlot9 {
		return 0, false
	}
	return slots.Slot1 + slots.ID(c-CmdSlot1), true
}

func (Paint) isEvent()   {}
func (Tick) isEvent()    {}
func (Command) isEvent() {}

// CellAt maps a pointer position in pixels to board coordinates, accounting
// for the margin. Negative positions map onto the margin.
func CellAt(px, py, cellSize int) (int, int) {
	if cellSize <= 0 {
		cellSize = 1
	}
	x, y := 0, 0
	if px >= 0 {
		x = px/cellSize + 1
	}
	if py >= 0 {
		y = py/cellSize + 1
	}
	return x, y
}
