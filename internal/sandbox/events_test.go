package sandbox

import (
	"testing"

	"lifebox/internal/slots"
)

func TestSlotCommandRoundTrip(t *testing.T) {
	for _, id := range slots.IDs() {
		cmd := SlotCommand(id)
		got, ok := cmd.Slot()
		if !ok || got != id {
			t.Fatalf("SlotCommand(%s).Slot() = %d, %v", id, got, ok)
		}
	}
	if _, ok := CmdClear.Slot(); ok {
		t.Fatal("clear is not a slot command")
	}
}

func TestCellAt(t *testing.T) {
	cases := []struct {
		px, py, size int
		x, y         int
	}{
		{0, 0, 12, 1, 1},
		{11, 11, 12, 1, 1},
		{12, 25, 12, 2, 3},
		{-1, 5, 12, 0, 1},
		{5, -30, 12, 1, 0},
		{7, 9, 0, 8, 10},
	}
	for _, tc := range cases {
		x, y := CellAt(tc.px, tc.py, tc.size)
		if x != tc.x || y != tc.y {
			t.Fatalf("CellAt(%d,%d,%d) = (%d,%d), expected (%d,%d)", tc.px, tc.py, tc.size, x, y, tc.x, tc.y)
		}
	}
}
