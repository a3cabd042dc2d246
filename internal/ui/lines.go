package ui

import (
	"fmt"
	"image/color"

	"lifebox/internal/sandbox"
	"lifebox/internal/slots"
)

// Line is one piece of HUD text. Y is the text baseline.
type Line struct {
	Text  string
	X, Y  int
	Color color.RGBA
}

const (
	charWidth  = 7
	lineHeight = 16
	baseline   = 13
	edgePad    = 4
)

var (
	textColor   = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	deleteColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Controls lists the key bindings shown while paused.
var Controls = []string{
	"Controls:",
	"Spacebar: Pause/Unpause",
	"Escape: Close Window",
	"Left Mouse Button: Turn cell on",
	"Right Mouse Button: Turn cell off",
	"E: Clear the board",
	"F: Fill the board randomly",
	"Up Arrow: Speed up refresh rate",
	"Down Arrow: Slow down refresh rate",
	"R: Reset refresh rate",
	"S: Toggle Save Override",
	"D: Toggle Delete Mode",
	"1-9: Load a saved board",
}

const (
	bindBanner   = "Save override is on. Press a key from 1-9 to bind your current board to that key."
	deleteBanner = "Delete mode is on. Press a key from 1-9 to delete your save at that key."
)

// Lines lays out the HUD for a screen of the given size. The status line is
// always shown; everything else only while paused.
func Lines(v sandbox.View, screenW, screenH int) []Line {
	status := fmt.Sprintf("Generation %d  Population %d  Speed %d", v.Generation, v.Population, v.Threshold)
	if !v.Paused {
		return []Line{left(status, 0)}
	}

	lines := []Line{left("Paused", 0), left(status, 1)}

	top := screenH/lineHeight - len(Controls)
	for i, c := range Controls {
		lines = append(lines, left(c, top+i))
	}

	switch v.Mode {
	case slots.ModeBind:
		lines = append(lines, right(bindBanner, 0, screenW, textColor))
	case slots.ModeDelete:
		lines = append(lines, right(deleteBanner, 0, screenW, deleteColor))
	}

	current := "Current slot: None"
	if v.HasCurrent {
		current = fmt.Sprintf("Current slot: %s", v.Current)
	}
	lines = append(lines, right(current, 1, screenW, textColor))

	top = screenH/lineHeight - len(v.Slots)
	for i, s := range v.Slots {
		lines = append(lines, right(s, top+i, screenW, textColor))
	}
	return lines
}

func left(text string, row int) Line {
	return Line{Text: text, X: edgePad, Y: row*lineHeight + baseline, Color: textColor}
}

func right(text string, row, screenW int, c color.RGBA) Line {
	return Line{Text: text, X: screenW - edgePad - len(text)*charWidth, Y: row*lineHeight + baseline, Color: c}
}
