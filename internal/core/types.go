package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point is an integer cell coordinate.
type Point struct {
	X int
	Y int
}

// Stepper advances a simulation by one generation.
type Stepper interface {
	Step()
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Stepper
	Name() string
	Size() Size
	Cells() []uint8
	Clear()
}
