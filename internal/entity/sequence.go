package entity

import "fmt"

// Orientation of a three-cell sequence.
type Orientation string

const (
	Horizontal   Orientation = "H"
	Vertical     Orientation = "V"
	DiagonalDown Orientation = "D1"
	DiagonalUp   Orientation = "D2"
)

// Orientations in scan order.
var Orientations = []Orientation{Horizontal, Vertical, DiagonalDown, DiagonalUp}

// Step returns the row and column delta between consecutive cells.
func (that Orientation) Step() (int, int) {
	switch that {
	case Horizontal:
		return 0, 1
	case Vertical:
		return 1, 0
	case DiagonalDown:
		return 1, 1
	case DiagonalUp:
		return 1, -1
	default:
		return 0, 0
	}
}

// SequenceID identifies a sequence by orientation and the position of its first S.
type SequenceID struct {
	Orientation Orientation `json:"orientation"`
	Row         int         `json:"row"`
	Col         int         `json:"col"`
}

func (that SequenceID) Cells() [3]Coord {
	dr, dc := that.Orientation.Step()

	var cells [3]Coord
	for i := range cells {
		cells[i] = Coord{Row: that.Row + i*dr, Col: that.Col + i*dc}
	}

	return cells
}

func (that SequenceID) String() string {
	return fmt.Sprintf("%s:%d:%d", that.Orientation, that.Row, that.Col)
}

// Sequence is a credited S-O-S run.
type Sequence struct {
	ID     SequenceID `json:"id"`
	Cells  [3]Coord   `json:"cells"`
	Player Player     `json:"player"`
}
