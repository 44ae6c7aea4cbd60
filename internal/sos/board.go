package sos

import (
	"fmt"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

// Board is a square grid of write-once cells stored row-major.
type Board struct {
	size  int
	cells []entity.Letter
}

func NewBoard(size int) (*Board, error) {
	if err := entity.ValidateSize(size); err != nil {
		return nil, err
	}

	return &Board{
		size:  size,
		cells: make([]entity.Letter, size*size),
	}, nil
}

// BoardFromRows rebuilds a board from a snapshot such as GameState.Board.
func BoardFromRows(rows [][]entity.Letter) (*Board, error) {
	board, err := NewBoard(len(rows))
	if err != nil {
		return nil, err
	}

	for r, row := range rows {
		if len(row) != board.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", apperror.ErrInvalidSize, r, len(row), board.size)
		}

		for c, letter := range row {
			if letter == entity.EmptyCell {
				continue
			}

			if err = board.Set(r, c, letter); err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
		}
	}

	return board, nil
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

func (that *Board) Get(row, col int) (entity.Letter, error) {
	if !that.InBounds(row, col) {
		return entity.EmptyCell, fmt.Errorf("%w: (%d,%d)", apperror.ErrOutOfBounds, row, col)
	}

	return that.at(row, col), nil
}

func (that *Board) IsEmpty(row, col int) bool {
	return that.InBounds(row, col) && that.at(row, col) == entity.EmptyCell
}

// Set writes a letter into an empty cell. The board is untouched on error.
func (that *Board) Set(row, col int, letter entity.Letter) error {
	if !that.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d)", apperror.ErrOutOfBounds, row, col)
	}

	if !letter.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidLetter, letter)
	}

	if that.at(row, col) != entity.EmptyCell {
		return fmt.Errorf("%w: (%d,%d)", apperror.ErrCellOccupied, row, col)
	}

	that.cells[row*that.size+col] = letter

	return nil
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == entity.EmptyCell {
			return false
		}
	}

	return true
}

// EmptyCells lists the empty cells in row-major order.
func (that *Board) EmptyCells() []entity.Coord {
	empty := make([]entity.Coord, 0, len(that.cells))
	for i, cell := range that.cells {
		if cell == entity.EmptyCell {
			empty = append(empty, entity.Coord{Row: i / that.size, Col: i % that.size})
		}
	}

	return empty
}

func (that *Board) Clone() *Board {
	cells := make([]entity.Letter, len(that.cells))
	copy(cells, that.cells)

	return &Board{size: that.size, cells: cells}
}

func (that *Board) Rows() [][]entity.Letter {
	rows := make([][]entity.Letter, that.size)
	for r := range rows {
		rows[r] = make([]entity.Letter, that.size)
		copy(rows[r], that.cells[r*that.size:(r+1)*that.size])
	}

	return rows
}

func (that *Board) at(row, col int) entity.Letter {
	return that.cells[row*that.size+col]
}
