package sos

import (
	"sync"

	"lukechampine.com/frand"

	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

// Strategy proposes a move for a computer seat without touching the real game.
type Strategy interface {
	ProposeMove(board *Board, ledger *Ledger) (entity.Move, bool)
}

var letters = [2]entity.Letter{entity.LetterS, entity.LetterO}

// Heuristic completes a new sequence when it can and otherwise plays at random.
// It is safe for concurrent use.
type Heuristic struct {
	mu  sync.Mutex
	rng *frand.RNG
}

func NewHeuristic() *Heuristic {
	return &Heuristic{rng: frand.New()}
}

// NewSeededHeuristic returns a heuristic whose fallback moves are reproducible.
func NewSeededHeuristic(seed []byte) *Heuristic {
	key := make([]byte, 32)
	copy(key, seed)

	return &Heuristic{rng: frand.NewCustom(key, 1024, 12)}
}

// ProposeMove returns false only when the board has no empty cell.
func (that *Heuristic) ProposeMove(board *Board, ledger *Ledger) (entity.Move, bool) {
	empty := board.EmptyCells()
	if len(empty) == 0 {
		return entity.Move{}, false
	}

	if move, ok := completingMove(board, ledger, empty); ok {
		return move, true
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	cell := empty[that.rng.Intn(len(empty))]

	return entity.Move{Row: cell.Row, Col: cell.Col, Letter: letters[that.rng.Intn(len(letters))]}, true
}

// completingMove tries empty cells row-major, S before O, each on a scratch copy.
func completingMove(board *Board, ledger *Ledger, empty []entity.Coord) (entity.Move, bool) {
	for _, cell := range empty {
		for _, letter := range letters {
			scratch := board.Clone()
			if err := scratch.Set(cell.Row, cell.Col, letter); err != nil {
				continue
			}

			for _, id := range Scan(scratch) {
				if !ledger.Contains(id) {
					return entity.Move{Row: cell.Row, Col: cell.Col, Letter: letter}, true
				}
			}
		}
	}

	return entity.Move{}, false
}
