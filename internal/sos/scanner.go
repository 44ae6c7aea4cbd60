package sos

import "github.com/rocketscienceinc/sos-backend/internal/entity"

var pattern = [3]entity.Letter{entity.LetterS, entity.LetterO, entity.LetterS}

// Scan returns every S-O-S sequence currently on the board.
//
// The whole board is rescanned on every call; history is the ledger's concern.
// Results come orientation by orientation (H, V, D1, D2), each in increasing
// row then column of the anchor.
func Scan(board *Board) []entity.SequenceID {
	var found []entity.SequenceID

	for _, orientation := range entity.Orientations {
		for r := range board.size {
			for c := range board.size {
				id := entity.SequenceID{Orientation: orientation, Row: r, Col: c}
				if matches(board, id) {
					found = append(found, id)
				}
			}
		}
	}

	return found
}

// matches reports whether all three cells of id are in bounds and read S, O, S.
func matches(board *Board, id entity.SequenceID) bool {
	for i, cell := range id.Cells() {
		if !board.InBounds(cell.Row, cell.Col) || board.at(cell.Row, cell.Col) != pattern[i] {
			return false
		}
	}

	return true
}
