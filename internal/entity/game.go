package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	MinBoardSize = 3
	MaxBoardSize = 15
)

// Letter is the content of a board cell.
type Letter string

const (
	EmptyCell Letter = ""
	LetterS   Letter = "S"
	LetterO   Letter = "O"
)

func (that Letter) IsValid() bool {
	return that == LetterS || that == LetterO
}

func ParseLetter(s string) (Letter, error) {
	letter := Letter(s)
	if !letter.IsValid() {
		return EmptyCell, fmt.Errorf("%w: %q", apperror.ErrInvalidLetter, s)
	}

	return letter, nil
}

// Variant selects the rule set of a game.
type Variant string

const (
	// VariantSimple ends the game on the first sequence formed.
	VariantSimple Variant = "simple"
	// VariantGeneral scores every sequence and ends when the board is full.
	VariantGeneral Variant = "general"
)

func ParseVariant(s string) (Variant, error) {
	switch variant := Variant(s); variant {
	case VariantSimple, VariantGeneral:
		return variant, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidVariant, s)
	}
}

func ValidateSize(size int) error {
	if size < MinBoardSize || size > MaxBoardSize {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidSize, size)
	}

	return nil
}

// ParseSize reads a board size that must be a JSON integer in range.
// An absent or null size returns nil so the caller can apply its default.
func ParseSize(raw json.RawMessage) (*int, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil //nolint: nilnil // nil size selects the default
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidSize, raw)
	}

	number, ok := value.(json.Number)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidSize, raw)
	}

	size, err := number.Int64()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidSize, raw)
	}

	if err = ValidateSize(int(size)); err != nil {
		return nil, err
	}

	result := int(size)

	return &result, nil
}

// Winner is "" while the game runs, then "p1", "p2" or "draw".
type Winner string

const (
	WinnerNone Winner = ""
	WinnerDraw Winner = "draw"
)

func WinnerOf(player Player) Winner {
	return Winner(player)
}

type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Move struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter Letter `json:"letter"`
}

func (that Move) String() string {
	return fmt.Sprintf("%s@(%d,%d)", that.Letter, that.Row, that.Col)
}

type Scores struct {
	P1 int `json:"p1"`
	P2 int `json:"p2"`
}

func (that *Scores) Add(player Player, points int) {
	if player == PlayerOne {
		that.P1 += points
		return
	}
	that.P2 += points
}

func (that Scores) Of(player Player) int {
	if player == PlayerOne {
		return that.P1
	}
	return that.P2
}

// Leader returns the player with the strictly higher score, or WinnerDraw.
func (that Scores) Leader() Winner {
	switch {
	case that.P1 > that.P2:
		return WinnerOf(PlayerOne)
	case that.P2 > that.P1:
		return WinnerOf(PlayerTwo)
	default:
		return WinnerDraw
	}
}

// MoveResult reports the effect of a single placement.
type MoveResult struct {
	Valid          bool       `json:"valid"`
	Move           Move       `json:"move"`
	Player         Player     `json:"player,omitempty"`
	SequencesFound int        `json:"sequences_found"`
	Sequences      []Sequence `json:"sequences"`
	GameOver       bool       `json:"game_over"`
	Winner         Winner     `json:"winner,omitempty"`
	Reason         string     `json:"reason,omitempty"`

	// Err holds the validation failure when Valid is false.
	Err error `json:"-"`
}

// SequenceCells lists the three coordinates of every sequence formed by the move.
func (that MoveResult) SequenceCells() [][3]Coord {
	cells := make([][3]Coord, 0, len(that.Sequences))
	for _, seq := range that.Sequences {
		cells = append(cells, seq.Cells)
	}

	return cells
}

// GameState is the serialisable snapshot of a game session.
type GameState struct {
	ID        string     `json:"id"`
	Size      int        `json:"size"`
	Variant   Variant    `json:"variant"`
	Seats     Seats      `json:"seats"`
	Board     [][]Letter `json:"board"`
	Turn      Player     `json:"player_turn"`
	Scores    Scores     `json:"scores"`
	Sequences []Sequence `json:"sequences"`
	Status    string     `json:"status"`
	Winner    Winner     `json:"winner"`
	Moves     int        `json:"moves"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (that *GameState) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *GameState) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// ComputerToMove reports whether the seat to move is driven by the computer.
func (that *GameState) ComputerToMove() bool {
	return that.IsOngoing() && that.Seats.Of(that.Turn).IsComputer()
}

// TurnReport is returned to clients after a request that may place moves.
type TurnReport struct {
	Result        *MoveResult  `json:"result,omitempty"`
	ComputerMoves []MoveResult `json:"computer_moves"`
	Game          *GameState   `json:"game"`
}
