package apperror

import "errors"

// construction errors.
var (
	ErrInvalidSize    = errors.New("board size must be between 3 and 15")
	ErrInvalidVariant = errors.New("invalid game variant")
	ErrInvalidSeat    = errors.New("invalid seat kind")
)

// move validation errors.
var (
	ErrOutOfBounds   = errors.New("cell is out of bounds")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidLetter = errors.New("letter must be S or O")
	ErrGameFinished  = errors.New("game is already finished")
)

// caller misuse.
var (
	ErrNotYourTurn = errors.New("it's not your turn")
	ErrHumanSeat   = errors.New("seat to move is not a computer")
)

// session errors.
var (
	ErrGameNotFound      = errors.New("game not found")
	ErrConcurrentUpdate  = errors.New("game was modified concurrently")
	ErrCorruptState      = errors.New("stored game state is corrupt")
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrComputerMoveFails = errors.New("computer proposed an invalid move")
)

// IsValidation reports whether err is a recoverable move validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrOutOfBounds) ||
		errors.Is(err, ErrCellOccupied) ||
		errors.Is(err, ErrInvalidLetter) ||
		errors.Is(err, ErrGameFinished)
}

// IsConstruction reports whether err came from invalid game settings.
func IsConstruction(err error) bool {
	return errors.Is(err, ErrInvalidSize) ||
		errors.Is(err, ErrInvalidVariant) ||
		errors.Is(err, ErrInvalidSeat)
}
