package sos

import (
	"fmt"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

// Engine runs one SOS game. It is not safe for concurrent use.
type Engine struct {
	board    *Board
	ledger   *Ledger
	turn     *TurnTracker
	rules    rules
	strategy Strategy

	seats  entity.Seats
	scores entity.Scores
	winner entity.Winner
	moves  int
}

type Option func(*Engine)

func WithSeats(seats entity.Seats) Option {
	return func(e *Engine) {
		e.seats = seats
	}
}

func WithStrategy(strategy Strategy) Option {
	return func(e *Engine) {
		e.strategy = strategy
	}
}

// New starts a game on an empty size×size board with p1 to move.
func New(size int, variant entity.Variant, opts ...Option) (*Engine, error) {
	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}

	return build(board, NewLedger(), variant, opts)
}

func build(board *Board, ledger *Ledger, variant entity.Variant, opts []Option) (*Engine, error) {
	gameRules, err := rulesFor(variant)
	if err != nil {
		return nil, err
	}

	engine := &Engine{
		board:  board,
		ledger: ledger,
		turn:   NewTurnTracker(entity.PlayerOne),
		rules:  gameRules,
		seats:  entity.HumanSeats(),
	}

	for _, opt := range opts {
		opt(engine)
	}

	if err = engine.seats.Validate(); err != nil {
		return nil, err
	}

	if engine.strategy == nil {
		engine.strategy = NewHeuristic()
	}

	return engine, nil
}

// Place puts letter at (row, col) for the player to move.
//
// An invalid move is reported with Valid=false and leaves the game untouched.
func (that *Engine) Place(row, col int, letter entity.Letter) entity.MoveResult {
	move := entity.Move{Row: row, Col: col, Letter: letter}
	player := that.turn.Current()

	if that.IsGameOver() {
		return that.rejected(move, player, apperror.ErrGameFinished)
	}

	if err := that.board.Set(row, col, letter); err != nil {
		return that.rejected(move, player, err)
	}

	that.moves++

	added := that.ledger.RecordNew(Scan(that.board), player)
	formed := len(added)

	that.rules.score(&that.scores, player, formed)
	that.winner = that.rules.outcome(player, formed, that.board.IsFull(), that.scores)

	if !that.IsGameOver() && !that.rules.keepsTurn(formed) {
		that.turn.Advance()
	}

	return entity.MoveResult{
		Valid:          true,
		Move:           move,
		Player:         player,
		SequencesFound: formed,
		Sequences:      added,
		GameOver:       that.IsGameOver(),
		Winner:         that.winner,
	}
}

func (that *Engine) rejected(move entity.Move, player entity.Player, err error) entity.MoveResult {
	return entity.MoveResult{
		Valid:     false,
		Move:      move,
		Player:    player,
		Sequences: []entity.Sequence{},
		GameOver:  that.IsGameOver(),
		Winner:    that.winner,
		Reason:    err.Error(),
		Err:       err,
	}
}

// ProposeComputerMove asks the strategy for a move for the seat to move.
//
// It returns false when the board is full. Asking on behalf of a human seat is
// a caller error.
func (that *Engine) ProposeComputerMove() (entity.Move, bool, error) {
	if that.IsGameOver() {
		return entity.Move{}, false, apperror.ErrGameFinished
	}

	if player := that.turn.Current(); !that.seats.Of(player).IsComputer() {
		return entity.Move{}, false, fmt.Errorf("%w: %s", apperror.ErrHumanSeat, player)
	}

	move, ok := that.strategy.ProposeMove(that.board.Clone(), that.ledger.Clone())

	return move, ok, nil
}

func (that *Engine) CurrentPlayer() entity.Player {
	return that.turn.Current()
}

// Scores is always zero for the simple variant.
func (that *Engine) Scores() entity.Scores {
	return that.scores
}

func (that *Engine) IsGameOver() bool {
	return that.winner != entity.WinnerNone
}

func (that *Engine) Winner() entity.Winner {
	return that.winner
}

func (that *Engine) Variant() entity.Variant {
	return that.rules.variant()
}

func (that *Engine) Seats() entity.Seats {
	return that.seats
}

func (that *Engine) Size() int {
	return that.board.Size()
}

// Board returns a copy of the current board.
func (that *Engine) Board() *Board {
	return that.board.Clone()
}

// Sequences lists every credited sequence in credit order.
func (that *Engine) Sequences() []entity.Sequence {
	return that.ledger.Sequences()
}
