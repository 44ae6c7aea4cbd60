package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
	"github.com/rocketscienceinc/sos-backend/internal/usecase"
)

var errBadRequest = errors.New("malformed request")

type gameUseCase interface {
	NewGame(ctx context.Context, params usecase.NewGameParams) (*entity.TurnReport, error)
	GetGame(ctx context.Context, id string) (*entity.GameState, error)
	EndGame(ctx context.Context, id string) error

	MakeTurn(ctx context.Context, id string, move entity.Move) (*entity.TurnReport, error)
	PlayComputerTurns(ctx context.Context, id string) (*entity.TurnReport, error)
	ProposeMove(ctx context.Context, id string) (entity.Move, error)
}

type GameHandler interface {
	CreateGame(w http.ResponseWriter, r *http.Request)
	GetGame(w http.ResponseWriter, r *http.Request)
	EndGame(w http.ResponseWriter, r *http.Request)
	MakeTurn(w http.ResponseWriter, r *http.Request)
	PlayComputerTurns(w http.ResponseWriter, r *http.Request)
	ProposeMove(w http.ResponseWriter, r *http.Request)
}

type gameHandler struct {
	logger *slog.Logger
	uGame  gameUseCase
}

func NewGameHandler(logger *slog.Logger, uGame gameUseCase) GameHandler {
	return &gameHandler{
		logger: logger,
		uGame:  uGame,
	}
}

// NewGameRequest is the body of POST /games. Every field is optional.
type NewGameRequest struct {
	Size    json.RawMessage `json:"size,omitempty"`
	Variant string          `json:"variant,omitempty"`
	Seats   struct {
		P1 string `json:"p1,omitempty"`
		P2 string `json:"p2,omitempty"`
	} `json:"seats"`
}

type MoveRequest struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter"`
}

type ProposalResponse struct {
	GameID string      `json:"game_id"`
	Move   entity.Move `json:"move"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (that *gameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "CreateGame")

	var req NewGameRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, log, err)
		return
	}

	size, err := entity.ParseSize(req.Size)
	if err != nil {
		that.writeError(w, log, err)
		return
	}

	report, err := that.uGame.NewGame(r.Context(), usecase.NewGameParams{
		Size:    size,
		Variant: req.Variant,
		P1:      req.Seats.P1,
		P2:      req.Seats.P2,
	})
	if err != nil {
		that.writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusCreated, report)
}

func (that *gameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "GetGame")

	game, err := that.uGame.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

func (that *gameHandler) EndGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "EndGame")

	if err := that.uGame.EndGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MakeTurn answers 200 for both valid and rejected placements; the report's
// result tells them apart.
func (that *gameHandler) MakeTurn(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "MakeTurn")

	var req MoveRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, log, err)
		return
	}

	report, err := that.uGame.MakeTurn(r.Context(), chi.URLParam(r, "id"), entity.Move{
		Row:    req.Row,
		Col:    req.Col,
		Letter: entity.Letter(req.Letter),
	})
	if err != nil {
		that.writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (that *gameHandler) PlayComputerTurns(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "PlayComputerTurns")

	report, err := that.uGame.PlayComputerTurns(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (that *gameHandler) ProposeMove(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ProposeMove")

	id := chi.URLParam(r, "id")

	move, err := that.uGame.ProposeMove(r.Context(), id)
	if err != nil {
		that.writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, ProposalResponse{GameID: id, Move: move})
}

func (that *gameHandler) writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", "error", err)
	} else {
		log.Debug("request rejected", "status", status, "error", err)
	}

	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

// StatusFor maps an application error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrHumanSeat),
		errors.Is(err, apperror.ErrConcurrentUpdate),
		errors.Is(err, apperror.ErrNoAvailableMoves):
		return http.StatusConflict
	case errors.Is(err, errBadRequest),
		apperror.IsConstruction(err),
		apperror.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}

	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
