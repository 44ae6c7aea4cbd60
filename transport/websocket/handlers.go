package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/sos-backend/internal/entity"
	"github.com/rocketscienceinc/sos-backend/internal/usecase"
)

const (
	actionGameTurn     = "game:turn"
	actionGameComputer = "game:computer"
	actionGameEnd      = "game:end"
)

func (that *Server) handleNewGame(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleNewGame")

	payloadReq, err := parsePayload(msg)
	if err != nil {
		return conn.sendError(msg.Action, err.Error())
	}

	size, err := entity.ParseSize(payloadReq.Size)
	if err != nil {
		return conn.sendError(msg.Action, err.Error())
	}

	report, err := that.uGame.NewGame(ctx, usecase.NewGameParams{
		Size:    size,
		Variant: payloadReq.Variant,
		P1:      payloadReq.Seats.P1,
		P2:      payloadReq.Seats.P2,
	})
	if err != nil {
		log.Error("failed to create game", "error", err)
		return conn.sendError(msg.Action, err.Error())
	}

	that.subscribe(report.Game.ID, conn)

	if err = conn.sendMessage(msg.Action, ResponsePayload{Report: report}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("game created", "gameID", report.Game.ID)

	return nil
}

// handleGameState sends the current game and subscribes the connection to its updates.
func (that *Server) handleGameState(ctx context.Context, msg *Message, conn *connection) error {
	payloadReq, err := parsePayload(msg)
	if err != nil {
		return conn.sendError(msg.Action, err.Error())
	}

	game, err := that.uGame.GetGame(ctx, payloadReq.GameID)
	if err != nil {
		return conn.sendError(msg.Action, err.Error())
	}

	that.subscribe(game.ID, conn)

	return conn.sendMessage(msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleGameTurn")

	payloadReq, err := parsePayload(msg)
	if err != nil {
		return conn.sendError(msg.Action, err.Error())
	}

	if payloadReq.Row == nil || payloadReq.Col == nil || payloadReq.Letter == "" {
		return conn.sendError(msg.Action, "row, col and letter are required")
	}

	move := entity.Move{Row: *payloadReq.Row, Col: *payloadReq.Col, Letter: entity.Letter(payloadReq.Letter)}

	report, err := that.uGame.MakeTurn(ctx, payloadReq.GameID, move)
	if err != nil {
		log.Debug("turn failed", "gameID", payloadReq.GameID, "error", err)
		return conn.sendError(msg.Action, err.Error())
	}

	that.subscribe(payloadReq.GameID, conn)

	// a rejected move changes nothing, so only the mover hears about it.
	if report.Result != nil && !report.Result.Valid {
		return conn.sendMessage(msg.Action, ResponsePayload{Report: report})
	}

	that.broadcast(payloadReq.GameID, actionGameTurn, ResponsePayload{Report: report})

	return nil
}

func (that *Server) handleComputerTurn(ctx context.Context, msg *Message, conn *connection) error {
	payloadReq, err := parsePayload(msg)
	if err != nil {
		return conn.sendError(msg.Action, err.Error())
	}

	report, err := that.uGame.PlayComputerTurns(ctx, payloadReq.GameID)
	if err != nil {
		return conn.sendError(msg.Action, err.Error())
	}

	that.subscribe(payloadReq.GameID, conn)
	that.broadcast(payloadReq.GameID, actionGameComputer, ResponsePayload{Report: report})

	return nil
}

func (that *Server) handlePropose(ctx context.Context, msg *Message, conn *connection) error {
	payloadReq, err := parsePayload(msg)
	if err != nil {
		return conn.sendError(msg.Action, err.Error())
	}

	move, err := that.uGame.ProposeMove(ctx, payloadReq.GameID)
	if err != nil {
		return conn.sendError(msg.Action, err.Error())
	}

	return conn.sendMessage(msg.Action, ResponsePayload{Move: &move})
}

// handleGameLeave stops sending updates of a game to this connection.
func (that *Server) handleGameLeave(_ context.Context, msg *Message, conn *connection) error {
	payloadReq, err := parsePayload(msg)
	if err != nil {
		return conn.sendError(msg.Action, err.Error())
	}

	that.unsubscribe(payloadReq.GameID, conn)

	return conn.sendMessage(msg.Action, ResponsePayload{})
}

// handleGameEnd deletes the game and tells every watcher.
func (that *Server) handleGameEnd(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleGameEnd")

	payloadReq, err := parsePayload(msg)
	if err != nil {
		return conn.sendError(msg.Action, err.Error())
	}

	if err = that.uGame.EndGame(ctx, payloadReq.GameID); err != nil {
		return conn.sendError(msg.Action, err.Error())
	}

	that.subscribe(payloadReq.GameID, conn)
	that.broadcast(payloadReq.GameID, actionGameEnd, ResponsePayload{})
	that.unsubscribeAll(payloadReq.GameID)

	log.Info("game ended", "gameID", payloadReq.GameID)

	return nil
}

func parsePayload(msg *Message) (*Payload, error) {
	var payloadReq Payload

	if len(msg.Payload) == 0 {
		return &payloadReq, nil
	}

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return nil, fmt.Errorf("invalid payload: %w", err)
	}

	return &payloadReq, nil
}
