package websocket

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/samber/lo"

	"github.com/rocketscienceinc/sos-backend/internal/entity"
	"github.com/rocketscienceinc/sos-backend/internal/usecase"
)

const actionError = "error"

type uGame interface {
	NewGame(ctx context.Context, params usecase.NewGameParams) (*entity.TurnReport, error)
	GetGame(ctx context.Context, id string) (*entity.GameState, error)
	EndGame(ctx context.Context, id string) error

	MakeTurn(ctx context.Context, id string, move entity.Move) (*entity.TurnReport, error)
	PlayComputerTurns(ctx context.Context, id string) (*entity.TurnReport, error)
	ProposeMove(ctx context.Context, id string) (entity.Move, error)
}

type handlerFunc func(ctx context.Context, message *Message, conn *connection) error

type Server struct {
	logger   *slog.Logger
	uGame    uGame
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc

	// connections holds, per game, every connection watching it.
	connections      map[string]map[*connection]struct{}
	connectionsMutex sync.RWMutex
}

func New(logger *slog.Logger, uGame uGame) *Server {
	server := &Server{
		logger: logger,
		uGame:  uGame,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},

		handlers:    make(map[string]handlerFunc),
		connections: make(map[string]map[*connection]struct{}),
	}

	server.handlers["game:new"] = server.handleNewGame
	server.handlers["game:state"] = server.handleGameState
	server.handlers[actionGameTurn] = server.handleGameTurn
	server.handlers[actionGameComputer] = server.handleComputerTurn
	server.handlers["game:propose"] = server.handlePropose
	server.handlers["game:leave"] = server.handleGameLeave
	server.handlers[actionGameEnd] = server.handleGameEnd

	return server
}

// ServeHTTP upgrades the request and handles messages until the client goes away.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeConnection")

	ws, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	conn := &connection{ws: ws}

	defer func() {
		that.handleDisconnect(conn)
		_ = ws.Close()
	}()

	log.Info("WebSocket connection established")

	that.handleMessages(req.Context(), conn)
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *connection) {
	log := that.logger.With("method", "handleMessages")

	for {
		message, err := conn.readMessage()
		if err != nil {
			var closeErr *websocket.CloseError
			if !errors.As(err, &closeErr) {
				log.Debug("error reading message", "error", err)
			}
			return
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			if err = conn.sendError(actionError, "unknown action "+message.Action+", expected one of "+that.actions()); err != nil {
				log.Error("failed to send error", "error", err)
			}
			continue
		}

		if err = handler(ctx, message, conn); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Server) actions() string {
	actions := lo.Keys(that.handlers)
	sort.Strings(actions)

	return strings.Join(actions, ", ")
}

func (that *Server) subscribe(gameID string, conn *connection) {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	if that.connections[gameID] == nil {
		that.connections[gameID] = make(map[*connection]struct{})
	}
	that.connections[gameID][conn] = struct{}{}
}

func (that *Server) unsubscribe(gameID string, conn *connection) {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	delete(that.connections[gameID], conn)
	if len(that.connections[gameID]) == 0 {
		delete(that.connections, gameID)
	}
}

func (that *Server) unsubscribeAll(gameID string) {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	delete(that.connections, gameID)
}

// broadcast sends to every connection watching gameID.
func (that *Server) broadcast(gameID, action string, payload ResponsePayload) {
	log := that.logger.With("method", "broadcast", "gameID", gameID)

	that.connectionsMutex.RLock()
	watchers := lo.Keys(that.connections[gameID])
	that.connectionsMutex.RUnlock()

	for _, conn := range watchers {
		if err := conn.sendMessage(action, payload); err != nil {
			log.Error("failed to send game update", "error", err)
		}
	}
}

func (that *Server) handleDisconnect(conn *connection) {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	for gameID, watchers := range that.connections {
		delete(watchers, conn)
		if len(watchers) == 0 {
			delete(that.connections, gameID)
		}
	}
}
