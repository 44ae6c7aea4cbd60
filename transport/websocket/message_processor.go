package websocket

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

const writeWait = 10 * time.Second

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload is what clients send. Which fields matter depends on the action.
type Payload struct {
	GameID  string          `json:"game_id,omitempty"`
	Size    json.RawMessage `json:"size,omitempty"`
	Variant string          `json:"variant,omitempty"`
	Seats   struct {
		P1 string `json:"p1,omitempty"`
		P2 string `json:"p2,omitempty"`
	} `json:"seats"`
	Row    *int   `json:"row,omitempty"`
	Col    *int   `json:"col,omitempty"`
	Letter string `json:"letter,omitempty"`
}

type ResponsePayload struct {
	Game   *entity.GameState  `json:"game,omitempty"`
	Report *entity.TurnReport `json:"report,omitempty"`
	Move   *entity.Move       `json:"move,omitempty"`
	Error  string             `json:"error,omitempty"`
}

// connection serialises writes; gorilla allows one concurrent writer per conn.
type connection struct {
	ws      *websocket.Conn
	writeMu sync.Mutex
}

func (that *connection) readMessage() (*Message, error) {
	var message Message
	if err := that.ws.ReadJSON(&message); err != nil {
		return nil, err
	}

	return &message, nil
}

func (that *connection) sendMessage(action string, payload ResponsePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	if err = that.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = that.ws.WriteJSON(Message{Action: action, Payload: payloadJSON}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *connection) sendError(action, errorMsg string) error {
	if err := that.sendMessage(action, ResponsePayload{Error: errorMsg}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}
