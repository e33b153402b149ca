package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	actionNewGame = "game:new"
	actionGetGame = "game:get"
	actionTurn    = "game:turn"
	actionReset   = "game:reset"
	actionMode    = "game:mode"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload is the request body of every action; fields unused by an action are ignored.
type Payload struct {
	GameID  string `json:"game_id,omitempty"`
	BotMode bool   `json:"bot_mode,omitempty"`
	Row     *int   `json:"row,omitempty"`
	Col     *int   `json:"col,omitempty"`
}

type ResponsePayload struct {
	Game  *entity.GameView `json:"game,omitempty"`
	Error string           `json:"error,omitempty"`
}

// Response echoes the request action.
type Response struct {
	Action  string          `json:"action"`
	Payload ResponsePayload `json:"payload"`
}
