package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var errUnknownAction = errors.New("unknown action")

type uGame interface {
	NewGame(ctx context.Context, botMode bool) (*entity.GameView, error)
	GetGame(ctx context.Context, id string) (*entity.GameView, error)
	MakeTurn(ctx context.Context, id string, row, col int) (*entity.GameView, error)
	Reset(ctx context.Context, id string) (*entity.GameView, error)
	SetBotMode(ctx context.Context, id string, enabled bool) (*entity.GameView, error)
}

type handlerFunc func(ctx context.Context, payload *Payload) (*entity.GameView, error)

type Server struct {
	logger *slog.Logger
	uGame  uGame

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, uGame uGame) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionNewGame] = server.handleNewGame
	server.handlers[actionGetGame] = server.handleGetGame
	server.handlers[actionTurn] = server.handleGameTurn
	server.handlers[actionReset] = server.handleReset
	server.handlers[actionMode] = server.handleMode

	return server
}

// Handler - the /ws endpoint.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWebSocket)

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) serveWebSocket(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveWebSocket")

	conn, err := websocket.Accept(writer, req, nil)
	if err != nil {
		log.Error("failed to accept websocket", "error", err)
		return
	}

	defer conn.CloseNow()

	log.Info("WebSocket connection established")

	err = that.handleMessages(req.Context(), conn)

	switch status := websocket.CloseStatus(err); {
	case status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway:
		log.Info("WebSocket connection closed")
	case errors.Is(err, context.Canceled):
		log.Info("WebSocket connection closed on shutdown")
	case err != nil:
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client until the connection closes.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	for {
		var message Message
		if err := wsjson.Read(ctx, conn, &message); err != nil {
			return err
		}

		response := that.process(ctx, &message)

		if err := wsjson.Write(ctx, conn, response); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
	}
}

func (that *Server) process(ctx context.Context, message *Message) Response {
	log := that.logger.With("method", "process", "action", message.Action)

	response := Response{Action: message.Action}

	handler, ok := that.handlers[message.Action]
	if !ok {
		response.Payload.Error = fmt.Sprintf("%s: %q", errUnknownAction, message.Action)
		return response
	}

	var payload Payload
	if len(message.Payload) != 0 {
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			response.Payload.Error = "invalid payload"
			return response
		}
	}

	game, err := handler(ctx, &payload)
	response.Payload.Game = game

	if err != nil {
		log.Debug("action failed", "error", err)
		response.Payload.Error = errorMessage(err)
	}

	return response
}
