package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
)

type newGameRequest struct {
	BotMode bool `json:"bot_mode"`
}

type moveRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type modeRequest struct {
	BotMode bool `json:"bot_mode"`
}

type errorResponse struct {
	Error string           `json:"error"`
	Game  *entity.GameView `json:"game,omitempty"`
}

func (that *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	// an empty body, declared or chunked, starts a two player game
	var req newGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		that.writeError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	game, err := that.uGame.NewGame(r.Context(), req.BotMode)
	if err != nil {
		that.handleError(w, "NewGame", err, nil)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.uGame.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.handleError(w, "GetGame", err, nil)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.uGame.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.handleError(w, "DeleteGame", err, nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) handleMakeTurn(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Row == nil || req.Col == nil {
		that.writeError(w, http.StatusBadRequest, "row and col are required", nil)
		return
	}

	game, err := that.uGame.MakeTurn(r.Context(), chi.URLParam(r, "id"), *req.Row, *req.Col)
	if err != nil {
		that.handleError(w, "MakeTurn", err, game)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	game, err := that.uGame.Reset(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.handleError(w, "Reset", err, nil)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) handleSetMode(w http.ResponseWriter, r *http.Request) {
	var req modeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	game, err := that.uGame.SetBotMode(r.Context(), chi.URLParam(r, "id"), req.BotMode)
	if err != nil {
		that.handleError(w, "SetBotMode", err, nil)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

// handleError - maps use case errors to status codes. Game rule violations keep the current game in the body.
func (that *Server) handleError(w http.ResponseWriter, method string, err error, game *entity.GameView) {
	switch {
	case errors.Is(err, repository.ErrGameNotFound):
		that.writeError(w, http.StatusNotFound, repository.ErrGameNotFound.Error(), nil)
	case errors.Is(err, apperror.ErrGameFinished):
		that.writeError(w, http.StatusConflict, apperror.ErrGameFinished.Error(), game)
	case errors.Is(err, apperror.ErrNotYourTurn):
		that.writeError(w, http.StatusConflict, apperror.ErrNotYourTurn.Error(), game)
	case errors.Is(err, apperror.ErrInvalidMove):
		that.writeError(w, http.StatusUnprocessableEntity, apperror.ErrInvalidMove.Error(), game)
	default:
		that.logger.Error("request failed", "method", method, "error", err)
		that.writeError(w, http.StatusInternalServerError, "internal server error", nil)
	}
}

func (that *Server) writeError(w http.ResponseWriter, status int, message string, game *entity.GameView) {
	that.writeJSON(w, status, errorResponse{Error: message, Game: game})
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
