package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrInvalidMove  = errors.New("invalid move")
	ErrNoBotMove    = errors.New("bot has no available move")
)
