package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	// PlayerTie is the winner name reported for a full board without a line.
	PlayerTie = "-"
)

// Game is the persisted snapshot of one board session.
type Game struct {
	ID           string   `json:"id"`
	Grid         Grid     `json:"grid"`
	MovesMade    int      `json:"moves_made"`
	Completed    bool     `json:"completed"`
	Winner       Mark     `json:"winner"`
	LastMove     Position `json:"last_move"`
	ActiveMark   Mark     `json:"active_mark"`
	BotMode      bool     `json:"bot_mode"`
	BotMark      Mark     `json:"bot_mark"`
	BotFirstTurn bool     `json:"bot_first_turn"`
}

// GameView is what a presentation layer needs to render a session.
type GameView struct {
	ID       string    `json:"id"`
	Board    Grid      `json:"board"`
	Turn     *Player   `json:"turn,omitempty"`
	Status   string    `json:"status"`
	Winner   string    `json:"winner,omitempty"`
	Message  string    `json:"message"`
	BotMode  bool      `json:"bot_mode"`
	LastMove *Position `json:"last_move,omitempty"`
}

func (that *GameView) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *GameView) IsDraw() bool {
	return that.IsFinished() && that.Winner == PlayerTie
}
