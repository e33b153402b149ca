package entity

import (
	"errors"
	"fmt"
)

// Mark is the content of a single grid cell.
type Mark uint8

const (
	Empty Mark = iota
	PlayerX
	PlayerO
)

var ErrUnknownMark = errors.New("unknown mark")

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// Opponent returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

func (that Mark) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	mark, err := ParseMark(string(text))
	if err != nil {
		return err
	}

	*that = mark

	return nil
}

// ParseMark - converts "X", "O" or "" to a Mark.
func ParseMark(s string) (Mark, error) {
	switch s {
	case "X", "x":
		return PlayerX, nil
	case "O", "o":
		return PlayerO, nil
	case "":
		return Empty, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrUnknownMark, s)
	}
}

// Player is an immutable display name and mark pair.
type Player struct {
	Name string `json:"name"`
	Mark Mark   `json:"mark"`
}
