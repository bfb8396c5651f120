package entity

import "fmt"

type PlayerID uint8

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Valid reports whether id names one of the two seats.
func (that PlayerID) Valid() bool {
	return that == Player1 || that == Player2
}

// Other returns the opponent of the player.
func (that PlayerID) Other() PlayerID {
	if that == Player1 {
		return Player2
	}
	return Player1
}

// Cell is a board square: EmptyCell or the id of the player occupying it.
type Cell uint8

const EmptyCell Cell = 0

func OccupiedBy(id PlayerID) Cell {
	return Cell(id)
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

// Player returns the occupant of the cell, ok is false for an empty cell.
func (that Cell) Player() (PlayerID, bool) {
	if that == EmptyCell {
		return 0, false
	}
	return PlayerID(that), true
}

// Player holds a seat and the color a renderer should paint its pieces with.
// The color is never interpreted by the game logic.
type Player struct {
	ID    PlayerID `json:"id"`
	Color string   `json:"color"`
}

type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func (that Position) String() string {
	return fmt.Sprintf("%d-%d", that.Row, that.Column)
}

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusTied       Status = "tied"
)

func (that Status) IsTerminal() bool {
	return that == StatusWon || that == StatusTied
}

// Outcome is what an accepted move did to the game.
type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeWon  Outcome = "won"
	OutcomeTied Outcome = "tied"
)

// ResultMessage is the text shown to players when a game ends.
func ResultMessage(outcome Outcome, winner PlayerID) string {
	switch outcome {
	case OutcomeWon:
		return fmt.Sprintf("Player %d won!", winner)
	case OutcomeTied:
		return "Tie!"
	default:
		return ""
	}
}
