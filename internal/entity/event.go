package entity

type EventType string

const (
	EventGameStarted EventType = "game:started"
	EventPiecePlaced EventType = "piece:placed"
	EventGameOver    EventType = "game:over"
)

// Event is a state-change notification sent to renderers.
type Event struct {
	Type     EventType `json:"type"`
	GameID   string    `json:"game_id"`
	Player   PlayerID  `json:"player,omitempty"`
	Color    string    `json:"color,omitempty"`
	Position *Position `json:"position,omitempty"`
	Outcome  Outcome   `json:"outcome,omitempty"`
	Winner   PlayerID  `json:"winner,omitempty"`
	Message  string    `json:"message,omitempty"`
	Height   int       `json:"height,omitempty"`
	Width    int       `json:"width,omitempty"`
	Players  []Player  `json:"players,omitempty"`
	Board    string    `json:"board,omitempty"`
}
