package connectfour

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/board"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// RejectReason tells why a move was not accepted.
type RejectReason string

const (
	ReasonNone       RejectReason = ""
	ReasonColumnFull RejectReason = "column_full"
	ReasonGameOver   RejectReason = "game_over"
)

// MoveResult is either a rejection (Reason set, nothing changed) or a placed piece with the
// outcome of the move.
type MoveResult struct {
	Reason  RejectReason    `json:"reason,omitempty"`
	Row     int             `json:"row"`
	Column  int             `json:"column"`
	Player  entity.PlayerID `json:"player,omitempty"`
	Outcome entity.Outcome  `json:"outcome,omitempty"`
	Winner  entity.PlayerID `json:"winner,omitempty"`
}

func (that MoveResult) Placed() bool {
	return that.Reason == ReasonNone
}

func (that MoveResult) Rejected() bool {
	return that.Reason != ReasonNone
}

// Err maps a rejection to its sentinel error, nil for a placed piece.
func (that MoveResult) Err() error {
	switch that.Reason {
	case ReasonColumnFull:
		return fmt.Errorf("%w: column %d", apperror.ErrColumnFull, that.Column)
	case ReasonGameOver:
		return apperror.ErrGameOver
	default:
		return nil
	}
}

func rejected(reason RejectReason, column int) MoveResult {
	return MoveResult{Reason: reason, Row: -1, Column: column}
}

type Option func(*Engine)

// WithWinCheck selects how a move is checked for a win. Unknown values are ignored.
func WithWinCheck(check WinCheck) Option {
	return func(that *Engine) {
		if check.Valid() {
			that.winCheck = check
		}
	}
}

// Engine runs a single game. It is not safe for concurrent use; run one engine per game.
type Engine struct {
	board    *board.Board
	players  [2]entity.Player
	current  entity.PlayerID
	status   entity.Status
	winner   entity.PlayerID
	line     Line
	last     *entity.Position
	winCheck WinCheck
}

// StartGame creates a fresh game. Player 1 moves first.
func StartGame(height, width int, color1, color2 string, opts ...Option) (*Engine, error) {
	b, err := board.New(height, width)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	engine := &Engine{
		board: b,
		players: [2]entity.Player{
			{ID: entity.Player1, Color: color1},
			{ID: entity.Player2, Color: color2},
		},
		current:  entity.Player1,
		status:   entity.StatusInProgress,
		winCheck: WinCheckFull,
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine, nil
}

// Play drops the current player's piece into column.
func (that *Engine) Play(column int) MoveResult {
	if that.status.IsTerminal() {
		return rejected(ReasonGameOver, column)
	}

	row, ok := that.board.LandingRow(column)
	if !ok {
		return rejected(ReasonColumnFull, column)
	}

	player := that.current
	if err := that.board.Place(row, column, player); err != nil {
		// LandingRow only returns empty in-bounds cells
		panic(fmt.Errorf("place after landing row: %w", err))
	}
	that.last = &entity.Position{Row: row, Column: column}

	result := MoveResult{Row: row, Column: column, Player: player}

	if line, won := that.checkWin(player, row, column); won {
		that.status = entity.StatusWon
		that.winner = player
		that.line = line

		result.Outcome = entity.OutcomeWon
		result.Winner = player

		return result
	}

	if that.board.IsFull() {
		that.status = entity.StatusTied
		result.Outcome = entity.OutcomeTied

		return result
	}

	that.current = player.Other()

	return result
}

func (that *Engine) checkWin(player entity.PlayerID, row, column int) (Line, bool) {
	if that.winCheck == WinCheckLocal {
		return findLineThrough(that.board, player, row, column)
	}
	return findLine(that.board, player)
}

// CurrentPlayer is the player to move, or the player who made the last move once the game is over.
func (that *Engine) CurrentPlayer() entity.Player {
	return that.players[that.current-1]
}

func (that *Engine) Player(id entity.PlayerID) (entity.Player, bool) {
	if !id.Valid() {
		return entity.Player{}, false
	}
	return that.players[id-1], true
}

func (that *Engine) Players() []entity.Player {
	return []entity.Player{that.players[0], that.players[1]}
}

// Cell returns the cell at (row, column).
func (that *Engine) Cell(row, column int) (entity.Cell, error) {
	cell, ok := that.board.At(row, column)
	if !ok {
		return entity.EmptyCell, fmt.Errorf("%w: row %d column %d", apperror.ErrOutOfBounds, row, column)
	}
	return cell, nil
}

func (that *Engine) IsOver() bool {
	return that.status.IsTerminal()
}

func (that *Engine) Status() entity.Status {
	return that.status
}

// Winner returns the winning player, ok is false unless the game was won.
func (that *Engine) Winner() (entity.PlayerID, bool) {
	return that.winner, that.status == entity.StatusWon
}

// WinningLine returns the line that ended the game, ok is false unless the game was won.
func (that *Engine) WinningLine() (Line, bool) {
	return that.line, that.status == entity.StatusWon
}

// LastMove returns the cell filled by the last accepted move.
func (that *Engine) LastMove() (entity.Position, bool) {
	if that.last == nil {
		return entity.Position{}, false
	}
	return *that.last, true
}

func (that *Engine) Height() int {
	return that.board.Height()
}

func (that *Engine) Width() int {
	return that.board.Width()
}

// Rows returns a copy of the grid for renderers.
func (that *Engine) Rows() [][]entity.Cell {
	return that.board.Rows()
}

// Board returns the compact text form of the grid.
func (that *Engine) Board() string {
	return that.board.String()
}

// Message returns "Player N won!" or "Tie!" once the game is over, empty before that.
func (that *Engine) Message() string {
	switch that.status {
	case entity.StatusWon:
		return entity.ResultMessage(entity.OutcomeWon, that.winner)
	case entity.StatusTied:
		return entity.ResultMessage(entity.OutcomeTied, 0)
	default:
		return ""
	}
}
