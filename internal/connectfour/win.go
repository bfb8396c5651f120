package connectfour

import (
	"github.com/rocketscienceinc/connectfour/internal/board"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

const lineLength = 4

// Line is the four cells of a winning line, in scan order.
type Line [lineLength]entity.Position

type offset struct {
	dy, dx int
}

// horizontal, vertical, diagonal down-right, diagonal down-left
var directions = [...]offset{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// WinCheck decides whether the last move won the game.
type WinCheck string

const (
	// WinCheckFull rescans every line on the board.
	WinCheckFull WinCheck = "full"
	// WinCheckLocal only looks at the lines through the placed cell.
	WinCheckLocal WinCheck = "local"
)

func (that WinCheck) Valid() bool {
	return that == WinCheckFull || that == WinCheckLocal
}

// HasWin reports whether player owns four cells in a row anywhere on the board.
func HasWin(b *board.Board, player entity.PlayerID) bool {
	_, ok := findLine(b, player)
	return ok
}

// findLine returns the first winning line in row-major order of its first cell.
func findLine(b *board.Board, player entity.PlayerID) (Line, bool) {
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			for _, dir := range directions {
				if line, ok := lineFrom(b, player, y, x, dir); ok {
					return line, true
				}
			}
		}
	}

	return Line{}, false
}

func lineFrom(b *board.Board, player entity.PlayerID, y, x int, dir offset) (Line, bool) {
	var line Line

	for k := 0; k < lineLength; k++ {
		row, column := y+k*dir.dy, x+k*dir.dx

		cell, ok := b.At(row, column)
		if !ok {
			return Line{}, false
		}

		if owner, occupied := cell.Player(); !occupied || owner != player {
			return Line{}, false
		}

		line[k] = entity.Position{Row: row, Column: column}
	}

	return line, true
}

// findLineThrough looks for a line containing (row, column) only. On boards reached by legal
// play it agrees with findLine, since any earlier line would already have ended the game.
func findLineThrough(b *board.Board, player entity.PlayerID, row, column int) (Line, bool) {
	for _, dir := range directions {
		// walk back to the first cell of the run
		y, x := row, column
		for owns(b, player, y-dir.dy, x-dir.dx) {
			y, x = y-dir.dy, x-dir.dx
		}

		if line, ok := lineFrom(b, player, y, x, dir); ok {
			return line, true
		}
	}

	return Line{}, false
}

func owns(b *board.Board, player entity.PlayerID, row, column int) bool {
	cell, ok := b.At(row, column)
	if !ok {
		return false
	}

	owner, occupied := cell.Player()
	return occupied && owner == player
}
