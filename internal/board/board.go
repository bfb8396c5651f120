package board

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// Board is a fixed height×width grid. Row 0 is the top row, pieces fall towards height-1.
type Board struct {
	height int
	width  int
	cells  [][]entity.Cell
	placed int
}

func New(height, width int) (*Board, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", apperror.ErrInvalidDimensions, height, width)
	}

	cells := make([][]entity.Cell, height)
	for y := range cells {
		cells[y] = make([]entity.Cell, width)
	}

	return &Board{
		height: height,
		width:  width,
		cells:  cells,
	}, nil
}

func (that *Board) Height() int {
	return that.height
}

func (that *Board) Width() int {
	return that.width
}

func (that *Board) InBounds(row, column int) bool {
	return row >= 0 && row < that.height && column >= 0 && column < that.width
}

// At returns the cell at (row, column), ok is false outside the board.
func (that *Board) At(row, column int) (entity.Cell, bool) {
	if !that.InBounds(row, column) {
		return entity.EmptyCell, false
	}
	return that.cells[row][column], true
}

// LandingRow returns the lowest empty row of the column.
// ok is false when the column is full or does not exist.
func (that *Board) LandingRow(column int) (int, bool) {
	if column < 0 || column >= that.width {
		return -1, false
	}

	for y := that.height - 1; y >= 0; y-- {
		if that.cells[y][column].IsEmpty() {
			return y, true
		}
	}

	return -1, false
}

// Place occupies an empty cell. Row is expected to come from LandingRow on the same column.
func (that *Board) Place(row, column int, player entity.PlayerID) error {
	if !player.Valid() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPlayer, player)
	}

	if !that.InBounds(row, column) {
		return fmt.Errorf("%w: row %d column %d", apperror.ErrOutOfBounds, row, column)
	}

	if !that.cells[row][column].IsEmpty() {
		return fmt.Errorf("%w: row %d column %d", apperror.ErrCellOccupied, row, column)
	}

	that.cells[row][column] = entity.OccupiedBy(player)
	that.placed++

	return nil
}

func (that *Board) IsFull() bool {
	return that.placed == that.height*that.width
}

// Rows returns a copy of the grid.
func (that *Board) Rows() [][]entity.Cell {
	rows := make([][]entity.Cell, that.height)
	for y := range that.cells {
		rows[y] = make([]entity.Cell, that.width)
		copy(rows[y], that.cells[y])
	}
	return rows
}

// String renders one line per row: '.' for an empty cell, the player id otherwise.
func (that *Board) String() string {
	var sb strings.Builder
	sb.Grow(that.height * (that.width + 1))

	for y, row := range that.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			if cell.IsEmpty() {
				sb.WriteByte('.')
				continue
			}
			sb.WriteByte(byte('0' + cell))
		}
	}

	return sb.String()
}

// Parse builds a board from the String form. Every line must have the same width.
func Parse(text string) (*Board, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	b, err := New(len(lines), len(strings.TrimSpace(lines[0])))
	if err != nil {
		return nil, err
	}

	for y, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != b.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", apperror.ErrInvalidDimensions, y, len(line), b.width)
		}

		for x, ch := range line {
			if ch == '.' {
				continue
			}
			if err = b.Place(y, x, entity.PlayerID(ch-'0')); err != nil {
				return nil, fmt.Errorf("failed to parse row %d: %w", y, err)
			}
		}
	}

	return b, nil
}
