package board

import (
	"testing"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Creates an empty board", func(t *testing.T) {
		// When: a 6x7 board is created
		b, err := New(6, 7)
		require.NoError(t, err)

		// Then: it has the requested size and every cell is empty
		assert.Equal(t, 6, b.Height())
		assert.Equal(t, 7, b.Width())
		for y := 0; y < 6; y++ {
			for x := 0; x < 7; x++ {
				cell, ok := b.At(y, x)
				require.True(t, ok)
				assert.True(t, cell.IsEmpty())
			}
		}
		assert.False(t, b.IsFull())
	})

	t.Run("Rejects non-positive dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 7}, {6, 0}, {-1, 7}, {6, -3}} {
			// When: a board with a non-positive side is created
			b, err := New(dims[0], dims[1])

			// Then: ErrInvalidDimensions is returned
			require.ErrorIs(t, err, apperror.ErrInvalidDimensions)
			assert.Nil(t, b)
		}
	})
}

func TestBoard_LandingRow(t *testing.T) {
	t.Run("Empty column lands on the bottom row", func(t *testing.T) {
		// Given: an empty board
		b, err := New(6, 7)
		require.NoError(t, err)

		// When: asking where a piece in column 3 lands
		row, ok := b.LandingRow(3)

		// Then: it lands on the last row
		require.True(t, ok)
		assert.Equal(t, 5, row)
	})

	t.Run("Stacks on top of existing pieces", func(t *testing.T) {
		// Given: a column with two pieces
		b, err := Parse(`
			...
			...
			1..
			2..`)
		require.NoError(t, err)

		// When: asking for the landing row of that column
		row, ok := b.LandingRow(0)

		// Then: the piece lands right above them
		require.True(t, ok)
		assert.Equal(t, 1, row)
	})

	t.Run("Full column has no landing row", func(t *testing.T) {
		// Given: a full first column
		b, err := Parse(`
			1..
			2..
			1..`)
		require.NoError(t, err)

		// When: asking for its landing row
		_, ok := b.LandingRow(0)

		// Then: there is none
		assert.False(t, ok)
	})

	t.Run("Out of range columns have no landing row", func(t *testing.T) {
		b, err := New(6, 7)
		require.NoError(t, err)

		for _, column := range []int{-1, 7, 100} {
			_, ok := b.LandingRow(column)
			assert.False(t, ok, "column %d", column)
		}
	})
}

func TestBoard_Place(t *testing.T) {
	t.Run("Occupies only the target cell", func(t *testing.T) {
		// Given: an empty board
		b, err := New(3, 3)
		require.NoError(t, err)

		// When: player 2 is placed at the bottom middle
		err = b.Place(2, 1, entity.Player2)
		require.NoError(t, err)

		// Then: only that cell changed
		assert.Equal(t, "...\n...\n.2.", b.String())
	})

	t.Run("Error on occupied cell", func(t *testing.T) {
		// Given: a board with a piece at the bottom left
		b, err := Parse(`
			..
			1.`)
		require.NoError(t, err)

		// When: another piece is placed on the same cell
		err = b.Place(1, 0, entity.Player2)

		// Then: ErrCellOccupied is returned and the cell keeps its owner
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		cell, _ := b.At(1, 0)
		assert.Equal(t, entity.OccupiedBy(entity.Player1), cell)
	})

	t.Run("Error on out of bounds cell", func(t *testing.T) {
		b, err := New(2, 2)
		require.NoError(t, err)

		err = b.Place(2, 0, entity.Player1)
		require.ErrorIs(t, err, apperror.ErrOutOfBounds)

		err = b.Place(0, -1, entity.Player1)
		require.ErrorIs(t, err, apperror.ErrOutOfBounds)
	})

	t.Run("Error on unknown player", func(t *testing.T) {
		b, err := New(2, 2)
		require.NoError(t, err)

		err = b.Place(1, 0, entity.PlayerID(3))

		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
		assert.Equal(t, "..\n..", b.String())
	})
}

func TestBoard_IsFull(t *testing.T) {
	// Given: a 2x2 board
	b, err := New(2, 2)
	require.NoError(t, err)

	moves := []struct {
		row, column int
		player      entity.PlayerID
	}{
		{1, 0, entity.Player1},
		{1, 1, entity.Player2},
		{0, 0, entity.Player1},
		{0, 1, entity.Player2},
	}

	for i, move := range moves {
		// Then: the board is not full before the last piece
		assert.False(t, b.IsFull())

		// When: the next piece is placed
		require.NoError(t, b.Place(move.row, move.column, move.player), "move %d", i)
	}

	// Then: the board is full after the last piece
	assert.True(t, b.IsFull())
}

func TestBoard_Rows(t *testing.T) {
	// Given: a board with one piece
	b, err := Parse(`
		..
		.1`)
	require.NoError(t, err)

	// When: the rows are copied and the copy is modified
	rows := b.Rows()
	rows[0][0] = entity.OccupiedBy(entity.Player2)

	// Then: the board itself is untouched
	assert.Equal(t, entity.OccupiedBy(entity.Player1), rows[1][1])
	assert.Equal(t, "..\n.1", b.String())
}

func TestParse(t *testing.T) {
	t.Run("Round trips through String", func(t *testing.T) {
		text := "....\n.2..\n.12.\n2111"

		b, err := Parse(text)
		require.NoError(t, err)

		assert.Equal(t, text, b.String())
		assert.Equal(t, 4, b.Height())
		assert.Equal(t, 4, b.Width())
	})

	t.Run("Rejects ragged rows", func(t *testing.T) {
		_, err := Parse("...\n..")
		require.ErrorIs(t, err, apperror.ErrInvalidDimensions)
	})

	t.Run("Rejects unknown marks", func(t *testing.T) {
		_, err := Parse("..\n3.")
		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
	})
}
