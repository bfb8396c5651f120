package terminal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/connectfour/internal/connectfour"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

const (
	cellWidth  = 2
	pieceRune  = '●'
	emptyRune  = '·'
	cursorRune = '▼'
	helpText   = "←/→ move  enter drop  1-9 column  r restart  q quit"
)

type gameManager interface {
	StartGame(ctx context.Context) (*connectfour.Engine, error)
	Play(ctx context.Context, column int) (connectfour.MoveResult, error)
	Engine() *connectfour.Engine
}

// UI renders the game on a terminal screen and turns key presses into moves.
type UI struct {
	logger  *slog.Logger
	screen  tcell.Screen
	manager gameManager

	cursor int
	notice string
}

func New(logger *slog.Logger, screen tcell.Screen, manager gameManager) *UI {
	return &UI{
		logger:  logger.With("component", "terminal"),
		screen:  screen,
		manager: manager,
	}
}

// Run starts a game and handles input until the user quits or ctx is cancelled.
// The screen must be initialised by the caller.
func (that *UI) Run(ctx context.Context) error {
	if err := that.restart(ctx); err != nil {
		return err
	}

	stop := make(chan struct{})
	defer close(stop)

	go func() {
		select {
		case <-ctx.Done():
			_ = that.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-stop:
		}
	}()

	for {
		that.draw()

		switch ev := that.screen.PollEvent().(type) {
		case nil:
			// screen finalised
			return nil
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
		case *tcell.EventResize:
			that.screen.Sync()
		case *tcell.EventKey:
			quit, err := that.handleKey(ctx, ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

func (that *UI) handleKey(ctx context.Context, ev *tcell.EventKey) (bool, error) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyLeft:
		that.moveCursor(-1)
	case tcell.KeyRight:
		that.moveCursor(1)
	case tcell.KeyEnter:
		return false, that.drop(ctx, that.cursor)
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q':
			return true, nil
		case r == 'r':
			return false, that.restart(ctx)
		case r == ' ':
			return false, that.drop(ctx, that.cursor)
		case r >= '1' && r <= '9':
			column := int(r - '1')
			if column < that.manager.Engine().Width() {
				that.cursor = column
			}
			return false, that.drop(ctx, column)
		}
	}

	return false, nil
}

func (that *UI) moveCursor(delta int) {
	width := that.manager.Engine().Width()
	that.cursor = (that.cursor + delta + width) % width
}

func (that *UI) restart(ctx context.Context) error {
	engine, err := that.manager.StartGame(ctx)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.cursor = engine.Width() / 2
	that.notice = ""

	return nil
}

func (that *UI) drop(ctx context.Context, column int) error {
	result, err := that.manager.Play(ctx, column)
	if err != nil {
		return fmt.Errorf("failed to play column %d: %w", column+1, err)
	}

	switch result.Reason {
	case connectfour.ReasonColumnFull:
		that.notice = fmt.Sprintf("Column %d is full", column+1)
	case connectfour.ReasonGameOver:
		that.notice = ""
	default:
		that.notice = ""
		that.logger.Debug("piece dropped", "column", column, "row", result.Row, "outcome", result.Outcome)
	}

	return nil
}

// statusLine is the text under the board.
func (that *UI) statusLine() string {
	engine := that.manager.Engine()

	if engine.IsOver() {
		return engine.Message() + " Press r to play again."
	}

	if that.notice != "" {
		return that.notice
	}

	return fmt.Sprintf("Player %d to move", engine.CurrentPlayer().ID)
}

func playerStyle(player entity.Player) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.GetColor(player.Color))
}

func (that *UI) draw() {
	engine := that.manager.Engine()

	that.screen.Clear()

	if !engine.IsOver() {
		that.screen.SetContent(1+that.cursor*cellWidth, 0, cursorRune, nil, playerStyle(engine.CurrentPlayer()))
	}

	winning := map[entity.Position]bool{}
	if line, ok := engine.WinningLine(); ok {
		for _, pos := range line {
			winning[pos] = true
		}
	}

	for y, row := range engine.Rows() {
		for x, cell := range row {
			ch, style := emptyRune, tcell.StyleDefault
			if id, ok := cell.Player(); ok {
				player, _ := engine.Player(id)
				ch, style = pieceRune, playerStyle(player)
				if winning[entity.Position{Row: y, Column: x}] {
					style = style.Reverse(true)
				}
			}
			that.screen.SetContent(1+x*cellWidth, 1+y, ch, nil, style)
		}
	}

	for x := 0; x < engine.Width(); x++ {
		that.screen.SetContent(1+x*cellWidth, engine.Height()+1, rune('0'+(x+1)%10), nil, tcell.StyleDefault.Dim(true))
	}

	that.drawText(0, engine.Height()+3, that.statusLine(), tcell.StyleDefault.Bold(true))
	that.drawText(0, engine.Height()+4, helpText, tcell.StyleDefault.Dim(true))

	that.screen.Show()
}

func (that *UI) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		that.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
