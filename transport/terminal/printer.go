package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// Printer writes game events as plain text lines, one event at a time.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (that *Printer) Print(event *entity.Event) {
	prefix := shortID(event.GameID)

	switch event.Type {
	case entity.EventGameStarted:
		players := make([]string, 0, len(event.Players))
		for _, player := range event.Players {
			players = append(players, fmt.Sprintf("player %d %s", player.ID, player.Color))
		}
		fmt.Fprintf(that.out, "[%s] new %dx%d game: %s\n", prefix, event.Height, event.Width, strings.Join(players, ", "))
	case entity.EventPiecePlaced:
		if event.Position == nil {
			return
		}
		fmt.Fprintf(that.out, "[%s] player %d (%s) -> row %d, column %d\n",
			prefix, event.Player, event.Color, event.Position.Row+1, event.Position.Column+1)
	case entity.EventGameOver:
		fmt.Fprintf(that.out, "[%s] %s\n", prefix, event.Message)
		if event.Board != "" {
			fmt.Fprintln(that.out, event.Board)
		}
	default:
		fmt.Fprintf(that.out, "[%s] unknown event %q\n", prefix, event.Type)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
