package client

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/template"

	"tetrisim/tetris"
)

const (
	// ASCII colors.
	Cyan    = "36"
	Blue    = "34"
	Orange  = "38;5;214"
	Yellow  = "33"
	Green   = "32"
	Red     = "31"
	Magenta = "35"

	resetPos = "\033[H" // Reset cursor position to 0,0

	// lobby box, drawn over the board.
	boxRow   = 11
	boxWidth = tetris.Width * 2
)

//go:embed "layout.tmpl"
var layout string

var colorMap = map[tetris.Color]string{
	tetris.LightBlue: Cyan,
	tetris.Blue:      Blue,
	tetris.Orange:    Orange,
	tetris.Yellow:    Yellow,
	tetris.Lime:      Green,
	tetris.Red:       Red,
	tetris.Purple:    Magenta,
}

type templateData struct {
	Game *tetris.Snapshot
}

type render struct {
	writer   io.Writer
	logger   *slog.Logger
	template *template.Template
	*templateData
}

func newRender(l *slog.Logger) (*render, error) {
	tmp, err := loadTemplate()
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	return &render{
		writer:       os.Stdout,
		logger:       l,
		template:     tmp,
		templateData: &templateData{},
	}, nil
}

// game draws the board and the labels.
func (r *render) game(s *tetris.Snapshot) {
	r.templateData.Game = s
	fmt.Fprint(r.writer, resetPos)
	if err := r.template.Execute(r.writer, r.templateData); err != nil {
		r.logger.Error("unable to execute template in game()", slog.String("error", err.Error()))
	}
}

// lobby draws the last game with the menu box on top of it.
func (r *render) lobby(title string) {
	r.game(r.templateData.Game)
	border := "+" + strings.Repeat("-", boxWidth) + "+"
	lines := []string{
		border,
		"|" + center(title, boxWidth) + "|",
		"|" + center("", boxWidth) + "|",
		"|" + center("(p)lay   (q)uit", boxWidth) + "|",
		border,
	}
	for i, l := range lines {
		fmt.Fprintf(r.writer, "\033[%d;1H%s", boxRow+i, l)
	}
}

func loadTemplate() (*template.Template, error) {
	funcMap := template.FuncMap{
		"stack":  stack,
		"labels": labels,
	}

	// we use the console raw so new lines don't automatically transform into carriage return
	// to fix that we add a carriage return to every new line in the layout.
	l := strings.ReplaceAll(layout, "\n", "\r\n")
	l = strings.ReplaceAll(l, "Terminal Tetris", "\033[1mTerminal Tetris\033[0m")
	return template.New("layout").Funcs(funcMap).Parse(l)
}

// stack renders the board top row first, the template can only range
// upwards from 0.
func stack(t *templateData) [tetris.Height][tetris.Width]string {
	rendered := [tetris.Height][tetris.Width]string{}
	for y := range tetris.Height {
		var row [tetris.Width]tetris.Color
		if t != nil && t.Game != nil {
			row = t.Game.Grid.Row(y)
		}
		for x, v := range row {
			out := "  "
			if c, ok := colorMap[v]; ok {
				out = cell(c)
			}
			rendered[tetris.Height-1-y][x] = out
		}
	}
	return rendered
}

// labels is the sidebar text, indexed by screen row.
func labels(t *templateData) [tetris.Height]string {
	s := &tetris.Snapshot{}
	if t != nil && t.Game != nil {
		s = t.Game
	}
	var l [tetris.Height]string
	l[1] = fmt.Sprintf("Score: %d", s.Score)
	l[3] = fmt.Sprintf("Difficulty: %d", s.Difficulty+1)
	l[5] = "Playing"
	if s.GameOver() {
		l[5] = "Game Over"
	}
	if s.Paused {
		l[6] = "[Paused, Restart: r, Lobby: Enter]"
	}
	return l
}

func cell(color string) string {
	return fmt.Sprintf("\x1b[7m\x1b[%sm[]\x1b[0m", color)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
