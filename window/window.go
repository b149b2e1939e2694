// Package window runs a session in a desktop window on ebiten.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math/rand/v2"
	"time"

	"tetrisim/tetris"
	"tetrisim/viewport"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

var (
	background = color.RGBA{0x20, 0x20, 0x20, 0xff}
	boardColor = color.RGBA{0x10, 0x10, 0x10, 0xff}

	palette = map[tetris.Color]color.RGBA{
		tetris.LightBlue: {0x00, 0xe5, 0xff, 0xff},
		tetris.Blue:      {0x1e, 0x4f, 0xff, 0xff},
		tetris.Orange:    {0xff, 0xa5, 0x00, 0xff},
		tetris.Yellow:    {0xff, 0xe0, 0x00, 0xff},
		tetris.Lime:      {0x7c, 0xfc, 0x00, 0xff},
		tetris.Purple:    {0xa0, 0x20, 0xf0, 0xff},
		tetris.Red:       {0xff, 0x20, 0x20, 0xff},
	}
)

type gameState int

const (
	lobby gameState = iota
	playing
	paused
)

var keyActions = []struct {
	keys   []ebiten.Key
	action tetris.Action
}{
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, tetris.MoveLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, tetris.MoveRight},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, tetris.MoveDown},
	{[]ebiten.Key{ebiten.KeySpace}, tetris.DropDown},
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyE, ebiten.KeyW}, tetris.RotateRight},
	{[]ebiten.Key{ebiten.KeyQ}, tetris.RotateLeft},
}

type Options struct {
	Logger *slog.Logger
	// Rand picks the tetrominoes, nil uses the global generator.
	Rand *rand.Rand
}

// Game implements ebiten.Game. Time is counted in frames so the session
// follows ebiten's tick rate.
type Game struct {
	session *tetris.Session
	logger  *slog.Logger
	state   gameState
	title   string
	elapsed time.Duration
	geom    viewport.Geometry
	pressed []ebiten.Key
}

func New(o *Options) *Game {
	if o == nil {
		o = &Options{}
	}
	l := o.Logger
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	return &Game{
		session: tetris.NewSession(0, &tetris.Options{Logger: l, Rand: o.Rand}),
		logger:  l,
		state:   lobby,
		title:   "Tetris",
		geom:    viewport.Fit(ScreenWidth, ScreenHeight),
	}
}

// Run opens the window and blocks until it's closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Tetris")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}

func (g *Game) Update() error {
	g.elapsed += time.Second / time.Duration(ebiten.TPS())
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	return g.handle(g.pressed)
}

// handle applies the keys pressed this frame.
func (g *Game) handle(keys []ebiten.Key) error {
	switch g.state {
	case lobby:
		switch {
		case has(keys, ebiten.KeyEnter, ebiten.KeyP):
			g.session.Reset(g.elapsed)
			g.state = playing
		case has(keys, ebiten.KeyQ):
			g.logger.Debug("window closed from the lobby")
			return ebiten.Termination
		}
	case playing:
		if has(keys, ebiten.KeyEscape, ebiten.KeyP) {
			g.session.Pause(g.elapsed)
			g.state = paused
			return nil
		}
		g.session.Step(g.elapsed, actions(keys)...)
		if g.session.GameOver() {
			g.logger.Debug("back to the lobby", slog.Int("score", g.session.Score()))
			g.title = "Game Over"
			g.state = lobby
		}
	case paused:
		switch {
		case has(keys, ebiten.KeyEscape, ebiten.KeyP):
			g.session.Resume(g.elapsed)
			g.state = playing
		case has(keys, ebiten.KeyR):
			g.session.Reset(g.elapsed)
			g.state = playing
		case has(keys, ebiten.KeyEnter):
			g.title = "Tetris"
			g.state = lobby
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	b := g.geom.Board
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, boardColor, false)

	s := g.session.Read()
	for x := range tetris.Width {
		for y := range tetris.Height {
			c, ok := palette[s.Grid[x][y]]
			if !ok {
				continue
			}
			r := g.geom.CellRect(x, y)
			// one pixel gap between cells.
			vector.DrawFilledRect(screen, r.X+1, r.Y+1, r.W-2, r.H-2, c, false)
		}
	}

	lx, ly := int(g.geom.Left.X)+16, int(g.geom.Left.Y)+16
	for i, l := range labels(s) {
		ebitenutil.DebugPrintAt(screen, l, lx, ly+i*16)
	}
	if g.state == lobby {
		cx, cy := int(b.X+b.W/2)-48, int(b.Y+b.H/2)-16
		ebitenutil.DebugPrintAt(screen, g.title, cx, cy)
		ebitenutil.DebugPrintAt(screen, "(p)lay  (q)uit", cx, cy+16)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.geom = viewport.Fit(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func labels(s *tetris.Snapshot) []string {
	info := "Playing"
	if s.GameOver() {
		info = "Game Over"
	}
	l := []string{
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("Difficulty: %d", s.Difficulty+1),
		info,
	}
	if s.Paused {
		l = append(l, "[Paused, Restart: R, Lobby: Enter]")
	}
	return l
}

func actions(keys []ebiten.Key) []tetris.Action {
	var a []tetris.Action
	for _, ka := range keyActions {
		if has(keys, ka.keys...) {
			a = append(a, ka.action)
		}
	}
	return a
}

func has(keys []ebiten.Key, want ...ebiten.Key) bool {
	for _, k := range keys {
		for _, w := range want {
			if k == w {
				return true
			}
		}
	}
	return false
}
