package window

import (
	"log/slog"
	"testing"
	"time"

	"tetrisim/tetris"
	"tetrisim/viewport"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func newTestGame(v tetris.Variant) *Game {
	return &Game{
		session: tetris.NewTestSession(v),
		logger:  slog.New(slog.DiscardHandler),
		state:   playing,
		geom:    viewport.Fit(ScreenWidth, ScreenHeight),
	}
}

func TestActions(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want []tetris.Action
	}{
		{name: "nothing pressed", keys: nil, want: nil},
		{name: "arrows", keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowUp}, want: []tetris.Action{tetris.MoveLeft, tetris.RotateRight}},
		{name: "letters", keys: []ebiten.Key{ebiten.KeyQ, ebiten.KeyD, ebiten.KeyS}, want: []tetris.Action{tetris.MoveRight, tetris.MoveDown, tetris.RotateLeft}},
		{name: "both bindings once", keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, want: []tetris.Action{tetris.MoveLeft}},
		{name: "drop", keys: []ebiten.Key{ebiten.KeySpace}, want: []tetris.Action{tetris.DropDown}},
		{name: "unbound", keys: []ebiten.Key{ebiten.KeyZ}, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, actions(tt.keys))
		})
	}
}

func TestHandle(t *testing.T) {
	t.Run("input reaches the piece", func(t *testing.T) {
		t.Parallel()
		g := newTestGame(tetris.T)
		assert.NoError(t, g.handle([]ebiten.Key{ebiten.KeyArrowLeft}))
		assert.Equal(t, 2, g.session.Piece().X)
	})

	t.Run("elapsed time drives gravity", func(t *testing.T) {
		t.Parallel()
		g := newTestGame(tetris.T)
		g.elapsed = time.Second
		assert.NoError(t, g.handle(nil))
		assert.Equal(t, 21, g.session.Piece().Y)
	})

	t.Run("pause holds the piece", func(t *testing.T) {
		t.Parallel()
		g := newTestGame(tetris.T)
		assert.NoError(t, g.handle([]ebiten.Key{ebiten.KeyEscape}))
		assert.Equal(t, paused, g.state)
		assert.True(t, g.session.Paused())

		g.elapsed = 10 * time.Second
		assert.NoError(t, g.handle([]ebiten.Key{ebiten.KeyArrowDown}))
		assert.Equal(t, 23, g.session.Piece().Y)

		assert.NoError(t, g.handle([]ebiten.Key{ebiten.KeyP}))
		assert.Equal(t, playing, g.state)
		assert.NoError(t, g.handle(nil))
		assert.Equal(t, 23, g.session.Piece().Y)
	})

	t.Run("restart from pause", func(t *testing.T) {
		t.Parallel()
		g := newTestGame(tetris.T)
		id := g.session.ID()
		g.handle([]ebiten.Key{ebiten.KeyEscape})
		g.handle([]ebiten.Key{ebiten.KeyR})
		assert.Equal(t, playing, g.state)
		assert.NotEqual(t, id, g.session.ID())
		assert.Equal(t, tetris.Spawning, g.session.Status())
	})

	t.Run("lobby from pause", func(t *testing.T) {
		t.Parallel()
		g := newTestGame(tetris.T)
		g.handle([]ebiten.Key{ebiten.KeyEscape})
		g.handle([]ebiten.Key{ebiten.KeyEnter})
		assert.Equal(t, lobby, g.state)
		assert.Equal(t, ebiten.Termination, g.handle([]ebiten.Key{ebiten.KeyQ}))
	})

	t.Run("game over returns to the lobby", func(t *testing.T) {
		t.Parallel()
		g := newTestGame(tetris.Line)
		for range 100 {
			g.elapsed += time.Second
			assert.NoError(t, g.handle([]ebiten.Key{ebiten.KeySpace}))
			if g.state == lobby {
				break
			}
		}
		assert.Equal(t, lobby, g.state)
		assert.Equal(t, "Game Over", g.title)
		assert.True(t, g.session.GameOver())

		assert.NoError(t, g.handle([]ebiten.Key{ebiten.KeyP}))
		assert.Equal(t, playing, g.state)
		assert.False(t, g.session.GameOver())
	})
}

func TestLabels(t *testing.T) {
	assert.Equal(t, []string{"Score: 0", "Difficulty: 1", "Playing"}, labels(&tetris.Snapshot{}))
	assert.Equal(t,
		[]string{"Score: 400", "Difficulty: 5", "Playing", "[Paused, Restart: R, Lobby: Enter]"},
		labels(&tetris.Snapshot{Score: 400, Difficulty: 4, Paused: true}),
	)
	assert.Equal(t, "Game Over", labels(&tetris.Snapshot{Status: tetris.GameOver})[2])
}

func TestLayout(t *testing.T) {
	g := newTestGame(tetris.T)
	w, h := g.Layout(480, 960)
	assert.Equal(t, 480, w)
	assert.Equal(t, 960, h)
	assert.Equal(t, viewport.Fit(480, 960), g.geom)
}
