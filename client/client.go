package client

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"tetrisim/tetris"

	"github.com/eiannone/keyboard"
)

type clientState int

const (
	lobby clientState = iota
	playing
	paused
)

type state struct {
	current clientState
	mu      sync.Mutex
}

func (s *state) get() clientState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *state) set(c clientState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = c
}

type session interface {
	Step(now time.Duration, actions ...tetris.Action)
	Pause(now time.Duration)
	Resume(now time.Duration)
	Reset(now time.Duration)
	Read() *tetris.Snapshot
}

type renderer interface {
	game(*tetris.Snapshot)
	lobby(title string)
}

type Client struct {
	session session
	render  renderer
	logger  *slog.Logger
	kbCh    <-chan keyboard.KeyEvent
	state   *state
	clock   func() time.Duration
	frame   time.Duration
	pending []tetris.Action
}

type Options struct {
	FPS int
	// Rand picks the tetrominoes, nil uses the global generator.
	Rand *rand.Rand
}

func New(l *slog.Logger, o *Options) (*Client, error) {
	r, err := newRender(l)
	if err != nil {
		return nil, fmt.Errorf("failed to load renderer: %w", err)
	}
	kb, err := keyboard.GetKeys(20)
	if err != nil {
		return nil, fmt.Errorf("failed to open keyboard: %w", err)
	}
	fps := o.FPS
	if fps <= 0 {
		fps = 60
	}
	start := time.Now()
	clock := func() time.Duration { return time.Since(start) }
	return &Client{
		session: tetris.NewSession(clock(), &tetris.Options{Logger: l, Rand: o.Rand}),
		render:  r,
		logger:  l,
		kbCh:    kb,
		state:   &state{current: lobby},
		clock:   clock,
		frame:   time.Second / time.Duration(fps),
	}, nil
}

// Close releases the keyboard.
func (c *Client) Close() error {
	return keyboard.Close()
}

// Start runs the frame loop until the player quits. Key events and frames
// are handled by the same goroutine so the session is never shared.
func (c *Client) Start() {
	c.render.lobby("Welcome")
	t := time.NewTicker(c.frame)
	defer t.Stop()
	for {
		select {
		case event, ok := <-c.kbCh:
			if !ok {
				c.logger.Error("Keyboard events channel closed unexpectedly")
				return
			}
			if event.Err != nil {
				c.logger.Error("keysEvents error", slog.String("error", event.Err.Error()))
				return
			}
			if !c.handle(event) {
				return
			}
		case <-t.C:
			c.step()
		}
	}
}

// handle reacts to a single key press, it returns false when the player quits.
func (c *Client) handle(event keyboard.KeyEvent) bool {
	if event.Key == keyboard.KeyCtrlC {
		return false
	}
	switch c.state.get() {
	case lobby:
		switch event.Rune {
		case 'p':
			c.session.Reset(c.clock())
			c.pending = nil
			c.state.set(playing)
		case 'q':
			return false
		}
	case playing:
		if event.Key == keyboard.KeyEsc || event.Rune == 'p' {
			c.session.Pause(c.clock())
			c.state.set(paused)
			c.render.game(c.session.Read())
			return true
		}
		if a, ok := action(event); ok {
			c.pending = append(c.pending, a)
		}
	case paused:
		switch {
		case event.Key == keyboard.KeyEsc || event.Rune == 'p':
			c.session.Resume(c.clock())
			c.state.set(playing)
		case event.Rune == 'r':
			c.session.Reset(c.clock())
			c.pending = nil
			c.state.set(playing)
		case event.Key == keyboard.KeyEnter:
			c.pending = nil
			c.state.set(lobby)
			c.render.lobby("Welcome")
		}
	}
	return true
}

// step runs one frame: the session catches up with the clock, consumes the
// keys pressed since the last frame and gets drawn.
func (c *Client) step() {
	if c.state.get() != playing {
		return
	}
	c.session.Step(c.clock(), c.pending...)
	c.pending = c.pending[:0]
	s := c.session.Read()
	c.render.game(s)
	if s.GameOver() {
		c.state.set(lobby)
		c.render.lobby("Game Over :)")
	}
}

func action(event keyboard.KeyEvent) (tetris.Action, bool) {
	switch {
	case event.Key == keyboard.KeyArrowDown || event.Rune == 's':
		return tetris.MoveDown, true
	case event.Key == keyboard.KeyArrowLeft || event.Rune == 'a':
		return tetris.MoveLeft, true
	case event.Key == keyboard.KeyArrowRight || event.Rune == 'd':
		return tetris.MoveRight, true
	case event.Key == keyboard.KeyArrowUp || event.Rune == 'e' || event.Rune == 'w':
		return tetris.RotateRight, true
	case event.Rune == 'q':
		return tetris.RotateLeft, true
	case event.Key == keyboard.KeySpace:
		return tetris.DropDown, true
	}
	return "", false
}
