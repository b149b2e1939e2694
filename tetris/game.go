package tetris

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

type Action string

const (
	MoveLeft    Action = "left"      // Moves the Tetromino one step to the left.
	MoveRight   Action = "right"     // Moves the Tetromino one step to the right.
	MoveDown    Action = "down"      // Moves the Tetromino one step down.
	DropDown    Action = "drop"      // Drops the Tetromino down the stack.
	RotateRight Action = "rotatecw"  // Rotates the Tetromino clockwise.
	RotateLeft  Action = "rotateccw" // Rotates the Tetromino counter-clockwise.
)

// actions are applied in this order when several arrive in the same frame.
var actionOrder = []Action{MoveLeft, MoveRight, MoveDown, DropDown, RotateRight, RotateLeft}

// Status of the session state machine.
type Status int

const (
	Spawning Status = iota // no piece, the next tick spawns one.
	Falling                // a piece is falling.
	GameOver               // the spawn location was blocked.
)

func (s Status) String() string {
	switch s {
	case Spawning:
		return "spawning"
	case Falling:
		return "falling"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

type Options struct {
	Logger *slog.Logger
	// Rand picks the next tetromino. Nil uses the global generator.
	Rand *rand.Rand
}

// Session is one game: it owns the board, the falling piece and the ticker.
// It is not safe for concurrent use; hosts call it from their frame loop.
type Session struct {
	id         uuid.UUID
	board      *Board
	piece      Piece
	ticker     *Ticker
	status     Status
	score      int
	difficulty int
	lines      int

	next   func() Variant
	root   *slog.Logger
	logger *slog.Logger
}

// Snapshot is a copy of the session state for renderers.
type Snapshot struct {
	ID         uuid.UUID
	Grid       Grid
	Score      int
	Difficulty int
	Lines      int
	Status     Status
	Paused     bool
	Interval   time.Duration
}

func (s *Snapshot) GameOver() bool { return s.Status == GameOver }

// NewSession starts a game at host time now.
func NewSession(now time.Duration, o *Options) *Session {
	if o == nil {
		o = &Options{}
	}
	l := o.Logger
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	r := o.Rand
	s := &Session{
		root: l,
		next: func() Variant { return RandomVariant(r) },
	}
	s.Reset(now)
	return s
}

// Reset discards the current game and starts a new one at now.
func (s *Session) Reset(now time.Duration) {
	s.id = uuid.New()
	s.logger = s.root.With(slog.String("session", s.id.String()))
	s.board = NewBoard()
	s.piece = Piece{}
	s.ticker = NewTicker(now, GravityInterval(0))
	s.status = Spawning
	s.score = 0
	s.difficulty = 0
	s.lines = 0
	s.logger.Info("new game")
}

// Step advances the game to host time now: every gravity tick that elapsed
// is applied first, then each distinct action once. It does nothing while
// the session is paused or over.
func (s *Session) Step(now time.Duration, actions ...Action) {
	if s.ticker.Paused() || s.status == GameOver {
		return
	}
	for range s.ticker.Ticks(now) {
		s.tick()
		if s.status == GameOver {
			return
		}
	}
	if !s.piece.Active() || len(actions) == 0 {
		return
	}

	pending := make(map[Action]bool, len(actions))
	for _, a := range actions {
		pending[a] = true
	}
	for _, a := range actionOrder {
		if pending[a] {
			s.action(a)
		}
	}
}

func (s *Session) tick() {
	switch s.status {
	case Spawning:
		v := s.next()
		if !s.piece.Spawn(s.board, v) {
			s.status = GameOver
			s.logger.Info("game over",
				slog.Int("score", s.score),
				slog.Int("difficulty", s.difficulty),
				slog.Int("lines", s.lines),
			)
			return
		}
		s.status = Falling
		s.logger.Debug("spawned", slog.String("variant", v.String()))
	case Falling:
		if s.piece.GravityTick(s.board) {
			s.lock()
		}
	}
}

func (s *Session) lock() {
	clears := ClearFullRows(s.board)
	s.score += Award(clears)
	s.difficulty += clears
	s.lines += clears
	s.ticker.SetInterval(GravityInterval(s.difficulty))
	s.status = Spawning
	s.logger.Debug("locked",
		slog.Int("clears", clears),
		slog.Int("score", s.score),
		slog.Duration("interval", s.ticker.Interval()),
	)
}

func (s *Session) action(a Action) {
	switch a {
	case MoveLeft:
		s.piece.MoveBy(s.board, -1, 0)
	case MoveRight:
		s.piece.MoveBy(s.board, 1, 0)
	case MoveDown:
		s.piece.MoveBy(s.board, 0, -1)
	case DropDown:
		s.piece.HardDrop(s.board)
	case RotateRight:
		s.piece.Rotate(s.board, Clockwise)
	case RotateLeft:
		s.piece.Rotate(s.board, CounterClockwise)
	}
}

// Pause stops the gravity clock. Step is a no-op until Resume.
func (s *Session) Pause(now time.Duration) {
	s.ticker.Pause(now)
	s.logger.Debug("paused")
}

// Resume restarts the gravity clock without counting the paused time.
func (s *Session) Resume(now time.Duration) {
	s.ticker.Resume(now)
	s.logger.Debug("resumed")
}

func (s *Session) Paused() bool { return s.ticker.Paused() }
func (s *Session) Score() int { return s.score }
func (s *Session) Difficulty() int { return s.difficulty }
func (s *Session) Lines() int { return s.lines }
func (s *Session) Status() Status { return s.status }
func (s *Session) GameOver() bool { return s.status == GameOver }
func (s *Session) ID() uuid.UUID { return s.id }
func (s *Session) Piece() Piece { return s.piece }
func (s *Session) Board() Grid { return s.board.Snapshot() }

// Interval is the current time between gravity ticks.
func (s *Session) Interval() time.Duration { return s.ticker.Interval() }

// Read returns a copy of the current state that's safe to hand to a renderer.
func (s *Session) Read() *Snapshot {
	return &Snapshot{
		ID:         s.id,
		Grid:       s.board.Snapshot(),
		Score:      s.score,
		Difficulty: s.difficulty,
		Lines:      s.lines,
		Status:     s.status,
		Paused:     s.ticker.Paused(),
		Interval:   s.ticker.Interval(),
	}
}

// Award is the score for clearing n rows with one piece: 100, 200, 400, 800.
func Award(clears int) int {
	if clears <= 0 {
		return 0
	}
	return 100 << (clears - 1)
}

// GravityInterval is the time between gravity ticks at difficulty d,
// 1 / (d/10 + 2) seconds.
func GravityInterval(d int) time.Duration {
	return time.Duration(float64(time.Second) / (float64(d)/10 + 2))
}
