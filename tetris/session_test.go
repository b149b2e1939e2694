package tetris

import (
	"testing"
	"time"
)

func TestSessionSpawn(t *testing.T) {
	s := NewSession(0, nil)
	if s.Status() != Spawning {
		t.Fatalf("wanted a new session to be spawning, got %v", s.Status())
	}
	s.Step(ms(499))
	if s.Status() != Spawning {
		t.Errorf("wanted no spawn before the first tick, got %v", s.Status())
	}
	s.Step(ms(500))
	if s.Status() != Falling || !s.piece.Active() {
		t.Errorf("wanted a falling piece after the first tick, got %v", s.Status())
	}
}

func TestSessionLock(t *testing.T) {
	// .	0 1 2 3 4 5 6 7 8 9
	// 23	X X X X O O X X X X
	// 22	X X X X O O X X X X
	s := NewTestSession(Square)
	s.Tick(22)
	if p := s.Piece(); p.Y != 1 || !p.Active() {
		t.Fatalf("wanted the square resting at row 1, got %+v", p)
	}
	s.Tick(1)
	if s.Status() != Spawning || s.piece.Active() {
		t.Fatalf("wanted the square locked, got %v", s.Status())
	}
	s.Tick(1)
	if s.Status() != Falling {
		t.Errorf("wanted a new piece, got %v", s.Status())
	}
	if s.Score() != 0 || s.Difficulty() != 0 {
		t.Errorf("wanted no score without clears, got %d/%d", s.Score(), s.Difficulty())
	}
}

func TestSessionClears(t *testing.T) {
	// .	0 1 2 3 4 5 6 7 8 9
	// 1	O O O O . . O O O O
	// 0	O O O O . . O O O O
	s := NewTestSession(Square)
	for x := range Width {
		if x == 4 || x == 5 {
			continue
		}
		s.board.paint(x, 0, Red)
		s.board.paint(x, 1, Red)
	}
	s.Step(0, DropDown)
	s.Tick(1)
	if s.Score() != 200 || s.Difficulty() != 2 || s.Lines() != 2 {
		t.Errorf("wanted score 200 and difficulty 2, got %d and %d", s.Score(), s.Difficulty())
	}
	if s.Interval() != GravityInterval(2) {
		t.Errorf("wanted interval %v, got %v", GravityInterval(2), s.Interval())
	}
	if s.Board() != (Grid{}) {
		t.Errorf("wanted an empty board, got\n%v", s.Board())
	}

	// a single row on the next piece.
	s.Tick(1)
	for x := range Width {
		if x != 4 && x != 5 {
			s.board.paint(x, 0, Red)
		}
	}
	s.Step(0, DropDown)
	s.Tick(1)
	if s.Score() != 300 || s.Difficulty() != 3 {
		t.Errorf("wanted score 300 and difficulty 3, got %d and %d", s.Score(), s.Difficulty())
	}
	want := NewTestBoard(Yellow, [2]int{4, 0}, [2]int{5, 0})
	if s.Board() != want.Snapshot() {
		t.Errorf("wanted\n%v\ngot\n%v", want.Snapshot(), s.Board())
	}
}

func TestSessionGameOver(t *testing.T) {
	s := NewSession(0, nil)
	s.next = func() Variant { return L }
	s.board.paint(4, 22, Red)
	before := s.Board()
	s.Step(ms(500))
	if !s.GameOver() || s.Status() != GameOver {
		t.Fatalf("wanted game over, got %v", s.Status())
	}
	if s.Board() != before {
		t.Errorf("wanted a blocked spawn to leave the board unchanged")
	}
	s.Step(ms(10000), MoveLeft, DropDown)
	if s.Board() != before || s.piece.Active() {
		t.Errorf("wanted a finished session to ignore steps")
	}
	if !s.Read().GameOver() {
		t.Errorf("wanted the snapshot to report game over")
	}
}

func TestSessionStep(t *testing.T) {
	t.Run("each action applies once per frame", func(t *testing.T) {
		t.Parallel()
		s := NewTestSession(T)
		s.Step(0, MoveLeft, MoveLeft, MoveLeft)
		if p := s.Piece(); p.X != 2 {
			t.Errorf("wanted X 2, got %d", p.X)
		}
	})

	t.Run("ticks apply before input", func(t *testing.T) {
		t.Parallel()
		s := NewTestSession(T)
		s.Step(ms(1000), MoveLeft)
		if p := s.Piece(); p.X != 2 || p.Y != 21 {
			t.Errorf("wanted (2, 21), got (%d, %d)", p.X, p.Y)
		}
	})

	t.Run("moves apply before the drop", func(t *testing.T) {
		// .	0 1 2 3 4 5 6 7 8 9
		// 5	X X O X X X X X X X
		t.Parallel()
		s := NewTestSession(T)
		s.board.paint(2, 5, Red)
		s.Step(0, DropDown, MoveLeft)
		if p := s.Piece(); p.X != 2 || p.Y != 7 {
			t.Errorf("wanted (2, 7), got (%d, %d)", p.X, p.Y)
		}
	})

	t.Run("rotations", func(t *testing.T) {
		t.Parallel()
		s := NewTestSession(T)
		s.Step(0, RotateRight)
		if p := s.Piece(); p.Rotation != 1 {
			t.Errorf("wanted rotation 1, got %d", p.Rotation)
		}
		s.Step(0, RotateLeft)
		s.Step(0, RotateLeft)
		if p := s.Piece(); p.Rotation != 3 {
			t.Errorf("wanted rotation 3, got %d", p.Rotation)
		}
	})

	t.Run("input without a piece is ignored", func(t *testing.T) {
		t.Parallel()
		s := NewSession(0, nil)
		s.Step(0, MoveLeft, DropDown)
		if s.Board() != (Grid{}) || s.Status() != Spawning {
			t.Errorf("wanted nothing to happen")
		}
	})
}

func TestSessionPause(t *testing.T) {
	s := NewTestSession(T)
	s.Step(ms(200))
	s.Pause(ms(200))
	if !s.Paused() || !s.Read().Paused {
		t.Fatalf("wanted session to be paused")
	}
	s.Step(ms(100000), MoveLeft)
	if p := s.Piece(); p.X != 3 || p.Y != 23 {
		t.Errorf("wanted a paused session to ignore steps, got (%d, %d)", p.X, p.Y)
	}
	s.Resume(ms(100000))
	s.Step(ms(100200))
	if p := s.Piece(); p.Y != 23 {
		t.Errorf("wanted no tick yet, got row %d", p.Y)
	}
	s.Step(ms(100300))
	if p := s.Piece(); p.Y != 22 {
		t.Errorf("wanted one tick, got row %d", p.Y)
	}
}

func TestSessionReset(t *testing.T) {
	s := NewTestSession(Square)
	for x := range Width {
		if x != 4 && x != 5 {
			s.board.paint(x, 0, Red)
		}
	}
	s.Step(0, DropDown)
	s.Tick(1)
	if s.Score() == 0 {
		t.Fatalf("wanted some score before the reset")
	}
	id := s.ID()
	s.Pause(ms(10))
	s.Reset(ms(20))
	if s.Score() != 0 || s.Difficulty() != 0 || s.Lines() != 0 {
		t.Errorf("wanted counters reset, got %d/%d/%d", s.Score(), s.Difficulty(), s.Lines())
	}
	if s.Status() != Spawning || s.Paused() || s.piece.Active() {
		t.Errorf("wanted a fresh spawning session, got %v", s.Status())
	}
	if s.Board() != (Grid{}) {
		t.Errorf("wanted an empty board")
	}
	if s.ID() == id {
		t.Errorf("wanted a new session id")
	}
	if s.Interval() != 500*time.Millisecond {
		t.Errorf("wanted interval 500ms, got %v", s.Interval())
	}
	s.Step(ms(520))
	if s.Status() != Falling {
		t.Errorf("wanted a spawn one interval after the reset, got %v", s.Status())
	}
}
