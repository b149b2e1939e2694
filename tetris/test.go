package tetris

// NewTestSession creates a session at time 0 that only ever draws v. The
// first piece is already falling at the spawn location.
func NewTestSession(v Variant) *Session {
	s := NewSession(0, nil)
	s.next = func() Variant { return v }
	s.tick()
	return s
}

// NewTestBoard creates a board with the given cells filled with c.
func NewTestBoard(c Color, cells ...[2]int) *Board {
	b := NewBoard()
	for _, cell := range cells {
		b.paint(cell[0], cell[1], c)
	}
	return b
}

// Tick applies n gravity ticks regardless of the clock.
func (s *Session) Tick(n int) {
	for range n {
		if s.status == GameOver {
			return
		}
		s.tick()
	}
}
