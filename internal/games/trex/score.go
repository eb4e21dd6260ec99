package trex

// ScoreTimer tracks seconds survived in the current run and the best run.
type ScoreTimer struct {
	Elapsed float64
	Best    float64
}

// Advance adds dt seconds to the current run.
func (s *ScoreTimer) Advance(dt float64) {
	s.Elapsed += dt
}

// Restart settles the finished run before a new one starts. A run that beat
// the best becomes the new best and the timer restarts from zero; otherwise
// the timer keeps its value unless resetAlways is set.
func (s *ScoreTimer) Restart(resetAlways bool) (improved bool) {
	if s.Elapsed > s.Best {
		s.Best = s.Elapsed
		s.Elapsed = 0
		return true
	}
	if resetAlways {
		s.Elapsed = 0
	}
	return false
}
