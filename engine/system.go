package engine

// System advances one concern of the simulation by one tick
// Systems run in registration order; a system that ends the run stops the tick
type System interface {
	Update(s *GameSession, dtMs float64)
}

// SystemFunc adapts a function to the System interface
type SystemFunc func(s *GameSession, dtMs float64)

func (f SystemFunc) Update(s *GameSession, dtMs float64) {
	f(s, dtMs)
}
