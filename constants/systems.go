package constants

// System Priorities (lower runs first within a tick)
const (
	PriorityGravity    = 10
	PrioritySpawn      = 20
	PriorityScroll     = 30
	PriorityCull       = 40
	PriorityDifficulty = 50
	PriorityCollision  = 60
	PriorityScore      = 70
)
