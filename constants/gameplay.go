package constants

// Drone Constants
const (
	DroneX      = 80.0
	DroneWidth  = 64.0
	DroneHeight = 48.0

	// DroneStartY centers the drone vertically
	DroneStartY = FieldHeight/2 - DroneHeight/2

	// Gravity is added to vertical velocity once per tick
	Gravity = 0.45

	// Lift replaces vertical velocity on flap
	Lift = -9.0

	// Tilt mapping for visuals (radians)
	TiltFactor = 0.03
	TiltMin    = -0.6
	TiltMax    = 0.9
)

// Obstacle Constants
const (
	ObstacleWidth = 48.0
	ObstacleGap   = 140

	// ObstacleMinTop is the margin kept above and below the gap range
	ObstacleMinTop = 40

	// ObstacleMaxTop is the highest top-rectangle height
	ObstacleMaxTop = int(FieldHeight) - ObstacleGap - ObstacleMinTop

	// ObstacleSpawnX places new obstacles just past the right edge
	ObstacleSpawnX = FieldWidth + 10

	// ObstacleCullX removes obstacles whose trailing edge is left of this
	ObstacleCullX = -20.0
)

// Scroll and Difficulty Constants
const (
	BaseSpeed = 3.2

	SpeedMultiplierStep = 0.035
	SpeedMultiplierCap  = 1.6
	SpeedMultiplierMax  = 1 + SpeedMultiplierCap

	SpawnIntervalBaseMs = 1400.0
	SpawnIntervalStepMs = 18.0
	SpawnIntervalCapMs  = 600.0
	SpawnIntervalMinMs  = SpawnIntervalBaseMs - SpawnIntervalCapMs
)

// Score Constants
const (
	// ScorePerMs is the continuous score gained per elapsed millisecond
	ScorePerMs = 0.01

	// PassBonus is awarded once per obstacle passed
	PassBonus = 10.0

	// BestScoreKey is the single persistence key for the best score
	BestScoreKey = "drone_runner_best"
)
