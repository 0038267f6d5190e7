package constants

import "time"

const (

	// BoardWidth is the default number of columns
	BoardWidth uint = 10
	// BoardHeight is the default number of rows
	BoardHeight uint = 20
	// SpawnX is the column of the spawn anchor (top-left of the piece matrix)
	SpawnX int = 3
	// SpawnY is the row of the spawn anchor
	SpawnY int = 0

	// Line clear animation

	// LineClearDuration is how long full lines blink before they are removed
	LineClearDuration time.Duration = 1000 * time.Millisecond
	// BlinkPeriod is the length of one blink cycle
	BlinkPeriod time.Duration = 400 * time.Millisecond
	// BlinkHiddenAfter is the point in each cycle after which lines are hidden
	BlinkHiddenAfter time.Duration = 200 * time.Millisecond

	// LinesPerLevel is the number of cleared lines that advances the level
	LinesPerLevel uint32 = 10

	// HighScoreEntries is the size of the high score table
	HighScoreEntries int = 10
	// DefaultPlayerName is used when no name is configured
	DefaultPlayerName string = "PLAYER"
)

// BasePoints returns the points for clearing n lines at once, before the level multiplier.
func BasePoints(n uint32) uint64 {
	switch n {
	case 1:
		return 40
	case 2:
		return 100
	case 3:
		return 300
	case 4:
		return 1200
	default:
		return 0
	}
}
