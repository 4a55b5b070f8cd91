package config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Board and snake dimensions. These are fixed, the game has no difficulty
// settings.
const (
	BoardWidth  = 40
	BoardHeight = 40
	SnakeLength = 4
	TickDelay   = 100 * time.Millisecond
)

// Configuration variables. These aren't user facing but useful when debugging
// the game.
var (
	TickRate  = rate.Every(TickDelay)
	LogLevel  = getEnv("SNAKE_LOG_LEVEL", "warn")
	Seed      = int64(getEnvInt("SNAKE_SEED", 0))
	TickBurst = 1
)

func getEnv(varName string, defaults string) string {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	return val
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

// SeedOrNow returns the configured seed, or the current time when none was
// set.
func SeedOrNow() int64 {
	if Seed != 0 {
		return Seed
	}
	return time.Now().UnixNano()
}
