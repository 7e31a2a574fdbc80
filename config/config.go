package config

import (
	"os"
	"strconv"
	"time"

	"github.com/battlesnakeio/snake/rules"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// Configuration variables. They provide the defaults for command line flags.
var (
	Width      = getEnvInt("SNAKE_WIDTH", rules.DefaultWidth)
	Height     = getEnvInt("SNAKE_HEIGHT", rules.DefaultHeight)
	TickMS     = getEnvInt("SNAKE_TICK_MS", 300)
	FoodPolicy = getEnvString("SNAKE_FOOD_POLICY", string(rules.FoodPolicyRowColumn))
	LogLevel   = getEnvString("SNAKE_LOG_LEVEL", "info")
	SimRate    = rate.Limit(getEnvInt("SNAKE_SIM_RPS", 50))
	SimBurst   = getEnvInt("SNAKE_SIM_BURST", 1)
)

// Game holds the settings of a single game.
type Game struct {
	Width      int
	Height     int
	TickMS     int
	FoodPolicy string
}

// Defaults returns the game settings taken from the environment.
func Defaults() Game {
	return Game{
		Width:      Width,
		Height:     Height,
		TickMS:     TickMS,
		FoodPolicy: FoodPolicy,
	}
}

// Validate checks the settings are usable.
func (g Game) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return errors.Errorf("board must have positive dimensions, got %dx%d", g.Width, g.Height)
	}
	if g.Width > rules.MaxDimension || g.Height > rules.MaxDimension {
		return errors.Errorf("board must be at most %d cells on a side, got %dx%d", rules.MaxDimension, g.Width, g.Height)
	}
	if g.TickMS <= 0 {
		return errors.Errorf("tick interval must be positive, got %dms", g.TickMS)
	}
	if _, err := rules.ParseFoodPolicy(g.FoodPolicy); err != nil {
		return errors.Wrap(err, "invalid food policy")
	}
	return nil
}

// Interval is the time between steps.
func (g Game) Interval() time.Duration {
	return time.Duration(g.TickMS) * time.Millisecond
}

// Options converts the settings to game state options.
func (g Game) Options() ([]rules.Option, error) {
	fp, err := rules.ParseFoodPolicy(g.FoodPolicy)
	if err != nil {
		return nil, errors.Wrap(err, "invalid food policy")
	}
	return []rules.Option{rules.WithFoodPolicy(fp)}, nil
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

func getEnvString(varName string, defaults string) string {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	return val
}
