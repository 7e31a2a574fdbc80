package rules

import (
	"math/rand"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultWidth is the board width used when none is configured.
	DefaultWidth = 10
	// DefaultHeight is the board height used when none is configured.
	DefaultHeight = 10
	// MaxDimension bounds the board width and height.
	MaxDimension = 1024
)

var (
	// ErrInvalidGrid is returned when the board has no cells or exceeds
	// MaxDimension on either side.
	ErrInvalidGrid = errors.New("rules: grid dimensions out of range")
	// ErrEmptySnake is returned when the initial snake has no segments.
	ErrEmptySnake = errors.New("rules: snake must have at least one segment")
)

// InitialSnake is the layout every game starts from, head first.
func InitialSnake() []Point {
	return []Point{
		{X: 5, Y: 4},
		{X: 4, Y: 4},
		{X: 3, Y: 4},
	}
}

// New creates a game on a width x height board with the initial snake heading
// right, and places the first food.
func New(width, height int32, opts ...Option) (*GameState, error) {
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return nil, errors.Wrapf(ErrInvalidGrid, "%dx%d", width, height)
	}

	gs := &GameState{
		width:     width,
		height:    height,
		direction: DirectionRight,
		policy:    FoodPolicyRowColumn,
		intn:      rand.Intn,
		logger:    log.StandardLogger(),
	}
	WithSnake(InitialSnake())(gs)

	for _, opt := range opts {
		opt(gs)
	}

	if gs.snake.Len() == 0 {
		return nil, ErrEmptySnake
	}
	if !gs.direction.Valid() {
		return nil, errors.Errorf("rules: invalid direction %q", gs.direction)
	}
	if _, err := ParseFoodPolicy(string(gs.policy)); err != nil {
		return nil, err
	}

	// Boards smaller than the starting layout still get a valid snake.
	for _, b := range gs.snake.Body {
		b.X = mod(b.X, width)
		b.Y = mod(b.Y, height)
	}

	gs.logger = gs.logger.WithFields(log.Fields{
		"Width":  width,
		"Height": height,
	})

	gs.food = gs.snake.Head().Clone()
	if !gs.GenerateFood() {
		gs.logger.Warn("initial food placed under the snake")
	}

	return gs, nil
}

func mod(v, n int32) int32 {
	return ((v % n) + n) % n
}
