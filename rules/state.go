package rules

import (
	"math/rand"

	log "github.com/sirupsen/logrus"
)

// GameState owns the board, the snake, the food and the current direction.
// It is not safe for concurrent use; the session drives it from a single
// goroutine.
type GameState struct {
	width     int32
	height    int32
	snake     *Snake
	food      *Point
	direction Direction
	policy    FoodPolicy

	intn   func(n int) int
	logger log.FieldLogger

	snakeObservers []func([]Point)
	foodObservers  []func(Point)
}

// Option configures a GameState at construction.
type Option func(*GameState)

// WithRand makes food placement draw from r instead of the global source. A
// nil r keeps the global source.
func WithRand(r *rand.Rand) Option {
	return func(gs *GameState) {
		if r != nil {
			gs.intn = r.Intn
		}
	}
}

// WithFoodPolicy selects the food collision policy.
func WithFoodPolicy(fp FoodPolicy) Option {
	return func(gs *GameState) { gs.policy = fp }
}

// WithSnake replaces the initial snake layout, head first.
func WithSnake(body []Point) Option {
	return func(gs *GameState) {
		gs.snake = &Snake{Body: make([]*Point, 0, len(body))}
		for i := range body {
			gs.snake.Body = append(gs.snake.Body, body[i].Clone())
		}
	}
}

// WithDirection sets the initial direction.
func WithDirection(d Direction) Option {
	return func(gs *GameState) { gs.direction = d }
}

// WithLogger sets the logger used for state changes.
func WithLogger(l log.FieldLogger) Option {
	return func(gs *GameState) { gs.logger = l }
}

// Width of the board.
func (gs *GameState) Width() int32 { return gs.width }

// Height of the board.
func (gs *GameState) Height() int32 { return gs.height }

// Direction the snake will move on the next step.
func (gs *GameState) Direction() Direction { return gs.direction }

// FoodPolicy in use for food placement.
func (gs *GameState) FoodPolicy() FoodPolicy { return gs.policy }

// Snake returns a copy of the snake body, head first.
func (gs *GameState) Snake() []Point { return gs.snake.Points() }

// Food returns the food position.
func (gs *GameState) Food() Point { return *gs.food }

// SetDirection changes the direction used by the next step. Any direction is
// accepted, including the reverse of the current one.
func (gs *GameState) SetDirection(d Direction) {
	if !d.Valid() {
		return
	}
	gs.direction = d
}

// OnSnakeMove registers fn to receive the full body after every step.
func (gs *GameState) OnSnakeMove(fn func(snake []Point)) {
	gs.snakeObservers = append(gs.snakeObservers, fn)
}

// OnFoodGenerated registers fn to receive every new food position.
func (gs *GameState) OnFoodGenerated(fn func(food Point)) {
	gs.foodObservers = append(gs.foodObservers, fn)
}

func (gs *GameState) emitSnake() {
	for _, fn := range gs.snakeObservers {
		fn(gs.snake.Points())
	}
}

func (gs *GameState) emitFood() {
	for _, fn := range gs.foodObservers {
		fn(*gs.food)
	}
}
