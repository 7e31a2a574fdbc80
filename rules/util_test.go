package rules

import (
	"io/ioutil"
	"math/rand"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func quietLogger() log.FieldLogger {
	l := log.New()
	l.Out = ioutil.Discard
	return l
}

func newTestGame(t *testing.T, width, height int32, opts ...Option) *GameState {
	t.Helper()
	opts = append([]Option{
		WithRand(rand.New(rand.NewSource(1))),
		WithLogger(quietLogger()),
	}, opts...)
	gs, err := New(width, height, opts...)
	require.NoError(t, err)
	return gs
}

type recorder struct {
	events []string
	snakes [][]Point
	foods  []Point
}

func record(gs *GameState) *recorder {
	r := &recorder{}
	gs.OnSnakeMove(func(snake []Point) {
		r.events = append(r.events, "snake")
		r.snakes = append(r.snakes, snake)
	})
	gs.OnFoodGenerated(func(food Point) {
		r.events = append(r.events, "food")
		r.foods = append(r.foods, food)
	})
	return r
}
