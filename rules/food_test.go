package rules

import (
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

var foodBody = []*Point{
	{X: 5, Y: 4},
	{X: 4, Y: 4},
	{X: 3, Y: 4},
}

func TestFoodPolicyCollides(t *testing.T) {
	tests := []struct {
		Point    Point
		RowCol   bool
		CellOnly bool
	}{
		{Point{X: 4, Y: 4}, true, true},
		{Point{X: 4, Y: 0}, true, false},
		{Point{X: 9, Y: 4}, true, false},
		{Point{X: 3, Y: 9}, true, false},
		{Point{X: 6, Y: 5}, false, false},
		{Point{X: 0, Y: 0}, false, false},
	}
	for _, test := range tests {
		p := test.Point
		require.Equal(t, test.RowCol, FoodPolicyRowColumn.Collides(&p, foodBody), "row-column %s", p)
		require.Equal(t, test.CellOnly, FoodPolicyCell.Collides(&p, foodBody), "cell %s", p)
	}
}

func TestParseFoodPolicy(t *testing.T) {
	fp, err := ParseFoodPolicy("")
	require.NoError(t, err)
	require.Equal(t, FoodPolicyRowColumn, fp)

	fp, err = ParseFoodPolicy("cell")
	require.NoError(t, err)
	require.Equal(t, FoodPolicyCell, fp)

	_, err = ParseFoodPolicy("random")
	require.Error(t, err)
}

func TestGenerateFoodNeverCollides(t *testing.T) {
	for _, policy := range []FoodPolicy{FoodPolicyRowColumn, FoodPolicyCell} {
		for seed := int64(0); seed < 200; seed++ {
			gs, err := New(10, 10,
				WithRand(rand.New(rand.NewSource(seed))),
				WithFoodPolicy(policy),
				WithLogger(quietLogger()),
			)
			require.NoError(t, err)

			require.True(t, gs.GenerateFood())
			food := gs.Food()
			require.False(t, policy.Collides(&food, gs.snake.Body), spew.Sdump(policy, food, gs.Snake()))
		}
	}
}

func TestGenerateFoodCoversOpenCells(t *testing.T) {
	gs := newTestGame(t, 10, 10)
	seen := map[Point]bool{}
	for i := 0; i < 2000; i++ {
		gs.GenerateFood()
		seen[gs.Food()] = true
	}
	// 7 free columns x 9 free rows.
	require.Len(t, seen, 63)
}

func TestGenerateFoodNotifies(t *testing.T) {
	gs := newTestGame(t, 10, 10)
	r := record(gs)

	require.True(t, gs.GenerateFood())
	require.Equal(t, []string{"food"}, r.events)
	require.Equal(t, []Point{gs.Food()}, r.foods)
}

func TestGenerateFoodNoOpenCell(t *testing.T) {
	body := []Point{}
	for x := int32(0); x < 5; x++ {
		body = append(body, Point{X: x, Y: x})
	}
	gs := newTestGame(t, 5, 5, WithSnake(body))
	r := record(gs)
	before := gs.Food()

	require.False(t, gs.GenerateFood())
	require.Equal(t, before, gs.Food())
	require.Empty(t, r.events)
}

func TestGetOpenPoints(t *testing.T) {
	open := getOpenPoints(3, 2, FoodPolicyCell, []*Point{{X: 0, Y: 0}, {X: 1, Y: 0}})
	require.Equal(t, []*Point{
		{X: 0, Y: 1},
		{X: 1, Y: 1},
		{X: 2, Y: 0},
		{X: 2, Y: 1},
	}, open)
}
