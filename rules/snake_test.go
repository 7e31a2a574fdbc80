package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnake_Move(t *testing.T) {
	tests := []struct {
		Direction Direction
		Expected  *Point
	}{
		{
			Direction: DirectionUp,
			Expected:  &Point{X: 5, Y: 4},
		},
		{
			Direction: DirectionDown,
			Expected:  &Point{X: 5, Y: 6},
		},
		{
			Direction: DirectionLeft,
			Expected:  &Point{X: 4, Y: 5},
		},
		{
			Direction: DirectionRight,
			Expected:  &Point{X: 6, Y: 5},
		},
	}

	for _, test := range tests {
		s := &Snake{
			Body: []*Point{
				{X: 5, Y: 5},
			},
		}
		s.Move(test.Direction)
		require.Equal(t, test.Expected, s.Head(), "Direction: %s", test.Direction)
		require.Equal(t, 2, s.Len())
	}
}

func TestSnake_MoveEmpty(t *testing.T) {
	s := &Snake{}
	s.Move(DirectionUp)
	require.Nil(t, s.Head())
	require.Nil(t, s.Tail())
}

func TestSnake_Tail(t *testing.T) {
	s := &Snake{
		Body: []*Point{
			{X: 5, Y: 5},
			{X: 4, Y: 5},
		},
	}

	require.Equal(t, &Point{X: 4, Y: 5}, s.Tail())
	require.Equal(t, &Point{X: 4, Y: 5}, s.popTail())
	require.Equal(t, 1, s.Len())
}

func TestSnake_PointsIsDetached(t *testing.T) {
	s := &Snake{
		Body: []*Point{
			{X: 1, Y: 1},
		},
	}
	points := s.Points()
	points[0].X = 9
	require.Equal(t, int32(1), s.Head().X)
}
