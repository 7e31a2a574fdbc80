package rules

import (
	"fmt"
	"strings"
)

// Direction is the heading of the snake.
type Direction string

const (
	// DirectionRight moves the head one cell towards larger x.
	DirectionRight Direction = "RIGHT"
	// DirectionLeft moves the head one cell towards smaller x.
	DirectionLeft Direction = "LEFT"
	// DirectionUp moves the head one cell towards smaller y.
	DirectionUp Direction = "UP"
	// DirectionDown moves the head one cell towards larger y.
	DirectionDown Direction = "DOWN"
)

// Directions lists every valid direction.
var Directions = []Direction{DirectionRight, DirectionLeft, DirectionUp, DirectionDown}

// ParseDirection converts a case insensitive direction name.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToUpper(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("rules: unknown direction %q", s)
	}
	return d, nil
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	switch d {
	case DirectionRight, DirectionLeft, DirectionUp, DirectionDown:
		return true
	}
	return false
}

// Offset returns the unit delta of a single move in direction d.
func (d Direction) Offset() (dx, dy int32) {
	switch d {
	case DirectionRight:
		return 1, 0
	case DirectionLeft:
		return -1, 0
	case DirectionDown:
		return 0, 1
	case DirectionUp:
		return 0, -1
	}
	return 0, 0
}

func (d Direction) String() string { return string(d) }
