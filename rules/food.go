package rules

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// FoodPolicy decides which cells are too close to the snake to hold food.
type FoodPolicy string

const (
	// FoodPolicyRowColumn rejects any cell that shares a row or a column with
	// a snake segment. This is the classic behaviour of the game and is much
	// stricter than plain occupancy.
	FoodPolicyRowColumn FoodPolicy = "row-column"
	// FoodPolicyCell only rejects cells occupied by a snake segment.
	FoodPolicyCell FoodPolicy = "cell"
)

// ParseFoodPolicy converts a policy name, empty means the default policy.
func ParseFoodPolicy(s string) (FoodPolicy, error) {
	switch FoodPolicy(s) {
	case "", FoodPolicyRowColumn:
		return FoodPolicyRowColumn, nil
	case FoodPolicyCell:
		return FoodPolicyCell, nil
	}
	return "", fmt.Errorf("rules: unknown food policy %q", s)
}

// Collides reports whether food at p would collide with body.
func (fp FoodPolicy) Collides(p *Point, body []*Point) bool {
	for _, b := range body {
		if fp == FoodPolicyCell {
			if b.Equals(p) {
				return true
			}
			continue
		}
		if b.X == p.X || b.Y == p.Y {
			return true
		}
	}
	return false
}

// GenerateFood moves the food to a random cell that does not collide with
// the snake and notifies food observers. Every open cell is equally likely.
// When no cell is open the food stays where it is and false is returned.
func (gs *GameState) GenerateFood() bool {
	p := gs.randomOpenPoint()
	if p == nil {
		gs.logger.WithFields(log.Fields{
			"Length": gs.snake.Len(),
			"Policy": gs.policy,
		}).Warn("no open cell left for food")
		return false
	}

	gs.food = p
	gs.logger.WithField("Food", *p).Debug("food generated")
	gs.emitFood()
	return true
}

func (gs *GameState) randomOpenPoint() *Point {
	openPoints := getOpenPoints(gs.width, gs.height, gs.policy, gs.snake.Body)

	if len(openPoints) == 0 {
		return nil
	}

	return openPoints[gs.intn(len(openPoints))]
}

func getOpenPoints(width, height int32, policy FoodPolicy, body []*Point) []*Point {
	candidatePoints := make([]*Point, 0, int(width)*int(height))

	for x := int32(0); x < width; x++ {
		for y := int32(0); y < height; y++ {
			p := &Point{X: x, Y: y}
			if !policy.Collides(p, body) {
				candidatePoints = append(candidatePoints, p)
			}
		}
	}

	return candidatePoints
}
