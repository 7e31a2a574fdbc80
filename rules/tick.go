package rules

import (
	log "github.com/sirupsen/logrus"
)

// Step runs the game one tick:
//   1. move the head one cell in the current direction
//   2. wrap the head around the board edges
//   3. drop the tail, unless the head landed on the food in which case the
//      tail stays, the snake grows by one and new food is generated
//   4. notify snake observers
func (gs *GameState) Step() {
	gs.snake.Move(gs.direction)

	head := gs.snake.Head()
	head.wrap(gs.width, gs.height)

	tail := gs.snake.popTail()

	entry := gs.logger.WithFields(log.Fields{
		"Head":      *head,
		"Direction": gs.direction,
	})

	if head.Equals(gs.food) {
		gs.snake.Body = append(gs.snake.Body, tail)
		entry.WithFields(log.Fields{
			"Food":   *gs.food,
			"Length": gs.snake.Len(),
		}).Debug("snake ate")
		gs.GenerateFood()
	}

	entry.Debug("snake moved")
	gs.emitSnake()
}
