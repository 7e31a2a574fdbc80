// Package input turns key presses into direction changes and pause/resume
// toggles for a running game.
package input

import "github.com/battlesnakeio/snake/rules"

// Key codes understood by the adapter.
const (
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeySpace      = "Space"
	// KeyEscape is never handled by the adapter, the session uses it to quit.
	KeyEscape = "Escape"
)

var directions = map[string]rules.Direction{
	KeyArrowRight: rules.DirectionRight,
	KeyArrowLeft:  rules.DirectionLeft,
	KeyArrowUp:    rules.DirectionUp,
	KeyArrowDown:  rules.DirectionDown,
}

// Command is the effect of a single key press.
type Command struct {
	// Direction is set for arrow keys.
	Direction rules.Direction
	// Toggle is set for the pause key.
	Toggle bool
}

// Parse maps a key code to a command. Codes other than the arrows and space
// are reported as not ok.
func Parse(code string) (Command, bool) {
	if code == KeySpace {
		return Command{Toggle: true}, true
	}
	if d, ok := directions[code]; ok {
		return Command{Direction: d}, true
	}
	return Command{}, false
}
