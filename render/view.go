// Package render draws the game board. The view keeps a marker grid in sync
// with game notifications and paints it onto a Surface; it holds no game
// logic of its own.
package render

import (
	"math/rand"

	"github.com/battlesnakeio/snake/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	headColor    = termbox.ColorYellow

	// cellWidth is the number of terminal columns per board cell, two keeps
	// the board roughly square and leaves room for wide food runes.
	cellWidth = 2
	left      = 2
	top       = 1
)

var foodRunes = []rune{
	'🍒',
	'🍍',
	'🍑',
	'🍇',
	'🍏',
	'🍌',
	'🍫',
	'🍭',
	'🍕',
	'🍩',
	'🍗',
	'🍖',
	'🍬',
	'🍤',
	'🍪',
}

// View renders snake and food positions onto a surface.
type View struct {
	Title string

	grid    *Grid
	surface Surface
	status  string

	snakeCells []rules.Point
	foodCell   *rules.Point
	foods      map[rules.Point]rune
	intn       func(int) int
}

// NewView returns a view of width x height cells painting onto surface.
func NewView(surface Surface, width, height int) *View {
	return &View{
		Title:   "Snake",
		grid:    NewGrid(width, height),
		surface: surface,
		foods:   map[rules.Point]rune{},
		intn:    rand.Intn,
	}
}

// Grid exposes the marker grid.
func (v *View) Grid() *Grid { return v.grid }

// Attach subscribes the view to gs and renders its current snake and food.
func (v *View) Attach(gs *rules.GameState) {
	gs.OnSnakeMove(v.RenderSnake)
	gs.OnFoodGenerated(v.RenderFood)

	v.RenderSnake(gs.Snake())
	v.RenderFood(gs.Food())
}

// RenderSnake clears the previous snake markers and marks snake, head first.
func (v *View) RenderSnake(snake []rules.Point) {
	for _, p := range v.snakeCells {
		v.grid.Remove(int(p.X), int(p.Y), MarkerBody|MarkerHead)
	}
	v.snakeCells = v.snakeCells[:0]

	for _, p := range snake {
		if v.grid.Add(int(p.X), int(p.Y), MarkerBody) {
			v.snakeCells = append(v.snakeCells, p)
		}
	}

	if len(snake) > 0 {
		v.grid.Add(int(snake[0].X), int(snake[0].Y), MarkerHead)
	}
}

// RenderFood moves the food marker to food. Food outside the visible grid
// only clears the old marker.
func (v *View) RenderFood(food rules.Point) {
	if v.foodCell != nil {
		v.grid.Remove(int(v.foodCell.X), int(v.foodCell.Y), MarkerFood)
		v.foodCell = nil
	}

	if v.grid.Add(int(food.X), int(food.Y), MarkerFood) {
		v.foodCell = &food
	}
}

// SetStatus sets the line printed under the board.
func (v *View) SetStatus(status string) {
	v.status = status
}

// Draw paints the whole board and flushes the surface.
func (v *View) Draw() error {
	if err := v.surface.Clear(defaultColor, bgColor); err != nil {
		return err
	}

	bottom := top + v.grid.Height() + 1
	v.tbprint(left-1, top-1, defaultColor, bgColor, v.Title)
	v.drawBoard(bottom)

	for y := 0; y < v.grid.Height(); y++ {
		for x := 0; x < v.grid.Width(); x++ {
			v.drawCell(x, y)
		}
	}

	v.tbprint(left-1, bottom+1, defaultColor, bgColor, v.status)
	return v.surface.Flush()
}

// CellOrigin returns the screen position of the first column of cell (x, y).
func CellOrigin(x, y int) (int, int) {
	return left + x*cellWidth, top + 1 + y
}

func (v *View) drawCell(x, y int) {
	sx, sy := CellOrigin(x, y)
	m := v.grid.Markers(x, y)

	switch {
	case m&MarkerHead != 0:
		v.fill(sx, sy, cellWidth, 1, termbox.Cell{Ch: ' ', Fg: headColor, Bg: headColor})
	case m&MarkerBody != 0:
		v.fill(sx, sy, cellWidth, 1, termbox.Cell{Ch: ' ', Fg: snakeColor, Bg: snakeColor})
	case m&MarkerFood != 0:
		r := v.foodRune(rules.Point{X: int32(x), Y: int32(y)})
		v.surface.SetCell(sx, sy, r, defaultColor, bgColor)
		for i := runewidth.RuneWidth(r); i < cellWidth; i++ {
			v.surface.SetCell(sx+i, sy, ' ', defaultColor, bgColor)
		}
	}
}

func (v *View) foodRune(p rules.Point) rune {
	r, ok := v.foods[p]
	if !ok {
		r = foodRunes[v.intn(len(foodRunes))]
		v.foods[p] = r
	}
	return r
}

func (v *View) drawBoard(bottom int) {
	right := left + v.grid.Width()*cellWidth
	for i := top + 1; i < bottom; i++ {
		v.surface.SetCell(left-1, i, '│', defaultColor, bgColor)
		v.surface.SetCell(right, i, '│', defaultColor, bgColor)
	}

	v.surface.SetCell(left-1, top, '┌', defaultColor, bgColor)
	v.surface.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	v.surface.SetCell(right, top, '┐', defaultColor, bgColor)
	v.surface.SetCell(right, bottom, '┘', defaultColor, bgColor)

	v.fill(left, top, v.grid.Width()*cellWidth, 1, termbox.Cell{Ch: '─'})
	v.fill(left, bottom, v.grid.Width()*cellWidth, 1, termbox.Cell{Ch: '─'})
}

func (v *View) fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			v.surface.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func (v *View) tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		v.surface.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
