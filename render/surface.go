package render

import (
	"sync"

	termbox "github.com/nsf/termbox-go"
)

// Surface is a character cell screen the view paints onto.
type Surface interface {
	Clear(fg, bg termbox.Attribute) error
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
	Flush() error
}

// MemorySurface keeps painted cells in memory. It is used for headless runs
// and tests.
type MemorySurface struct {
	sync.RWMutex
	cells   map[[2]int]termbox.Cell
	flushes int
}

// NewMemorySurface returns an empty surface.
func NewMemorySurface() *MemorySurface {
	return &MemorySurface{cells: map[[2]int]termbox.Cell{}}
}

// Clear drops every painted cell.
func (ms *MemorySurface) Clear(fg, bg termbox.Attribute) error {
	ms.Lock()
	defer ms.Unlock()

	ms.cells = map[[2]int]termbox.Cell{}
	return nil
}

// SetCell paints a single cell.
func (ms *MemorySurface) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	ms.Lock()
	defer ms.Unlock()

	ms.cells[[2]int{x, y}] = termbox.Cell{Ch: ch, Fg: fg, Bg: bg}
}

// Flush counts the flush, nothing is displayed.
func (ms *MemorySurface) Flush() error {
	ms.Lock()
	defer ms.Unlock()

	ms.flushes++
	return nil
}

// Cell returns the painted cell at (x, y).
func (ms *MemorySurface) Cell(x, y int) (termbox.Cell, bool) {
	ms.RLock()
	defer ms.RUnlock()

	c, ok := ms.cells[[2]int{x, y}]
	return c, ok
}

// Flushes returns how many times the surface was flushed.
func (ms *MemorySurface) Flushes() int {
	ms.RLock()
	defer ms.RUnlock()

	return ms.flushes
}
