package render

import (
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

// TermboxSurface paints onto the terminal through termbox.
type TermboxSurface struct{}

// OpenTermbox initialises the terminal. The returned close function restores
// it and must be called before the process exits.
func OpenTermbox() (*TermboxSurface, func(), error) {
	if err := termbox.Init(); err != nil {
		return nil, nil, errors.Wrap(err, "unable to initialise terminal")
	}
	termbox.SetInputMode(termbox.InputEsc)
	return &TermboxSurface{}, termbox.Close, nil
}

// Clear clears the back buffer.
func (TermboxSurface) Clear(fg, bg termbox.Attribute) error {
	return termbox.Clear(fg, bg)
}

// SetCell sets a back buffer cell.
func (TermboxSurface) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

// Flush pushes the back buffer to the terminal.
func (TermboxSurface) Flush() error {
	return termbox.Flush()
}
