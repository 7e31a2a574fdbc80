package input

import termbox "github.com/nsf/termbox-go"

// FromTermbox translates a termbox key event into a key code. Non key events
// and keys without a code are reported as not ok.
func FromTermbox(ev termbox.Event) (string, bool) {
	if ev.Type != termbox.EventKey {
		return "", false
	}

	switch ev.Key {
	case termbox.KeyArrowRight:
		return KeyArrowRight, true
	case termbox.KeyArrowLeft:
		return KeyArrowLeft, true
	case termbox.KeyArrowUp:
		return KeyArrowUp, true
	case termbox.KeyArrowDown:
		return KeyArrowDown, true
	case termbox.KeySpace:
		return KeySpace, true
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return KeyEscape, true
	}

	switch ev.Ch {
	case ' ':
		return KeySpace, true
	case 'q', 'Q':
		return KeyEscape, true
	case 0:
		return "", false
	}
	return string(ev.Ch), true
}

// PollEvents feeds translated key codes from termbox into a channel until
// stop is closed. Termbox must be initialised.
func PollEvents(stop <-chan struct{}) <-chan string {
	keys := make(chan string)
	go func() {
		for {
			code, ok := FromTermbox(termbox.PollEvent())
			if !ok {
				continue
			}
			select {
			case keys <- code:
			case <-stop:
				return
			}
		}
	}()
	return keys
}
