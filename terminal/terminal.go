// Package terminal puts the terminal in raw mode with termbox and provides the
// key poller and screen used by the game.
package terminal

import (
	"errors"

	"github.com/battlesnakeio/termsnake/controller"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
	pkgerrors "github.com/pkg/errors"
)

// ErrInputDevice is returned when the terminal can't be configured or read.
var ErrInputDevice = errors.New("terminal: input device error")

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	eventBuffer  = 16
)

// Swapped out in tests, which have no tty to init termbox on.
var (
	pollEvent    = termbox.PollEvent
	interrupt    = termbox.Interrupt
	closeTermbox = termbox.Close
)

// Terminal is a termbox backed screen and key poller.
type Terminal struct {
	events  chan termbox.Event
	stopped chan struct{}
}

// Open switches the terminal to raw mode and starts reading key events in the
// background. Close must be called to restore the terminal.
func Open() (*Terminal, error) {
	if err := termbox.Init(); err != nil {
		return nil, pkgerrors.Wrapf(ErrInputDevice, "unable to init termbox: %v", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	return start(), nil
}

func start() *Terminal {
	t := &Terminal{
		events:  make(chan termbox.Event, eventBuffer),
		stopped: make(chan struct{}),
	}
	go t.readEvents()
	return t
}

// readEvents only returns on an interrupt event, so the reader is always
// around to receive the interrupt sent by Close.
func (t *Terminal) readEvents() {
	defer close(t.stopped)
	for {
		ev := pollEvent()
		if ev.Type == termbox.EventInterrupt {
			return
		}
		select {
		case t.events <- ev:
		default:
			// drop keys nobody is reading
		}
	}
}

// Close stops the event reader and restores the terminal.
func (t *Terminal) Close() {
	interrupt()
	<-t.stopped
	closeTermbox()
}

// PollKey returns the next pending key press, if any.
func (t *Terminal) PollKey() (controller.Input, bool, error) {
	for {
		select {
		case ev := <-t.events:
			in, ok, err := toInput(ev)
			if err != nil || ok {
				return in, ok, err
			}
		default:
			return controller.Input{}, false, nil
		}
	}
}

func toInput(ev termbox.Event) (controller.Input, bool, error) {
	switch ev.Type {
	case termbox.EventError:
		return controller.Input{}, false, pkgerrors.Wrapf(ErrInputDevice, "poll failed: %v", ev.Err)
	case termbox.EventKey:
	default:
		return controller.Input{}, false, nil
	}

	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return controller.Input{Quit: true}, true, nil
	case termbox.KeyArrowUp:
		return controller.Input{Ch: 'w'}, true, nil
	case termbox.KeyArrowLeft:
		return controller.Input{Ch: 'a'}, true, nil
	case termbox.KeyArrowDown:
		return controller.Input{Ch: 's'}, true, nil
	case termbox.KeyArrowRight:
		return controller.Input{Ch: 'd'}, true, nil
	}
	if ev.Ch == 0 {
		return controller.Input{}, false, nil
	}
	return controller.Input{Ch: ev.Ch}, true, nil
}

// Clear wipes the back buffer.
func (t *Terminal) Clear() error {
	return termbox.Clear(defaultColor, bgColor)
}

// Draw writes one line per row and flushes.
func (t *Terminal) Draw(lines []string) error {
	for y, line := range lines {
		tbprint(0, y, defaultColor, bgColor, line)
	}
	return termbox.Flush()
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
