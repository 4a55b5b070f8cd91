package controller

import "github.com/battlesnakeio/termsnake/rules"

// Input is a single key event from the player.
type Input struct {
	Ch   rune
	Quit bool
}

// KeyPoller returns the next buffered key without blocking. ok is false when
// no key is pending.
type KeyPoller interface {
	PollKey() (in Input, ok bool, err error)
}

var keyDirections = map[rune]rules.Direction{
	'w': rules.Up,
	'a': rules.Left,
	's': rules.Down,
	'd': rules.Right,
}

// directionFor maps a movement key to a heading.
func directionFor(ch rune) (rules.Direction, bool) {
	d, ok := keyDirections[ch]
	return d, ok
}

// NoInput never has a key pending.
type NoInput struct{}

// PollKey implements KeyPoller.
func (NoInput) PollKey() (Input, bool, error) { return Input{}, false, nil }
