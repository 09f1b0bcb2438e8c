// Package input handles SDL2 input events and keyboard state.
package input

import (
	"strings"

	"github.com/veandco/go-sdl2/sdl"
)

// EventType is the kind of a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventFocusLost
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    string // lower-cased SDL key name
	Width  int
	Height int
}

// Input pumps SDL events into a Keyboard.
type Input struct {
	events   []Event
	keyboard *Keyboard
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events:   make([]Event, 0, 16),
		keyboard: NewKeyboard(),
	}
}

// Keyboard returns the held-key state.
func (i *Input) Keyboard() *Keyboard {
	return i.keyboard
}

// Update polls SDL events and applies them to the keyboard.
// Returns true if the window was asked to close.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_RESIZED:
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			case sdl.WINDOWEVENT_FOCUS_LOST:
				i.keyboard.Clear()
				i.events = append(i.events, Event{Type: EventFocusLost})
			}

		case *sdl.KeyboardEvent:
			key := KeyName(e.Keysym.Sym)
			if e.Type == sdl.KEYDOWN {
				i.keyboard.Press(key)
				if e.Repeat == 0 {
					i.events = append(i.events, Event{Type: EventKeyDown, Key: key})
				}
			} else if e.Type == sdl.KEYUP {
				i.keyboard.Release(key)
				i.events = append(i.events, Event{Type: EventKeyUp, Key: key})
			}
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// KeyName returns the lower-cased SDL name of a keycode, e.g. "left shift".
func KeyName(code sdl.Keycode) string {
	return strings.ToLower(sdl.GetKeyName(code))
}
