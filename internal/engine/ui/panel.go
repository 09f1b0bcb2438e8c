// Package ui provides the keyboard-driven debug panel.
//
// Each toggle is bound to a function key in registration order (F1, F2, ...)
// and its state is summarized in the window title.
package ui

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/villagewalk/internal/logger"
)

// F12 is left for screenshots.
const maxToggles = 11

// Toggle is a named boolean with a change callback.
type Toggle struct {
	Name     string
	Key      string // lower-cased key name, "f1".."f11"
	value    bool
	onChange func(bool)
}

// Value returns the current state.
func (t *Toggle) Value() bool { return t.value }

// Set updates the state and runs the callback when it changes.
func (t *Toggle) Set(v bool) {
	if t.value == v {
		return
	}
	t.value = v
	if t.onChange != nil {
		t.onChange(v)
	}
}

// Panel is an ordered set of toggles.
type Panel struct {
	toggles []*Toggle
}

// NewPanel creates an empty panel.
func NewPanel() *Panel {
	return &Panel{}
}

// AddToggle registers a toggle with an initial value. The callback is not
// run for the initial value. Re-registering a name replaces its callback
// and value but keeps its key.
func (p *Panel) AddToggle(name string, value bool, onChange func(bool)) {
	if t := p.Toggle(name); t != nil {
		t.value = value
		t.onChange = onChange
		return
	}
	if len(p.toggles) >= maxToggles {
		logger.Named("ui").Warn("no function key left for toggle", zap.String("toggle", name))
		return
	}
	p.toggles = append(p.toggles, &Toggle{
		Name:     name,
		Key:      fmt.Sprintf("f%d", len(p.toggles)+1),
		value:    value,
		onChange: onChange,
	})
}

// Toggle returns the toggle called name, or nil.
func (p *Panel) Toggle(name string) *Toggle {
	for _, t := range p.toggles {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Toggles returns the toggles in registration order.
func (p *Panel) Toggles() []*Toggle {
	out := make([]*Toggle, len(p.toggles))
	copy(out, p.toggles)
	return out
}

// HandleKey flips the toggle bound to key and reports whether one was.
func (p *Panel) HandleKey(key string) bool {
	for _, t := range p.toggles {
		if t.Key == key {
			t.Set(!t.value)
			logger.Named("ui").Debug("toggle changed",
				zap.String("toggle", t.Name),
				zap.Bool("value", t.value))
			return true
		}
	}
	return false
}

// Status summarizes every toggle, e.g. "Debug Mode [F1]: on".
func (p *Panel) Status() string {
	parts := make([]string, 0, len(p.toggles))
	for _, t := range p.toggles {
		state := "off"
		if t.value {
			state = "on"
		}
		parts = append(parts, fmt.Sprintf("%s [%s]: %s", t.Name, strings.ToUpper(t.Key), state))
	}
	return strings.Join(parts, "  ")
}
