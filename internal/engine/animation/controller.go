package animation

import (
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/villagewalk/internal/logger"
)

// DefaultFade is the cross-fade used when callers have no preference.
const DefaultFade = 0.2

// Controller switches one model between named clips.
// At most one action is current; the one it replaced fades out on its own.
type Controller struct {
	mixer   *Mixer
	actions map[string]*Action
	current *Action
	missing map[string]bool
}

// NewController binds every clip to an action on mixer, keyed by clip name
// exactly as authored.
func NewController(mixer *Mixer, clips []Clip) *Controller {
	c := &Controller{
		mixer:   mixer,
		actions: make(map[string]*Action, len(clips)),
		missing: make(map[string]bool),
	}
	for _, clip := range clips {
		c.actions[clip.Name] = mixer.ClipAction(clip)
	}
	return c
}

// Play cross-fades to name over fade seconds. Unknown names and the clip
// already playing are ignored.
func (c *Controller) Play(name string, fade float64) {
	next, ok := c.lookup(name)
	if !ok || next == c.current {
		return
	}

	next.Reset().FadeIn(fade).Play()
	if c.current != nil {
		c.current.FadeOut(fade)
	}
	c.current = next
}

// PlayOneShot plays name once and holds its last pose. Nothing returns the
// model to another clip afterwards; subscribe to Mixer.OnFinished for that.
func (c *Controller) PlayOneShot(name string, fade float64) {
	a, ok := c.lookup(name)
	if !ok {
		return
	}
	a.SetLoop(LoopOnce, 1).SetClampWhenFinished(true)
	c.Play(name, fade)
}

// Update advances the mixer. Call once per frame.
func (c *Controller) Update(delta float64) {
	c.mixer.Update(delta)
}

// Current returns the name of the current clip, or "" before the first Play.
func (c *Controller) Current() string {
	if c.current == nil {
		return ""
	}
	return c.current.clip.Name
}

// Has reports whether a clip called name was bound.
func (c *Controller) Has(name string) bool {
	_, ok := c.actions[name]
	return ok
}

// Names returns the bound clip names in sorted order.
func (c *Controller) Names() []string {
	names := make([]string, 0, len(c.actions))
	for name := range c.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Action returns the action bound to name, or nil.
func (c *Controller) Action(name string) *Action {
	return c.actions[name]
}

// Mixer returns the mixer driving this controller.
func (c *Controller) Mixer() *Mixer {
	return c.mixer
}

func (c *Controller) lookup(name string) (*Action, bool) {
	a, ok := c.actions[name]
	if !ok && !c.missing[name] {
		c.missing[name] = true
		logger.Named("animation").Debug("clip not found", zap.String("clip", name))
	}
	return a, ok
}
