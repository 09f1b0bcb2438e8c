// Package animation plays named skeletal clips and cross-fades between them.
//
// Pose sampling is left to the renderer. The mixer only tracks, per clip,
// the playback time and blend weight on a shared clock.
package animation

import "math"

// LoopMode selects what happens when an action reaches the end of its clip.
type LoopMode int

const (
	// LoopRepeat wraps back to the start.
	LoopRepeat LoopMode = iota
	// LoopOnce plays a single pass and then finishes.
	LoopOnce
)

// Clip is the playback-relevant part of an authored animation.
type Clip struct {
	Name     string
	Duration float64 // seconds
}

// fade ramps the weight factor linearly on the mixer clock.
type fade struct {
	start, end float64
	from, to   float64
}

// Action is the playback state of one clip on one mixer.
type Action struct {
	mixer *Mixer
	clip  Clip

	time    float64
	weight  float64
	factor  float64 // current fade factor, multiplied into weight
	fading  *fade
	enabled bool
	running bool
	paused  bool

	loop        LoopMode
	repetitions int // 0 means unbounded
	loopCount   int
	clamp       bool
	finished    bool
}

// Clip returns the clip this action plays.
func (a *Action) Clip() Clip { return a.clip }

// Time returns the local playback time in seconds.
func (a *Action) Time() float64 { return a.time }

// Weight returns the effective blend weight in [0, 1].
func (a *Action) Weight() float64 {
	if !a.enabled || !a.running {
		return 0
	}
	return a.weight * a.factor
}

// IsRunning reports whether the action is scheduled and contributing.
func (a *Action) IsRunning() bool { return a.running && a.enabled }

// Finished reports whether a LoopOnce action (or a bounded repeat) completed.
func (a *Action) Finished() bool { return a.finished }

// Reset rewinds to the start and clears fade and finish state.
func (a *Action) Reset() *Action {
	a.time = 0
	a.enabled = true
	a.paused = false
	a.finished = false
	a.loopCount = 0
	a.fading = nil
	a.factor = 1
	return a
}

// Play schedules the action on its mixer.
func (a *Action) Play() *Action {
	a.mixer.activate(a)
	return a
}

// Stop unschedules the action and rewinds it.
func (a *Action) Stop() *Action {
	a.mixer.deactivate(a)
	return a.Reset()
}

// FadeIn ramps the weight from 0 to 1 over duration seconds of mixer time.
func (a *Action) FadeIn(duration float64) *Action {
	return a.scheduleFade(duration, 0, 1)
}

// FadeOut ramps the weight from its current value to 0 over duration
// seconds, then the action stops contributing.
func (a *Action) FadeOut(duration float64) *Action {
	return a.scheduleFade(duration, a.factor, 0)
}

// SetLoop sets the loop mode. repetitions bounds LoopRepeat; 0 is unbounded.
func (a *Action) SetLoop(mode LoopMode, repetitions int) *Action {
	a.loop = mode
	a.repetitions = repetitions
	return a
}

// SetClampWhenFinished holds the last pose instead of disabling the action
// when a single pass completes.
func (a *Action) SetClampWhenFinished(clamp bool) *Action {
	a.clamp = clamp
	return a
}

func (a *Action) scheduleFade(duration, from, to float64) *Action {
	now := a.mixer.time
	if duration <= 0 {
		a.fading = nil
		a.factor = to
		if to == 0 {
			a.disable()
		}
		return a
	}
	a.fading = &fade{start: now, end: now + duration, from: from, to: to}
	a.factor = from
	return a
}

func (a *Action) disable() {
	a.enabled = false
	a.mixer.deactivate(a)
}

// update advances playback to mixer time now.
func (a *Action) update(now, dt float64) {
	if f := a.fading; f != nil {
		if now >= f.end {
			a.factor = f.to
			a.fading = nil
			if f.to == 0 {
				a.disable()
				return
			}
		} else {
			a.factor = f.from + (f.to-f.from)*(now-f.start)/(f.end-f.start)
		}
	}

	if a.paused || !a.enabled {
		return
	}
	a.advance(dt)
}

func (a *Action) advance(dt float64) {
	d := a.clip.Duration
	a.time += dt
	if d <= 0 || a.time < d {
		return
	}

	switch a.loop {
	case LoopOnce:
		a.finish()
	default:
		passes := math.Floor(a.time / d)
		a.loopCount += int(passes)
		if a.repetitions > 0 && a.loopCount >= a.repetitions {
			a.finish()
			return
		}
		a.time -= passes * d
	}
}

func (a *Action) finish() {
	a.finished = true
	if a.clamp {
		a.time = a.clip.Duration
		a.paused = true
	} else {
		a.time = 0
		a.disable()
	}
	a.mixer.emitFinished(a)
}

// Mixer owns the clock shared by all actions of one model.
type Mixer struct {
	time       float64
	actions    map[string]*Action
	active     []*Action
	onFinished []func(*Action)
}

// NewMixer creates an empty mixer.
func NewMixer() *Mixer {
	return &Mixer{actions: make(map[string]*Action)}
}

// ClipAction returns the action for clip, creating it on first use.
// Actions are cached by clip name.
func (m *Mixer) ClipAction(clip Clip) *Action {
	if a, ok := m.actions[clip.Name]; ok {
		return a
	}
	a := &Action{
		mixer:   m,
		clip:    clip,
		weight:  1,
		factor:  1,
		enabled: true,
	}
	m.actions[clip.Name] = a
	return a
}

// OnFinished registers fn to run when an action completes its last pass.
func (m *Mixer) OnFinished(fn func(*Action)) {
	m.onFinished = append(m.onFinished, fn)
}

// Time returns the mixer clock in seconds.
func (m *Mixer) Time() float64 { return m.time }

// Active returns the actions currently scheduled.
func (m *Mixer) Active() []*Action {
	out := make([]*Action, len(m.active))
	copy(out, m.active)
	return out
}

// Update advances the clock and every scheduled action by dt seconds.
func (m *Mixer) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	m.time += dt
	for _, a := range m.Active() {
		a.update(m.time, dt)
	}
}

func (m *Mixer) activate(a *Action) {
	if a.running {
		return
	}
	a.running = true
	m.active = append(m.active, a)
}

func (m *Mixer) deactivate(a *Action) {
	if !a.running {
		return
	}
	a.running = false
	for i, other := range m.active {
		if other == a {
			m.active = append(m.active[:i], m.active[i+1:]...)
			break
		}
	}
}

func (m *Mixer) emitFinished(a *Action) {
	for _, fn := range m.onFinished {
		fn(a)
	}
}
