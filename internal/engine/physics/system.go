package physics

import (
	"go.uber.org/zap"

	"github.com/Faultbox/villagewalk/internal/engine/scene"
	"github.com/Faultbox/villagewalk/internal/logger"
)

// DebugToggleName is the panel entry that shows the collider wireframe.
const DebugToggleName = "Debug Mode"

// Scene receives the debug wireframe.
type Scene interface {
	Add(obj scene.Object)
}

// Panel registers the debug toggle.
type Panel interface {
	AddToggle(name string, value bool, onChange func(bool))
}

// Config configures a System.
type Config struct {
	Gravity  Vector
	Timestep float64
	Debug    bool // wireframe enabled at Init
}

// DefaultConfig returns earth gravity, the default step and debug on.
func DefaultConfig() Config {
	return Config{
		Gravity:  Vector{Y: -9.81},
		Timestep: DefaultTimestep,
		Debug:    true,
	}
}

// System owns the session's physics world and its debug wireframe.
type System struct {
	cfg       Config
	world     *World
	wireframe *scene.LineSegments
	debug     bool
}

// NewSystem creates a system with no world; call Init before use.
func NewSystem(cfg Config) *System {
	return &System{cfg: cfg, debug: cfg.Debug}
}

// Init creates the world, adds the wireframe to sc and registers the debug
// toggle on panel. Calling it again replaces the world; bodies created in
// the previous one are orphaned.
func (s *System) Init(sc Scene, panel Panel) error {
	if s.world != nil {
		logger.Named("physics").Debug("replacing physics world")
	}

	s.world = NewWorld(s.cfg.Gravity)
	s.world.SetTimestep(s.cfg.Timestep)

	s.wireframe = scene.NewLineSegments("physics-debug")
	s.wireframe.FrustumCulled = false
	s.wireframe.Visible = s.debug

	panel.AddToggle(DebugToggleName, s.debug, s.SetDebug)
	sc.Add(s.wireframe)

	logger.Named("physics").Info("physics world ready",
		zap.Float64("gravity", s.cfg.Gravity.Y),
		zap.Float64("timestep", s.world.Timestep()))
	return nil
}

// World returns the live world, or nil before Init.
func (s *System) World() *World {
	return s.world
}

// Wireframe returns the debug line buffer, or nil before Init.
func (s *System) Wireframe() *scene.LineSegments {
	return s.wireframe
}

// Debug reports whether the wireframe is enabled.
func (s *System) Debug() bool {
	return s.debug
}

// SetDebug shows or hides the wireframe. The debug panel calls it.
func (s *System) SetDebug(enabled bool) {
	s.debug = enabled
	if s.wireframe != nil {
		s.wireframe.Visible = enabled
	}
}

// Update steps the world once. It ignores frame time: a slow frame slows
// the simulation down. With debug enabled the wireframe is rebuilt.
func (s *System) Update() {
	if s.world == nil {
		return
	}
	s.world.Step()

	if s.debug {
		buf := s.world.DebugRender()
		s.wireframe.SetGeometry(buf.Vertices, buf.Colors)
		s.wireframe.Visible = true
	}
}
