package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/villagewalk/internal/assets"
	"github.com/Faultbox/villagewalk/internal/config"
	"github.com/Faultbox/villagewalk/internal/engine/camera"
	"github.com/Faultbox/villagewalk/internal/engine/input"
	"github.com/Faultbox/villagewalk/internal/engine/physics"
	"github.com/Faultbox/villagewalk/internal/engine/scene"
	"github.com/Faultbox/villagewalk/internal/engine/ui"
	"github.com/Faultbox/villagewalk/internal/game/player"
	"github.com/Faultbox/villagewalk/internal/game/world"
	"github.com/Faultbox/villagewalk/internal/logger"
	"github.com/Faultbox/villagewalk/pkg/math"
)

// Loader loads models asynchronously; see assets.Loader.
type Loader interface {
	Load(path string, fn assets.LoadFunc)
	Poll() int
	Progress() int
}

// Session is one run of the demo: the scene, the physics world, the
// player and the camera, advanced together once per frame.
type Session struct {
	Scene   *scene.Scene
	Panel   *ui.Panel
	Physics *physics.System
	Player  *player.Player
	Camera  *camera.FollowCamera
	Ground  *world.Ground
	Village *world.Village

	cfg    *config.Config
	loader Loader
	ready  Readiness
	log    *zap.Logger
}

// NewSession wires the session's components from cfg. Nothing is loaded
// until Start.
func NewSession(cfg *config.Config, loader Loader) *Session {
	return &Session{
		Scene:   scene.New(),
		Panel:   ui.NewPanel(),
		Physics: physics.NewSystem(physicsConfig(cfg)),
		Player:  player.New(playerSettings(cfg)),
		Camera:  camera.NewFollowCamera(cameraSettings(cfg), vec3(cfg.Camera.Start)),
		cfg:     cfg,
		loader:  loader,
		log:     logger.Named("game"),
	}
}

// Start runs the startup sequence: physics and ground now, then the
// player model, then the village. Each load begins when the previous one
// has been delivered by the loader.
func (s *Session) Start() error {
	if err := s.Physics.Init(s.Scene, s.Panel); err != nil {
		return fmt.Errorf("initializing physics: %w", err)
	}
	s.Ground = world.NewGround(s.Physics.World(), s.Scene, vec3(s.cfg.World.GroundHalfExtents))
	s.ready |= ReadyPhysics

	s.loader.Load(s.cfg.Player.Model, s.onPlayerModel)
	return nil
}

func (s *Session) onPlayerModel(m *assets.Model, err error) {
	s.Player.SetModel(m, err, s.Scene)
	s.Player.InitPhysics(s.Physics.World())
	s.ready |= ReadyPlayer
	s.log.Info("player ready", zap.Stringer("readiness", s.ready))

	s.loader.Load(s.cfg.World.Village, s.onVillageModel)
}

func (s *Session) onVillageModel(m *assets.Model, err error) {
	s.Village = world.NewVillage(m, err, s.Scene, s.cfg.World.VillageScale)
	s.ready |= ReadyVillage
	s.log.Info("world ready", zap.Stringer("readiness", s.ready))
}

// Readiness returns the completed startup steps.
func (s *Session) Readiness() Readiness {
	return s.ready
}

// Frame advances the session by delta seconds: deliver finished loads,
// step physics, move the player, then follow it with the camera.
func (s *Session) Frame(delta float64, keys *input.Keyboard) {
	s.loader.Poll()

	if !s.ready.Has(ReadyPhysics) {
		return
	}
	s.Physics.Update()

	if !s.ready.Has(ReadyPlayer) {
		return
	}
	s.Player.Update(delta, keys.Movement(), s.Camera.Orbit(), keys.Running())
	s.Camera.Update(s.Player)
}

// ApplyTuning takes over the tuning values of cfg. Spawn point, capsule
// and asset paths only apply to a new session.
func (s *Session) ApplyTuning(cfg *config.Config) {
	ps := playerSettings(cfg)
	cur := s.Player.Settings
	cur.WalkSpeed, cur.RunSpeed = ps.WalkSpeed, ps.RunSpeed
	cur.MoveFade, cur.IdleFade = ps.MoveFade, ps.IdleFade
	cur.YawSmoothing = ps.YawSmoothing
	s.Player.Settings = cur

	s.Camera.Settings = cameraSettings(cfg)
	s.cfg.Player = cfg.Player
	s.cfg.Camera = cfg.Camera

	s.log.Info("tuning reloaded",
		zap.Float32("walk_speed", cur.WalkSpeed),
		zap.Float32("run_speed", cur.RunSpeed),
		zap.Float32("camera_distance", s.Camera.Settings.Distance))
}

// Status is a one-line summary for the window title.
func (s *Session) Status() string {
	if !s.ready.Has(ReadyPlayer) {
		return fmt.Sprintf("loading %d%%", s.loader.Progress())
	}
	anim := s.Player.AnimationState()
	if anim == "" {
		anim = "-"
	}
	return fmt.Sprintf("anim %s  grounded %v  %s", anim, s.Player.Grounded(), s.Panel.Status())
}

func physicsConfig(cfg *config.Config) physics.Config {
	g := cfg.Physics.Gravity
	return physics.Config{
		Gravity:  physics.Vector{X: float64(g.X), Y: float64(g.Y), Z: float64(g.Z)},
		Timestep: cfg.Physics.Timestep,
		Debug:    cfg.Physics.Debug,
	}
}

func playerSettings(cfg *config.Config) player.Settings {
	p := cfg.Player
	return player.Settings{
		WalkSpeed:         p.WalkSpeed,
		RunSpeed:          p.RunSpeed,
		MoveFade:          p.MoveFade,
		IdleFade:          p.IdleFade,
		YawSmoothing:      p.YawSmoothing,
		Spawn:             vec3(p.Spawn),
		CapsuleHalfHeight: p.CapsuleHalfHeight,
		CapsuleRadius:     p.CapsuleRadius,
		ModelScale:        p.ModelScale,
	}
}

func cameraSettings(cfg *config.Config) camera.Settings {
	c := cfg.Camera
	return camera.Settings{
		Distance:           c.Distance,
		Height:             c.Height,
		LookAtHeight:       c.LookAtHeight,
		PositionSmoothness: c.PositionSmoothness,
		OrbitSmoothness:    c.OrbitSmoothness,
		FOV:                c.FOV,
		Near:               c.Near,
		Far:                c.Far,
	}
}

func vec3(v config.Vec3) math.Vec3 {
	return math.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}
