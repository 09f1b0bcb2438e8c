// Package player drives the player character: a capsule body moved by
// camera-relative input, a visual that turns toward the movement direction
// and the idle/walk/run animation blend.
package player

import (
	"go.uber.org/zap"

	"github.com/Faultbox/villagewalk/internal/assets"
	"github.com/Faultbox/villagewalk/internal/engine/animation"
	"github.com/Faultbox/villagewalk/internal/engine/input"
	"github.com/Faultbox/villagewalk/internal/engine/physics"
	"github.com/Faultbox/villagewalk/internal/engine/scene"
	"github.com/Faultbox/villagewalk/internal/logger"
	"github.com/Faultbox/villagewalk/pkg/math"
)

// Animation clip names as authored in the character model.
const (
	AnimIdle  = "idle"
	AnimWalk  = "walk"
	AnimRun   = "run"
	AnimTPose = "t-pose"
)

// NodeName names the player's scene node.
const NodeName = "player"

// FallbackColor tints the box shown when the model fails to load.
var FallbackColor = [4]float32{1, 0.42, 0.42, 1}

// Settings tunes the player.
type Settings struct {
	WalkSpeed    float32
	RunSpeed     float32
	MoveFade     float64 // seconds, into walk or run
	IdleFade     float64 // seconds, back to idle
	YawSmoothing float32 // visual yaw lerp factor per frame

	Spawn             math.Vec3
	CapsuleHalfHeight float32
	CapsuleRadius     float32
	ModelScale        float32
}

// DefaultSettings returns the demo's tuning.
func DefaultSettings() Settings {
	return Settings{
		WalkSpeed:         6,
		RunSpeed:          12,
		MoveFade:          0.2,
		IdleFade:          0.5,
		YawSmoothing:      0.1,
		Spawn:             math.Vec3{Y: 6},
		CapsuleHalfHeight: 0.5,
		CapsuleRadius:     0.5,
		ModelScale:        0.05,
	}
}

// Scene receives the player's visual.
type Scene interface {
	Add(obj scene.Object)
}

// Player owns the character's body, visual and animations.
type Player struct {
	Settings Settings

	world *physics.World
	body  *physics.RigidBody
	node  *scene.Node
	anim  *animation.Controller

	yaw     float32
	facing  float32
	forward bool
	log     *zap.Logger
}

// New creates a player with no body and no visual.
func New(s Settings) *Player {
	return &Player{Settings: s, log: logger.Named("player")}
}

// InitPhysics creates the player's capsule in world at the spawn point.
// A nil world leaves the player without a body.
func (p *Player) InitPhysics(world *physics.World) {
	if world == nil {
		return
	}
	s := p.Settings
	p.world = world
	p.body = world.CreateRigidBody(physics.DynamicBody().
		SetTranslation(float64(s.Spawn.X), float64(s.Spawn.Y), float64(s.Spawn.Z)).
		LockRotations())
	world.CreateCollider(physics.Capsule(float64(s.CapsuleHalfHeight), float64(s.CapsuleRadius)), p.body)

	p.log.Debug("player body created", zap.Int("handle", p.body.Handle()))
}

// SetModel installs the visual from a load result and adds it to sc. A
// failed load gets a plain box instead.
func (p *Player) SetModel(m *assets.Model, err error, sc Scene) {
	if err != nil || m == nil {
		p.log.Warn("player model unavailable, using fallback box", zap.Error(err))
		p.node = scene.NewBox(NodeName, math.Vec3{X: 1, Y: 1, Z: 1}, FallbackColor)
		p.node.Position = p.Settings.Spawn
		p.anim = nil
	} else {
		p.node = scene.NewNode(NodeName, m.Bounds)
		p.node.Scale = p.Settings.ModelScale
		p.node.Position = p.Settings.Spawn
		p.anim = animation.NewController(animation.NewMixer(), m.Clips)
		p.log.Info("player model ready",
			zap.String("path", m.Path),
			zap.Strings("clips", p.anim.Names()))
	}
	sc.Add(p.node)
}

// Ready reports whether the visual is in place. Update does nothing before.
func (p *Player) Ready() bool {
	return p.node != nil
}

// Update advances the player one frame. cameraAngle is the yaw that
// forward input is relative to.
func (p *Player) Update(delta float64, m input.Movement, cameraAngle float32, running bool) {
	if !p.Ready() || p.body == nil {
		return
	}

	vel := p.body.Linvel()
	p.forward = m.Forward()

	if !m.IsZero() {
		speed, clip := p.Settings.WalkSpeed, AnimWalk
		if running {
			speed, clip = p.Settings.RunSpeed, AnimRun
		}

		inputAngle := math.Atan2(m.X, m.Z)
		p.facing = math.NormalizeAngle(cameraAngle + inputAngle)
		vel.X = float64(math.Sin(p.facing) * speed)
		vel.Z = float64(math.Cos(p.facing) * speed)
		p.play(clip, p.Settings.MoveFade)
	} else {
		vel.X, vel.Z = 0, 0
		p.play(AnimIdle, p.Settings.IdleFade)
	}

	if p.anim != nil {
		p.anim.Update(delta)
	}

	p.yaw = math.LerpAngle(p.yaw, p.facing, p.Settings.YawSmoothing)
	p.body.SetLinvel(vel, true)

	pos := p.body.Translation()
	p.node.Position = math.Vec3{X: float32(pos.X), Y: float32(pos.Y), Z: float32(pos.Z)}
	p.node.Yaw = p.yaw
}

func (p *Player) play(name string, fade float64) {
	if p.anim != nil {
		p.anim.Play(name, fade)
	}
}

// Grounded casts a ray down from the body center and reports whether
// something is just below the capsule while the body is not moving
// vertically.
func (p *Player) Grounded() bool {
	if p.body == nil {
		return false
	}
	reach := float64(p.Settings.CapsuleHalfHeight+p.Settings.CapsuleRadius) + 0.1
	ray := physics.Ray{Origin: p.body.Translation(), Dir: physics.Vector{Y: -1}}

	hit, ok := p.world.CastRay(ray, reach, true, p.body)
	if !ok || hit.TimeOfImpact >= reach {
		return false
	}
	vy := p.body.Linvel().Y
	return vy > -0.5 && vy < 0.5
}

// Position returns the body position, or the spawn point without a body.
func (p *Player) Position() math.Vec3 {
	if p.body == nil {
		return p.Settings.Spawn
	}
	pos := p.body.Translation()
	return math.Vec3{X: float32(pos.X), Y: float32(pos.Y), Z: float32(pos.Z)}
}

// FacingTarget returns the yaw the visual is turning toward.
func (p *Player) FacingTarget() float32 { return p.facing }

// MovingForward reports forward input on the last Update.
func (p *Player) MovingForward() bool { return p.forward }

// Yaw returns the visual's current yaw.
func (p *Player) Yaw() float32 { return p.yaw }

// AnimationState returns the current clip name, or "" without animations.
func (p *Player) AnimationState() string {
	if p.anim == nil {
		return ""
	}
	return p.anim.Current()
}

// Animations returns the blend controller, or nil for the fallback box.
func (p *Player) Animations() *animation.Controller { return p.anim }

// Body returns the rigid body, or nil before InitPhysics.
func (p *Player) Body() *physics.RigidBody { return p.body }

// Node returns the visual, or nil before SetModel.
func (p *Player) Node() *scene.Node { return p.node }
