// Package camera provides the third-person follow camera.
package camera

import (
	"github.com/Faultbox/villagewalk/pkg/math"
)

// FollowTarget is what the camera tracks each frame.
type FollowTarget interface {
	Position() math.Vec3
	// FacingTarget is the yaw the target is turning toward.
	FacingTarget() float32
	// MovingForward reports forward intent (movement Z < 0).
	MovingForward() bool
}

// Settings tunes a FollowCamera.
type Settings struct {
	Distance           float32 // horizontal orbit radius
	Height             float32 // height above the target
	LookAtHeight       float32
	PositionSmoothness float32 // X/Z lerp factor per update
	OrbitSmoothness    float32 // orbit angle lerp factor per update

	FOV       float32 // vertical, degrees
	Near, Far float32
}

// DefaultSettings returns the demo's camera tuning.
func DefaultSettings() Settings {
	return Settings{
		Distance:           15,
		Height:             8,
		LookAtHeight:       1,
		PositionSmoothness: 0.6,
		OrbitSmoothness:    0.01,
		FOV:                50,
		Near:               0.1,
		Far:                1000,
	}
}

// FollowCamera orbits a target at fixed distance and height. The orbit
// angle only swings behind the target while it moves forward, so strafing
// and walking backwards leave the camera where it is.
type FollowCamera struct {
	Settings Settings

	orbit    float32
	position math.Vec3
	lookAt   math.Vec3
}

// NewFollowCamera creates a camera at start with orbit angle 0.
func NewFollowCamera(s Settings, start math.Vec3) *FollowCamera {
	return &FollowCamera{Settings: s, position: start}
}

// Update advances the camera one frame toward target.
func (c *FollowCamera) Update(target FollowTarget) {
	if target.MovingForward() {
		c.orbit = math.LerpAngle(c.orbit, target.FacingTarget()+math.Pi, c.Settings.OrbitSmoothness)
	}

	p := target.Position()
	want := c.desired(p)
	k := c.Settings.PositionSmoothness

	c.position.X += (want.X - c.position.X) * k
	c.position.Z += (want.Z - c.position.Z) * k
	c.position.Y = want.Y

	c.lookAt = math.Vec3{X: p.X, Y: p.Y + c.Settings.LookAtHeight, Z: p.Z}
}

// SnapTo places the camera on its orbit target without smoothing.
func (c *FollowCamera) SnapTo(target FollowTarget) {
	p := target.Position()
	c.position = c.desired(p)
	c.lookAt = math.Vec3{X: p.X, Y: p.Y + c.Settings.LookAtHeight, Z: p.Z}
}

func (c *FollowCamera) desired(p math.Vec3) math.Vec3 {
	return math.Vec3{
		X: p.X + math.Sin(c.orbit)*c.Settings.Distance,
		Y: p.Y + c.Settings.Height,
		Z: p.Z + math.Cos(c.orbit)*c.Settings.Distance,
	}
}

// Orbit returns the orbit angle in radians.
func (c *FollowCamera) Orbit() float32 { return c.orbit }

// SetOrbit sets the orbit angle.
func (c *FollowCamera) SetOrbit(angle float32) { c.orbit = math.NormalizeAngle(angle) }

// Position returns the camera position.
func (c *FollowCamera) Position() math.Vec3 { return c.position }

// LookAt returns the point the camera looks at.
func (c *FollowCamera) LookAt() math.Vec3 { return c.lookAt }

// ViewMatrix returns the view matrix.
func (c *FollowCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.position, c.lookAt, math.Vec3{Y: 1})
}

// ProjectionMatrix returns the perspective projection for aspect.
func (c *FollowCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(c.Settings.FOV*math.Pi/180, aspect, c.Settings.Near, c.Settings.Far)
}
