// Package world builds the static props around the player: the ground
// slab and the village model.
package world

import (
	"go.uber.org/zap"

	"github.com/Faultbox/villagewalk/internal/assets"
	"github.com/Faultbox/villagewalk/internal/engine/physics"
	"github.com/Faultbox/villagewalk/internal/engine/scene"
	"github.com/Faultbox/villagewalk/internal/logger"
	"github.com/Faultbox/villagewalk/pkg/math"
)

// Scene node names.
const (
	GroundName  = "ground"
	VillageName = "village"
)

// GroundColor is the slab's wireframe color.
var GroundColor = [4]float32{0.56, 0.93, 0.56, 1}

// Scene receives props.
type Scene interface {
	Add(obj scene.Object)
}

// Ground is a fixed cuboid the player stands on.
type Ground struct {
	Body     *physics.RigidBody
	Collider *physics.Collider
	Node     *scene.Node
}

// NewGround creates the slab with its top face at y = halfExtents.Y. A
// nil world skips the collider and leaves only the visual.
func NewGround(world *physics.World, sc Scene, halfExtents math.Vec3) *Ground {
	g := &Ground{
		Node: scene.NewBox(GroundName, halfExtents.Scale(2), GroundColor),
	}
	sc.Add(g.Node)

	if world == nil {
		logger.Named("world").Debug("no physics world, ground has no collider")
		return g
	}
	g.Body = world.CreateRigidBody(physics.FixedBody())
	g.Collider = world.CreateCollider(physics.Cuboid(
		float64(halfExtents.X), float64(halfExtents.Y), float64(halfExtents.Z)), g.Body)
	return g
}

// Village is the decorative town model. It has no collision.
type Village struct {
	Node  *scene.Node
	Model *assets.Model
}

// NewVillage places a loaded village model. A failed load leaves the
// world without one.
func NewVillage(m *assets.Model, err error, sc Scene, scale float32) *Village {
	log := logger.Named("world")
	if err != nil || m == nil {
		log.Warn("village unavailable", zap.Error(err))
		return nil
	}

	v := &Village{
		Node:  scene.NewNode(VillageName, m.Bounds),
		Model: m,
	}
	v.Node.Scale = scale
	v.Node.Color = [4]float32{0.8, 0.7, 0.55, 1}
	sc.Add(v.Node)

	log.Info("village placed",
		zap.String("path", m.Path),
		zap.Int("nodes", m.Nodes),
		zap.Float32("scale", scale))
	log.Debug("village collision generation not implemented; walking through buildings")
	return v
}
