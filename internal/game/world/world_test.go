package world

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/villagewalk/internal/assets"
	"github.com/Faultbox/villagewalk/internal/engine/physics"
	"github.com/Faultbox/villagewalk/internal/engine/scene"
	"github.com/Faultbox/villagewalk/internal/logger"
	"github.com/Faultbox/villagewalk/pkg/math"
)

var groundHalf = math.Vec3{X: 59, Y: 0.1, Z: 46}

func TestNewGround(t *testing.T) {
	w := physics.NewWorld(physics.Vector{Y: -9.81})
	sc := scene.New()

	g := NewGround(w, sc, groundHalf)

	if !g.Body.IsFixed() {
		t.Error("ground body is not fixed")
	}
	he := g.Collider.HalfExtents()
	if he.X != 59 || he.Z != 46 || float32(he.Y) != 0.1 {
		t.Errorf("half extents = %v", he)
	}
	if sc.Find(GroundName) != g.Node {
		t.Error("ground node not in scene")
	}
	if size := g.Node.Bounds.Size(); size != (math.Vec3{X: 118, Y: 0.2, Z: 92}) {
		t.Errorf("node size = %v", size)
	}
}

func TestGroundHoldsABody(t *testing.T) {
	w := physics.NewWorld(physics.Vector{Y: -9.81})
	NewGround(w, scene.New(), groundHalf)

	body := w.CreateRigidBody(physics.DynamicBody().SetTranslation(10, 3, -10))
	w.CreateCollider(physics.Capsule(0.5, 0.5), body)
	for i := 0; i < 180; i++ {
		w.Step()
	}

	if y := body.Translation().Y; y < 1.09 || y > 1.11 {
		t.Errorf("body rests at y = %v, want 1.1", y)
	}
}

func TestNewGroundWithoutWorld(t *testing.T) {
	sc := scene.New()
	g := NewGround(nil, sc, groundHalf)

	if g.Body != nil || g.Collider != nil {
		t.Error("collider created without a world")
	}
	if sc.Find(GroundName) == nil {
		t.Error("ground visual missing")
	}
}

func TestNewVillage(t *testing.T) {
	sc := scene.New()
	m := &assets.Model{Path: "models/medieval_village.glb", Nodes: 12}

	v := NewVillage(m, nil, sc, 0.1)

	if v == nil || sc.Find(VillageName) != v.Node {
		t.Fatal("village not placed")
	}
	if v.Node.Scale != 0.1 {
		t.Errorf("Scale = %v, want 0.1", v.Node.Scale)
	}
}

func TestNewVillageLoadFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger.SetLogger(zap.New(core))
	defer logger.SetLogger(zap.NewNop())

	sc := scene.New()
	if v := NewVillage(nil, errors.New("not found"), sc, 0.1); v != nil {
		t.Fatal("village placed after a failed load")
	}
	if len(sc.Objects()) != 0 {
		t.Error("scene should stay empty")
	}
	if logs.FilterMessage("village unavailable").Len() != 1 {
		t.Error("expected a warning")
	}
}
