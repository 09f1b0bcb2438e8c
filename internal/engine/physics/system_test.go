package physics

import (
	"testing"

	"github.com/Faultbox/villagewalk/internal/engine/scene"
	"github.com/Faultbox/villagewalk/internal/engine/ui"
)

func TestUpdateBeforeInitIsNoOp(t *testing.T) {
	s := NewSystem(DefaultConfig())
	if s.World() != nil {
		t.Fatal("World() should be nil before Init")
	}
	s.Update()
}

func TestInitRegistersWireframeAndToggle(t *testing.T) {
	sc := scene.New()
	panel := ui.NewPanel()
	s := NewSystem(DefaultConfig())

	if err := s.Init(sc, panel); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if s.World() == nil {
		t.Fatal("World() is nil after Init")
	}
	if g := s.World().Gravity(); g != (Vector{Y: -9.81}) {
		t.Errorf("gravity = %v", g)
	}

	wire := s.Wireframe()
	if sc.Find("physics-debug") != wire {
		t.Error("wireframe not added to the scene")
	}
	if wire.FrustumCulled {
		t.Error("wireframe must not be frustum culled")
	}
	tg := panel.Toggle(DebugToggleName)
	if tg == nil || !tg.Value() {
		t.Fatal("debug toggle missing or off")
	}
}

func TestUpdateUploadsDebugBuffers(t *testing.T) {
	sc := scene.New()
	panel := ui.NewPanel()
	s := NewSystem(DefaultConfig())
	_ = s.Init(sc, panel)

	w := s.World()
	w.CreateCollider(Cuboid(59, 0.1, 46), w.CreateRigidBody(FixedBody()))
	addCapsule(w, 0, 6, 0)

	s.Update()
	verts, colors, version := s.Wireframe().Geometry()
	if len(verts) == 0 {
		t.Fatal("no debug vertices uploaded")
	}
	if len(colors)/4 != len(verts)/3 {
		t.Errorf("colors for %d vertices, want %d", len(colors)/4, len(verts)/3)
	}

	// Toggling off hides the wireframe and stops uploads.
	panel.HandleKey("f1")
	if s.Wireframe().Visible {
		t.Error("wireframe visible after toggling debug off")
	}
	s.Update()
	if _, _, v := s.Wireframe().Geometry(); v != version {
		t.Error("geometry uploaded with debug off")
	}

	panel.HandleKey("f1")
	s.Update()
	if !s.Wireframe().Visible {
		t.Error("wireframe hidden after toggling debug on")
	}
}

func TestUpdateStepsOncePerCall(t *testing.T) {
	s := NewSystem(DefaultConfig())
	_ = s.Init(scene.New(), ui.NewPanel())
	body := s.World().CreateRigidBody(DynamicBody().SetTranslation(0, 10, 0))

	s.Update()
	s.Update()

	approxEqual(t, body.Linvel().Y, -9.81*2*DefaultTimestep, 1e-12, "velocity.y")
}

func TestInitTwiceReplacesWorld(t *testing.T) {
	sc := scene.New()
	panel := ui.NewPanel()
	s := NewSystem(DefaultConfig())

	_ = s.Init(sc, panel)
	first := s.World()
	first.CreateRigidBody(DynamicBody())

	_ = s.Init(sc, panel)
	if s.World() == first {
		t.Fatal("second Init should create a new world")
	}
	if n := len(s.World().Bodies()); n != 0 {
		t.Errorf("new world has %d bodies, want 0", n)
	}
	if n := len(panel.Toggles()); n != 1 {
		t.Errorf("debug toggle registered %d times", n)
	}
}
