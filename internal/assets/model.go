// Package assets loads glTF models off the frame thread.
package assets

import (
	"fmt"
	"math"

	"github.com/qmuntal/gltf"

	"github.com/Faultbox/villagewalk/internal/engine/animation"
	"github.com/Faultbox/villagewalk/internal/engine/scene"
	vmath "github.com/Faultbox/villagewalk/pkg/math"
)

// Model is what the demo needs from a glTF file: its animation clips and
// a bounding box of its meshes in model space.
type Model struct {
	Path   string
	Clips  []animation.Clip
	Bounds scene.Bounds
	Nodes  int
}

// ParseModel reads a .gltf or .glb file.
func ParseModel(path string) (*Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	m := &Model{Path: path, Nodes: len(doc.Nodes)}
	for i, anim := range doc.Animations {
		name := anim.Name
		if name == "" {
			name = fmt.Sprintf("animation_%d", i)
		}
		m.Clips = append(m.Clips, animation.Clip{Name: name, Duration: clipDuration(doc, anim)})
	}
	m.Bounds = meshBounds(doc)
	return m, nil
}

// clipDuration is the last keyframe time over all samplers.
func clipDuration(doc *gltf.Document, anim *gltf.Animation) float64 {
	var d float64
	for _, s := range anim.Samplers {
		if int(s.Input) >= len(doc.Accessors) {
			continue
		}
		if hi := floats(doc.Accessors[s.Input].Max); len(hi) > 0 && hi[0] > d {
			d = hi[0]
		}
	}
	return d
}

// meshBounds unions the POSITION accessor ranges of every primitive.
// Node transforms are ignored.
func meshBounds(doc *gltf.Document) scene.Bounds {
	lo := [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	found := false

	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			idx, ok := prim.Attributes[gltf.POSITION]
			if !ok || int(idx) >= len(doc.Accessors) {
				continue
			}
			acc := doc.Accessors[idx]
			amin, amax := floats(acc.Min), floats(acc.Max)
			if len(amin) < 3 || len(amax) < 3 {
				continue
			}
			for i := 0; i < 3; i++ {
				lo[i] = math.Min(lo[i], amin[i])
				hi[i] = math.Max(hi[i], amax[i])
			}
			found = true
		}
	}

	if !found {
		return scene.Bounds{}
	}
	return scene.Bounds{
		Min: vmath.Vec3{X: float32(lo[0]), Y: float32(lo[1]), Z: float32(lo[2])},
		Max: vmath.Vec3{X: float32(hi[0]), Y: float32(hi[1]), Z: float32(hi[2])},
	}
}

// floats widens accessor bounds to float64.
func floats[T ~float32 | ~float64](v []T) []float64 {
	out := make([]float64, len(v))
	for i, f := range v {
		out[i] = float64(f)
	}
	return out
}
