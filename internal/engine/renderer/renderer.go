// Package renderer draws a scene as colored line wireframes with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/villagewalk/internal/engine/scene"
	"github.com/Faultbox/villagewalk/internal/engine/shader"
	"github.com/Faultbox/villagewalk/internal/logger"
	"github.com/Faultbox/villagewalk/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// lineBuffer is an uploaded xyz + rgba line list.
type lineBuffer struct {
	vao, vbo uint32
	count    int32
	version  uint64
	bounds   scene.Bounds
	color    [4]float32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config  Config
	program *shader.Program
	buffers map[scene.Object]*lineBuffer
	log     *zap.Logger
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:  cfg,
		buffers: make(map[scene.Object]*lineBuffer),
		log:     logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	var err error
	r.program, err = shader.NewProgram(shader.LineVertex, shader.LineFragment)
	if err != nil {
		return nil, fmt.Errorf("failed to create line shader: %w", err)
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for obj := range r.buffers {
		r.release(obj)
	}
	r.program.Delete()
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Render clears the frame and draws every visible object of sc.
func (r *Renderer) Render(sc *scene.Scene, view, projection math.Mat4) {
	bg := sc.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.program.Use()
	viewProj := projection.Mul(view)
	tint := r.program.Uniform("uTint")
	gl.Uniform4f(tint, 1, 1, 1, 1)

	live := make(map[scene.Object]bool, len(r.buffers))
	for _, obj := range sc.Objects() {
		live[obj] = true

		switch o := obj.(type) {
		case *scene.LineSegments:
			if !o.Visible || o.VertexCount() == 0 {
				continue
			}
			r.draw(r.syncLines(o), viewProj)
		case *scene.Node:
			if !o.Visible {
				continue
			}
			r.draw(r.syncNode(o), viewProj.Mul(o.Model()))
		}
	}

	// Objects removed from the scene give their buffers back.
	for obj := range r.buffers {
		if !live[obj] {
			r.release(obj)
		}
	}
}

func (r *Renderer) draw(buf *lineBuffer, mvp math.Mat4) {
	if buf.count == 0 {
		return
	}
	gl.UniformMatrix4fv(r.program.Uniform("uMVP"), 1, false, mvp.Ptr())
	gl.BindVertexArray(buf.vao)
	gl.DrawArrays(gl.LINES, 0, buf.count)
	gl.BindVertexArray(0)
}

func (r *Renderer) syncLines(l *scene.LineSegments) *lineBuffer {
	vertices, colors, version := l.Geometry()
	buf, ok := r.buffers[l]
	if ok && buf.version == version {
		return buf
	}
	if !ok {
		buf = r.newBuffer(l)
	}
	buf.version = version
	upload(buf, vertices, colors)
	return buf
}

// syncNode draws a node as its local bounding box, rebuilt when its bounds
// or color change.
func (r *Renderer) syncNode(n *scene.Node) *lineBuffer {
	buf, ok := r.buffers[n]
	if ok && buf.bounds == n.Bounds && buf.color == n.Color {
		return buf
	}
	if !ok {
		buf = r.newBuffer(n)
	}
	buf.bounds, buf.color = n.Bounds, n.Color

	vertices := scene.AppendBoxWireframe(nil, scene.BoxCorners(n.Bounds.Min, n.Bounds.Max))
	colors := scene.AppendColor(nil, n.Color, len(vertices))
	upload(buf, vertices, colors)
	return buf
}

func (r *Renderer) newBuffer(obj scene.Object) *lineBuffer {
	buf := &lineBuffer{}
	gl.GenVertexArrays(1, &buf.vao)
	gl.GenBuffers(1, &buf.vbo)
	r.buffers[obj] = buf
	r.log.Debug("line buffer created", zap.String("object", obj.Name()), zap.Uint32("vao", buf.vao))
	return buf
}

func (r *Renderer) release(obj scene.Object) {
	buf := r.buffers[obj]
	gl.DeleteVertexArrays(1, &buf.vao)
	gl.DeleteBuffers(1, &buf.vbo)
	delete(r.buffers, obj)
}

// upload interleaves xyz and rgba into buf's VBO.
func upload(buf *lineBuffer, vertices, colors []float32) {
	n := len(vertices) / 3
	buf.count = int32(n)
	if n == 0 {
		return
	}

	data := make([]float32, 0, n*7)
	for i := 0; i < n; i++ {
		data = append(data, vertices[i*3:i*3+3]...)
		data = append(data, colors[i*4:i*4+4]...)
	}

	gl.BindVertexArray(buf.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.DYNAMIC_DRAW)

	stride := int32(7 * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// ReadPixels reads the back buffer as RGBA, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}
