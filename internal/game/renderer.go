package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"lightcycle/internal/scene"
)

// SceneFade darkens geometry with eye distance (per world unit).
const SceneFade = 0.004

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Scene program.
	sceneProg uint32
	sceneVAO  uint32
	sceneVBO  uint32
	sceneCap  int // VBO capacity in floats
	uMVP      int32
	uFade     int32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(sceneVertSrc, sceneFragSrc)
	if err != nil {
		return nil, fmt.Errorf("scene program: %w", err)
	}
	r := &Renderer{sceneProg: prog}
	r.uMVP = gl.GetUniformLocation(prog, gl.Str("uMVP\x00"))
	r.uFade = gl.GetUniformLocation(prog, gl.Str("uFade\x00"))

	// Scene VAO/VBO: per-vertex pos(3) + color(3).
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(scene.VertexFloats * 4)
	r.sceneCap = InitialVertexCapacity * scene.VertexFloats
	gl.BufferData(gl.ARRAY_BUFFER, r.sceneCap*4, nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aColor
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
	gl.BindVertexArray(0)

	r.sceneVAO = vao
	r.sceneVBO = vbo
	return r, nil
}

func (r *Renderer) Destroy() {
	gl.DeleteProgram(r.sceneProg)
	gl.DeleteVertexArrays(1, &r.sceneVAO)
	gl.DeleteBuffers(1, &r.sceneVBO)
	if r.textProg != 0 {
		gl.DeleteProgram(r.textProg)
		gl.DeleteVertexArrays(1, &r.textVAO)
		gl.DeleteBuffers(1, &r.textVBO)
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// BeginFrame sets the viewport and clears colour and depth.
func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	cr, cg, cb := scene.Palette.Background.Float()
	gl.ClearColor(cr, cg, cb, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawScene draws grid, walls, bikes and crash sparks with the given view-projection.
func (r *Renderer) DrawScene(f *scene.Frame, vp mgl32.Mat4) {
	gl.Enable(gl.DEPTH_TEST)
	gl.UseProgram(r.sceneProg)
	gl.UniformMatrix4fv(r.uMVP, 1, false, &vp[0])
	gl.Uniform1f(r.uFade, SceneFade)
	gl.BindVertexArray(r.sceneVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.sceneVBO)

	r.drawStream(f.Grid, gl.LINES)
	r.drawStream(f.PlayerWall, gl.TRIANGLE_STRIP)
	r.drawStream(f.AgentWall, gl.TRIANGLE_STRIP)
	r.drawStream(f.Bikes, gl.TRIANGLES)
	r.drawStream(f.Sparks, gl.LINES)

	gl.BindVertexArray(0)
	gl.Disable(gl.DEPTH_TEST)
}

// drawStream uploads one vertex stream and draws it. The VBO is orphaned on
// every upload and doubled when a stream outgrows it.
func (r *Renderer) drawStream(stream []float32, mode uint32) {
	n := scene.Vertices(stream)
	if n == 0 {
		return
	}
	for r.sceneCap < len(stream) {
		r.sceneCap *= 2
	}
	gl.BufferData(gl.ARRAY_BUFFER, r.sceneCap*4, nil, gl.STREAM_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(stream)*4, gl.Ptr(&stream[0]))
	gl.DrawArrays(mode, 0, n)
}
