package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"pong/internal/glyph"
	"pong/internal/pong"
)

// Each vertex: pos(2) + local(2) + color(4) + mode(1).
const vertexFloats = 9

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer is a pong.Surface backed by one GL program. Shapes are queued in
// call order and drawn as a single batch by Flush, so later calls paint over
// earlier ones.
type Renderer struct {
	width, height float64

	prog     uint32
	vao      uint32
	vbo      uint32
	uRes     int32
	uFontTex int32
	fontTex  uint32
	atlas    *glyph.Atlas
	buf      []float32
}

var _ pong.Surface = (*Renderer)(nil)

// NewRenderer needs a current GL context. width and height are the surface
// size in game units; the framebuffer may be larger.
func NewRenderer(width, height float64) (*Renderer, error) {
	prog, err := linkProgram(shapeVertSrc, shapeFragSrc)
	if err != nil {
		return nil, fmt.Errorf("shape program: %w", err)
	}

	r := &Renderer{
		width:  width,
		height: height,
		prog:   prog,
		buf:    make([]float32, 0, 64*6*vertexFloats),
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(vertexFloats * 4)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aLocal
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))
	gl.EnableVertexAttribArray(3) // aMode
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(8*4))
	r.vao = vao
	r.vbo = vbo

	gl.UseProgram(prog)
	r.uRes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.uFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.uFontTex, 0)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// BeginFrame sets the viewport to the framebuffer and drops anything queued.
func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.buf = r.buf[:0]
}

// Flush draws everything queued since BeginFrame.
func (r *Renderer) Flush() {
	if len(r.buf) == 0 {
		return
	}

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.Uniform2f(r.uRes, float32(r.width), float32(r.height))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(r.buf) / vertexFloats
	gl.BufferData(gl.ARRAY_BUFFER, len(r.buf)*4, gl.Ptr(r.buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
	r.buf = r.buf[:0]
}

// quad queues two triangles covering (x0,y0)-(x1,y1); (u0,v0)-(u1,v1) is
// the matching local coordinate range.
func (r *Renderer) quad(x0, y0, x1, y1, u0, v0, u1, v1 float32, col pong.RGB, mode float32) {
	cr, cg, cb := col.Floats()
	// TL, TR, BL then TR, BR, BL.
	r.buf = append(r.buf,
		x0, y0, u0, v0, cr, cg, cb, 1, mode,
		x1, y0, u1, v0, cr, cg, cb, 1, mode,
		x0, y1, u0, v1, cr, cg, cb, 1, mode,
		x1, y0, u1, v0, cr, cg, cb, 1, mode,
		x1, y1, u1, v1, cr, cg, cb, 1, mode,
		x0, y1, u0, v1, cr, cg, cb, 1, mode,
	)
}

func (r *Renderer) FillRect(x, y, w, h float64, col pong.RGB) {
	r.quad(float32(x), float32(y), float32(x+w), float32(y+h), 0, 0, 0, 0, col, modeSolid)
}

func (r *Renderer) FillCircle(cx, cy, radius float64, col pong.RGB) {
	r.quad(float32(cx-radius), float32(cy-radius), float32(cx+radius), float32(cy+radius), -1, -1, 1, 1, col, modeDisc)
}

func (r *Renderer) DrawText(text string, x, y, size float64, align pong.Align, col pong.RGB) {
	if r.atlas == nil {
		return
	}
	for _, g := range r.atlas.Layout(text, x, y, size, align) {
		r.quad(g.X0, g.Y0, g.X1, g.Y1, g.U0, g.V0, g.U1, g.V1, col, modeGlyph)
	}
}
