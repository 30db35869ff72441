package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"pong/internal/glyph"
)

// InitFont uploads the glyph atlas used by DrawText. Text drawn before
// InitFont is silently dropped.
func (r *Renderer) InitFont(atlas *glyph.Atlas) {
	b := atlas.Image.Bounds()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Image.Pix))

	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	r.fontTex = tex
	r.atlas = atlas
}
