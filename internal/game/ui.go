package game

import (
	"image"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"lightcycle/internal/scene"
)

// buildFontAtlas rasterizes printable ASCII into a white-on-transparent grid.
func buildFontAtlas() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, FontAtlasW, FontAtlasH))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: basicfont.Face7x13,
	}
	for ch := FontFirstChar; ch < FontFirstChar+FontCols*FontRows; ch++ {
		idx := ch - FontFirstChar
		col, row := idx%FontCols, idx/FontCols
		d.Dot = fixed.P(col*FontCellW, row*FontCellH+FontAscent)
		d.DrawString(string(rune(ch)))
	}
	return img
}

// InitFont builds the font atlas and sets up the text rendering pipeline.
func (r *Renderer) InitFont() error {
	atlas := buildFontAtlas()
	b := atlas.Bounds()
	if atlas.Stride != b.Dx()*4 {
		packed := image.NewNRGBA(b)
		draw.Draw(packed, b, atlas, b.Min, draw.Src)
		atlas = packed
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Pix))
	r.fontTex = tex

	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return err
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.textUFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, 0)

	// Text VAO/VBO: per-vertex pos(2) + uv(2) + color(4) = 8 floats.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 256*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	r.textVAO = vao
	r.textVBO = vbo
	gl.BindVertexArray(0)
	return nil
}

// DrawChar queues a single character as a textured quad in screen pixel space.
func (r *Renderer) DrawChar(ch rune, sx, sy, scale float32, col scene.RGB) {
	if ch < FontFirstChar || ch >= FontFirstChar+FontCols*FontRows {
		ch = '?'
	}
	idx := int(ch) - FontFirstChar
	u0 := float32(idx%FontCols*FontCellW) / FontAtlasW
	v0 := float32(idx/FontCols*FontCellH) / FontAtlasH
	u1 := u0 + float32(FontCellW)/FontAtlasW
	v1 := v0 + float32(FontCellH)/FontAtlasH

	w := FontCellW * scale
	h := FontCellH * scale
	cr, cg, cb := col.Float()

	r.textBuf = append(r.textBuf,
		sx, sy, u0, v0, cr, cg, cb, 1,
		sx+w, sy, u1, v0, cr, cg, cb, 1,
		sx+w, sy+h, u1, v1, cr, cg, cb, 1,
		sx, sy, u0, v0, cr, cg, cb, 1,
		sx+w, sy+h, u1, v1, cr, cg, cb, 1,
		sx, sy+h, u0, v1, cr, cg, cb, 1,
	)
}

// DrawString queues a string at pixel position (x, y), top-left origin.
func (r *Renderer) DrawString(s string, x, y int, scale float32, col scene.RGB) {
	sx := float32(x)
	for _, ch := range s {
		r.DrawChar(ch, sx, float32(y), scale, col)
		sx += FontCellW * scale
	}
}

// TextWidth returns the pixel width of s at scale.
func TextWidth(s string, scale float32) int {
	return int(float32(len(s)*FontCellW) * scale)
}

// TextHeight returns the pixel height of one line at scale.
func TextHeight(scale float32) int {
	return int(FontCellH * scale)
}

// FlushText draws all queued characters and resets the queue.
func (r *Renderer) FlushText(fbW, fbH int) {
	if len(r.textBuf) == 0 {
		return
	}
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(r.textProg)
	gl.Uniform2f(r.textURes, float32(fbW), float32(fbH))
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(&r.textBuf[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.textBuf)/8))
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	r.textBuf = r.textBuf[:0]
}
