// Package opengl renders layout draw lists with OpenGL 4.1 and feeds GLFW
// input into layout.InputState.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/layout"
)

const vertexSize = int(unsafe.Sizeof(layout.Vertex{}))

const listVertexShader = `
#version 410 core
layout (location = 0) in vec2 position;
layout (location = 1) in vec2 uv;
layout (location = 2) in vec4 tint;

uniform mat4 screen;

out vec2 fragUV;
out vec4 fragTint;

void main() {
    fragUV = uv;
    fragTint = tint;
    gl_Position = screen * vec4(position, 0.0, 1.0);
}
` + "\x00"

// The atlas is single channel: its red component scales the tint's alpha.
const listFragmentShader = `
#version 410 core
in vec2 fragUV;
in vec4 fragTint;

uniform sampler2D atlas;
uniform bool textured;

out vec4 outColor;

void main() {
    float coverage = textured ? texture(atlas, fragUV).r : 1.0;
    outColor = vec4(fragTint.rgb, fragTint.a * coverage);
}
` + "\x00"

// Renderer implements layout.Renderer using OpenGL.
type Renderer struct {
	program  uint32
	vao      uint32
	vertices uint32
	indices  uint32
	atlas    uint32

	screenLoc   int32
	atlasLoc    int32
	texturedLoc int32

	width, height int
}

// NewRenderer compiles the draw list program and uploads the font atlas.
// A GL context must be current.
func NewRenderer(width, height int) (*Renderer, error) {
	program, err := linkProgram(listVertexShader, listFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("draw list program: %w", err)
	}
	r := &Renderer{program: program, width: width, height: height}
	r.screenLoc = uniform(program, "screen")
	r.atlasLoc = uniform(program, "atlas")
	r.texturedLoc = uniform(program, "textured")
	r.createBuffers()
	r.atlas = uploadAtlas()
	return r, nil
}

func uniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// createBuffers sets up the vertex array for layout.Vertex: two floats of
// position, two of texture coordinate and four normalized color bytes.
func (r *Renderer) createBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	defer gl.BindVertexArray(0)

	gl.GenBuffers(1, &r.vertices)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vertices)
	gl.GenBuffers(1, &r.indices)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.indices)

	var v layout.Vertex
	stride := int32(vertexSize)
	attribs := []struct {
		size       int32
		kind       uint32
		normalized bool
		offset     uintptr
	}{
		{2, gl.FLOAT, false, unsafe.Offsetof(v.Pos)},
		{2, gl.FLOAT, false, unsafe.Offsetof(v.TexCoord)},
		{4, gl.UNSIGNED_BYTE, true, unsafe.Offsetof(v.Color)},
	}
	for i, a := range attribs {
		gl.VertexAttribPointerWithOffset(uint32(i), a.size, a.kind, a.normalized, stride, a.offset)
		gl.EnableVertexAttribArray(uint32(i))
	}
}

func uploadAtlas() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	defer gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, layout.FontAtlasWidth, layout.FontAtlasHeight,
		0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(layout.FontAtlas()))
	return tex
}

// FontTextureID returns the texture holding layout.FontAtlas.
func (r *Renderer) FontTextureID() uint32 {
	return r.atlas
}

// Resize sets the framebuffer size used for projection and scissoring.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
}

// Render draws a finalized DrawList over whatever is in the framebuffer.
// The caller's blend, depth, cull and scissor state is restored afterwards.
func (r *Renderer) Render(dl *layout.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 || len(dl.IdxBuffer) == 0 {
		return nil
	}

	saved := captureState()
	defer saved.restore()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.program)
	screen := screenProjection(float32(r.width), float32(r.height))
	gl.UniformMatrix4fv(r.screenLoc, 1, false, &screen[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.atlasLoc, 0)

	gl.BindVertexArray(r.vao)
	defer gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vertices)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*vertexSize, gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.indices)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2, gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}
		x, y, w, h, ok := r.scissor(cmd.ClipRect)
		if !ok {
			continue
		}
		gl.Scissor(x, y, w, h)

		textured := int32(0)
		if cmd.TextureID != 0 {
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
			textured = 1
		}
		gl.Uniform1i(r.texturedLoc, textured)

		gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElemCount), gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2, int32(cmd.VertexOffset))
	}
	return nil
}

// scissor converts a top-left origin clip rect (x0, y0, x1, y1) into GL's
// bottom-left origin box, clamped to the framebuffer.
func (r *Renderer) scissor(clip [4]float32) (x, y, w, h int32, ok bool) {
	x0 := max(clip[0], 0)
	x1 := min(clip[2], float32(r.width))
	y0 := max(clip[1], 0)
	y1 := min(clip[3], float32(r.height))
	if x1 <= x0 || y1 <= y0 {
		return 0, 0, 0, 0, false
	}
	return int32(x0), int32(float32(r.height) - y1), int32(x1 - x0), int32(y1 - y0), true
}

// Delete releases the renderer's GL objects.
func (r *Renderer) Delete() {
	if r.atlas != 0 {
		gl.DeleteTextures(1, &r.atlas)
	}
	for _, buf := range []*uint32{&r.indices, &r.vertices} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
		}
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
	*r = Renderer{width: r.width, height: r.height}
}

// glState is the part of the GL state Render touches.
type glState struct {
	program    int32
	blendSrc   int32
	blendDst   int32
	scissorBox [4]int32
	caps       [4]uint32
	enabled    [4]bool
}

func captureState() glState {
	s := glState{caps: [4]uint32{gl.BLEND, gl.DEPTH_TEST, gl.CULL_FACE, gl.SCISSOR_TEST}}
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &s.blendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &s.blendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.scissorBox[0])
	for i, c := range s.caps {
		s.enabled[i] = gl.IsEnabled(c)
	}
	return s
}

func (s glState) restore() {
	gl.UseProgram(uint32(s.program))
	gl.BlendFunc(uint32(s.blendSrc), uint32(s.blendDst))
	for i, c := range s.caps {
		if s.enabled[i] {
			gl.Enable(c)
		} else {
			gl.Disable(c)
		}
	}
	gl.Scissor(s.scissorBox[0], s.scissorBox[1], s.scissorBox[2], s.scissorBox[3])
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	src, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, src, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status != gl.FALSE {
		return shader, nil
	}
	var n int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
	msg := make([]byte, n+1)
	gl.GetShaderInfoLog(shader, n, nil, &msg[0])
	gl.DeleteShader(shader)
	return 0, fmt.Errorf("compile: %s", msg[:n])
}

func linkProgram(vertexSource, fragmentSource string) (uint32, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status != gl.FALSE {
		return program, nil
	}
	var n int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
	msg := make([]byte, n+1)
	gl.GetProgramInfoLog(program, n, nil, &msg[0])
	gl.DeleteProgram(program)
	return 0, fmt.Errorf("link: %s", msg[:n])
}

// screenProjection maps pixel coordinates with a top-left origin to clip
// space.
func screenProjection(w, h float32) [16]float32 {
	return [16]float32{
		2 / w, 0, 0, 0,
		0, -2 / h, 0, 0,
		0, 0, -1, 0,
		-1, 1, 0, 1,
	}
}
