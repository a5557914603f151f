package layout

import (
	"math"
	"slices"
	"sync"
)

// Vertex is one corner of a primitive. Field order and sizes are what a
// backend uploads.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32 // 0xAABBGGRR
}

// DrawCmd is one batch of indices sharing a clip rectangle and texture.
// Indices are relative to VertexOffset.
type DrawCmd struct {
	ElemCount    uint32
	ClipRect     [4]float32 // x0, y0, x1, y1 in window pixels
	TextureID    uint32     // 0 draws untextured
	VertexOffset uint32
	IndexOffset  uint32
}

// unclipped covers any reasonable display.
var unclipped = [4]float32{-1e9, -1e9, 1e9, 1e9}

// maxCmdVertices keeps the relative indices of a command inside uint16.
const maxCmdVertices = math.MaxUint16 - 4

var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 1536),
			CmdBuffer: make([]DrawCmd, 0, 16),
		}
	},
}

// AcquireDrawList returns a cleared DrawList from a shared pool. Hand it
// back with ReleaseDrawList.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns dl to the pool. dl must not be used afterwards.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates the primitives of one frame, batched into commands
// that share a texture and a clip rectangle.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clips   [][4]float32
	clip    [4]float32
	texture uint32
	open    bool // the last command still receives primitives
}

// Clear empties the list for a new frame. Capacity is kept.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clips = dl.clips[:0]
	dl.clip = unclipped
	dl.texture = 0
	dl.open = false
}

// PushClipRect narrows the clip rectangle to its intersection with
// (x0, y0)-(x1, y1), in window pixels.
func (dl *DrawList) PushClipRect(x0, y0, x1, y1 float32) {
	dl.clips = append(dl.clips, dl.clip)
	c := dl.clip
	dl.clip = [4]float32{max(c[0], x0), max(c[1], y0), min(c[2], x1), min(c[3], y1)}
	dl.closeCmd()
}

// PopClipRect restores the clip rectangle in effect before the matching
// PushClipRect.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clips)
	if n == 0 {
		return
	}
	dl.clip = dl.clips[n-1]
	dl.clips = dl.clips[:n-1]
	dl.closeCmd()
}

// ClipDepth returns the number of pushed clip rectangles.
func (dl *DrawList) ClipDepth() int {
	return len(dl.clips)
}

// SetTexture selects the texture for the primitives that follow.
func (dl *DrawList) SetTexture(id uint32) {
	if dl.texture != id {
		dl.texture = id
		dl.closeCmd()
	}
}

// closeCmd seals the open command; the next primitive starts a new one.
func (dl *DrawList) closeCmd() {
	if !dl.open {
		return
	}
	cmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
	cmd.ElemCount = uint32(len(dl.IdxBuffer)) - cmd.IndexOffset
	dl.open = false
}

// cmd returns the command the next quad goes into.
func (dl *DrawList) cmd() *DrawCmd {
	if dl.open {
		c := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		if uint32(len(dl.VtxBuffer))-c.VertexOffset < maxCmdVertices {
			return c
		}
		dl.closeCmd()
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.clip,
		TextureID:    dl.texture,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.open = true
	return &dl.CmdBuffer[len(dl.CmdBuffer)-1]
}

// quad appends the corners in clockwise order from the top left as two
// triangles.
func (dl *DrawList) quad(corners [4][2]float32, uv [4]float32, color uint32) {
	c := dl.cmd()
	base := uint16(uint32(len(dl.VtxBuffer)) - c.VertexOffset)
	u0, v0, u1, v1 := uv[0], uv[1], uv[2], uv[3]
	dl.VtxBuffer = append(dl.VtxBuffer,
		Vertex{Pos: corners[0], TexCoord: [2]float32{u0, v0}, Color: color},
		Vertex{Pos: corners[1], TexCoord: [2]float32{u1, v0}, Color: color},
		Vertex{Pos: corners[2], TexCoord: [2]float32{u1, v1}, Color: color},
		Vertex{Pos: corners[3], TexCoord: [2]float32{u0, v1}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, base, base+1, base+2, base, base+2, base+3)
}

func transparent(color uint32) bool {
	return color>>24 == 0
}

// AddRect fills a rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if transparent(color) || w <= 0 || h <= 0 {
		return
	}
	dl.quad([4][2]float32{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}, [4]float32{}, color)
}

// AddRectOutline strokes the inside edge of a rectangle.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if transparent(color) {
		return
	}
	inner := h - 2*thickness
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, inner, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, inner, color)
}

// AddLine draws a segment of the given thickness.
func (dl *DrawList) AddLine(x0, y0, x1, y1 float32, color uint32, thickness float32) {
	if transparent(color) {
		return
	}
	dx, dy := x1-x0, y1-y0
	scale := thickness / 2
	if l := float32(math.Hypot(float64(dx), float64(dy))); l > 0 {
		scale /= l
	}
	nx, ny := -dy*scale, dx*scale
	dl.quad([4][2]float32{{x0 + nx, y0 + ny}, {x1 + nx, y1 + ny}, {x1 - nx, y1 - ny}, {x0 - nx, y0 - ny}},
		[4]float32{}, color)
}

// AddText draws one fixed-size cell per rune from the built-in font atlas.
// The caller selects the atlas texture.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, charWidth, charHeight float32) {
	if transparent(color) {
		return
	}
	for _, r := range text {
		u0, v0, u1, v1 := glyphUV(r)
		x1 := x + charWidth
		dl.quad([4][2]float32{{x, y}, {x1, y}, {x1, y + charHeight}, {x, y + charHeight}},
			[4]float32{u0, v0, u1, v1}, color)
		x = x1
	}
}

// Finalize seals the last command and drops empty ones. Call it once after
// the last primitive of the frame.
func (dl *DrawList) Finalize() {
	dl.closeCmd()
	dl.CmdBuffer = slices.DeleteFunc(dl.CmdBuffer, func(c DrawCmd) bool { return c.ElemCount == 0 })
}
