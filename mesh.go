package folio

import (
	"image/color"
	"sort"

	"github.com/golang/geo/r3"
	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchVerts keeps uint16 indices in range for a single DrawTriangles call.
const maxBatchVerts = 65535 - 2

// projectedFace is one lit, screen-space triangle waiting to be sorted.
type projectedFace struct {
	x, y  [3]float32
	depth float64
	color Color
}

// MeshRenderer flat-shades and projects meshes on the CPU, sorts the faces
// back to front and submits them with DrawTriangles. Buffers grow to a
// high-water mark and are reused every frame.
type MeshRenderer struct {
	geoms    map[Shape]*Geometry
	Lighting Lighting

	faces   []projectedFace
	verts   []ebiten.Vertex
	indices []uint16
	op      ebiten.DrawTrianglesOptions

	// FaceCount is the number of faces submitted by the last Flush.
	FaceCount int
}

// NewMeshRenderer creates a renderer for the given shapes and light rig.
func NewMeshRenderer(geoms map[Shape]*Geometry, lighting Lighting) *MeshRenderer {
	return &MeshRenderer{geoms: geoms, Lighting: lighting}
}

// Geometry returns the mesh registered for shape, or nil.
func (r *MeshRenderer) Geometry(shape Shape) *Geometry {
	return r.geoms[shape]
}

// Begin discards faces queued by the previous frame.
func (r *MeshRenderer) Begin() {
	r.faces = r.faces[:0]
}

// Add queues every camera-facing face of shape placed at pos with Euler
// rotation rot (X and Y only). Faces with a corner outside the clip range
// are skipped.
func (r *MeshRenderer) Add(cam *Camera, shape Shape, pos, rot r3.Vector, m Material) {
	g := r.geoms[shape]
	if g == nil {
		return
	}
	for _, tri := range g.Tris {
		wa := rotateXY(tri.A, rot.X, rot.Y).Add(pos)
		wb := rotateXY(tri.B, rot.X, rot.Y).Add(pos)
		wc := rotateXY(tri.C, rot.X, rot.Y).Add(pos)
		world := Triangle{wa, wb, wc}

		n := world.Normal()
		center := world.Centroid()
		toEye := cam.Position.Sub(center)
		if n.Dot(toEye) <= 0 {
			continue
		}

		var f projectedFace
		visible := true
		var depth float64
		for k, p := range [3]r3.Vector{wa, wb, wc} {
			sx, sy, d, ok := cam.Project(p)
			if !ok {
				visible = false
				break
			}
			f.x[k] = float32(sx)
			f.y[k] = float32(sy)
			depth += d
		}
		if !visible {
			continue
		}
		f.depth = depth / 3
		f.color = r.Lighting.Shade(n, toEye.Normalize(), m)
		r.faces = append(r.faces, f)
	}
}

// Flush sorts the queued faces far to near and draws them into dst.
func (r *MeshRenderer) Flush(dst *ebiten.Image) {
	r.FaceCount = len(r.faces)
	if len(r.faces) == 0 {
		return
	}
	sort.Slice(r.faces, func(i, j int) bool {
		return r.faces[i].depth > r.faces[j].depth
	})

	src := ensureWhitePixel()
	r.verts = r.verts[:0]
	r.indices = r.indices[:0]
	for i := range r.faces {
		if len(r.verts)+3 > maxBatchVerts {
			dst.DrawTriangles(r.verts, r.indices, src, &r.op)
			r.verts = r.verts[:0]
			r.indices = r.indices[:0]
		}
		f := &r.faces[i]
		c := f.color.RGBA()
		base := uint16(len(r.verts))
		for k := 0; k < 3; k++ {
			r.verts = append(r.verts, vertexAt(f.x[k], f.y[k], c))
		}
		r.indices = append(r.indices, base, base+1, base+2)
	}
	dst.DrawTriangles(r.verts, r.indices, src, &r.op)
}

// vertexAt builds a vertex sampling the center of the 1x1 white source.
func vertexAt(x, y float32, c color.RGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(c.R) / 255,
		ColorG: float32(c.G) / 255,
		ColorB: float32(c.B) / 255,
		ColorA: float32(c.A) / 255,
	}
}

// --- White pixel singleton (no sync.Once; the render loop is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used
// as the source for untextured triangles and rectangles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
