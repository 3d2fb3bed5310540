package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"who-brings-what/pkg/hexmap"
	"who-brings-what/pkg/utils"
)

// hexPainter turns polygons into triangles; the buffers are reused between frames.
type hexPainter struct {
	whiteImg *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
}

func newHexPainter() *hexPainter {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &hexPainter{
		whiteImg: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		fillVs:   make([]ebiten.Vertex, 0, 18),
		fillIs:   make([]uint16, 0, 18),
		strokeVs: make([]ebiten.Vertex, 0, 36),
		strokeIs: make([]uint16, 0, 36),
	}
}

// Draw paints every overlay in the order they were added. Each polygon is filled
// and then stroked before the next one.
func (l *Layer) Draw(screen *ebiten.Image) {
	if len(l.order) == 0 {
		return
	}
	if l.painter == nil {
		l.painter = newHexPainter()
	}
	for _, h := range l.order {
		l.painter.drawOverlay(screen, l.entries[h].overlay)
	}
}

func (p *hexPainter) drawOverlay(target *ebiten.Image, o Overlay) {
	var geo ebiten.GeoM
	geo.Rotate(utils.DegToRad(o.Rotation))
	geo.Translate(o.Offset.X, o.Offset.Y)

	fill := WithAlpha(o.Style.FillColor, o.Style.Alpha)
	stroke := WithAlpha(o.Style.StrokeColor, o.Style.Alpha)

	for _, poly := range o.Polygons {
		path := polygonPath(poly, geo)
		if o.Style.FillEnabled {
			p.fillPath(target, path, fill)
		}
		if o.Style.StrokeEnabled && o.Style.StrokeWidth > 0 {
			p.strokePath(target, path, o.Style.StrokeWidth, stroke)
		}
	}
}

func polygonPath(poly Polygon, geo ebiten.GeoM) *vector.Path {
	path := &vector.Path{}
	for i, pt := range poly {
		x, y := geo.Apply(pt.X, pt.Y)
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
		} else {
			path.LineTo(float32(x), float32(y))
		}
	}
	path.Close()
	return path
}

func (p *hexPainter) fillPath(target *ebiten.Image, path *vector.Path, c color.RGBA) {
	p.fillVs, p.fillIs = path.AppendVerticesAndIndicesForFilling(p.fillVs[:0], p.fillIs[:0])
	paintVertices(p.fillVs, c)
	target.DrawTriangles(p.fillVs, p.fillIs, p.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (p *hexPainter) strokePath(target *ebiten.Image, path *vector.Path, width float32, c color.RGBA) {
	p.strokeVs, p.strokeIs = path.AppendVerticesAndIndicesForStroke(p.strokeVs[:0], p.strokeIs[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
	})
	paintVertices(p.strokeVs, c)
	target.DrawTriangles(p.strokeVs, p.strokeIs, p.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func paintVertices(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}

// DrawPolygon fills and/or strokes a single polygon already in screen space.
// Used by the picker diagram, which has no rotation.
func DrawPolygon(target *ebiten.Image, poly []hexmap.Point, fill, stroke color.RGBA, strokeWidth float32) {
	p := sharedPainter()
	path := polygonPath(poly, ebiten.GeoM{})
	if fill.A > 0 {
		p.fillPath(target, path, fill)
	}
	if strokeWidth > 0 {
		p.strokePath(target, path, strokeWidth, stroke)
	}
}

var painter *hexPainter

func sharedPainter() *hexPainter {
	if painter == nil {
		painter = newHexPainter()
	}
	return painter
}
