package render

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"who-brings-what/internal/event"
	"who-brings-what/pkg/hexmap"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#ff0000", color.RGBA{255, 0, 0, 255}, false},
		{"2196F3", color.RGBA{0x21, 0x96, 0xf3, 255}, false},
		{"0x4caf50", color.RGBA{0x4c, 0xaf, 0x50, 255}, false},
		{"#fff", color.RGBA{}, true},
		{"#gg0000", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, strings.ToLower("#"+strings.TrimPrefix(strings.TrimPrefix(tt.in, "#"), "0x")), HexString(got))
		})
	}
}

func TestWithAlpha(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	assert.Equal(t, uint8(128), WithAlpha(red, 0.5).A)
	assert.Equal(t, uint8(0), WithAlpha(red, -1).A)
	assert.Equal(t, uint8(255), WithAlpha(red, 2).A)
	assert.Equal(t, color.RGBA{38, 87, 40, 255}, DarkenColor(color.RGBA{76, 175, 80, 255}))
}

func selection(t *testing.T, toggles ...hexmap.Hex) *hexmap.Honeycomb {
	t.Helper()
	hc, err := hexmap.NewHoneycomb(hexmap.DefaultHoneycombRadius)
	require.NoError(t, err)
	for _, h := range toggles {
		require.NoError(t, hc.Toggle(h))
	}
	return hc
}

func TestBuildPolygons(t *testing.T) {
	hc := selection(t, hexmap.Hex{Q: 1, R: 0}, hexmap.Hex{Q: -1, R: 1})
	polys, err := BuildPolygons(hc.Selected(), 25, hexmap.PointyTop)
	require.NoError(t, err)
	require.Len(t, polys, 3)

	// the center polygon sits on the origin, its first corner straight up
	center := polys[1]
	require.Len(t, center, 6)
	assert.InDelta(t, 0, center[0].X, 1e-6)
	assert.InDelta(t, -25, center[0].Y, 1e-6)

	// polygon of (1,0) is shifted by one horizontal step
	east := polys[2]
	assert.InDelta(t, 25*math.Sqrt(3), east[0].X, 1e-6)
	assert.InDelta(t, -25, east[0].Y, 1e-6)

	_, err = BuildPolygons(hc.Selected(), 0, hexmap.PointyTop)
	assert.ErrorIs(t, err, hexmap.ErrInvalidRadius)
	_, err = BuildPolygons(hc.Selected(), 25, hexmap.Orientation(9))
	assert.ErrorIs(t, err, hexmap.ErrInvalidOrientation)
}

func TestLayerAddRemove(t *testing.T) {
	l := NewLayer()
	a := l.AddOverlay(Overlay{TokenID: "a"})
	b := l.AddOverlay(Overlay{TokenID: "b"})
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, l.Len())

	require.NoError(t, l.RemoveOverlay(a))
	assert.Equal(t, 1, l.Len())
	_, ok := l.Overlay(a)
	assert.False(t, ok)

	assert.ErrorIs(t, l.RemoveOverlay(a), ErrUnknownHandle)
	assert.ErrorIs(t, l.RemoveOverlay(Handle(uuid.New())), ErrUnknownHandle)

	o, ok := l.Overlay(b)
	require.True(t, ok)
	assert.Equal(t, "b", o.TokenID)
}

func TestLayerFollowRotation(t *testing.T) {
	d := event.NewDispatcher()
	l := NewLayer()
	h := l.AddOverlay(Overlay{TokenID: "tok", Rotation: 15})

	require.NoError(t, l.FollowRotation(h, "tok", d))
	require.NoError(t, l.FollowRotation(h, "tok", d))
	assert.Equal(t, 1, d.Count(event.TokenRotated))

	d.Dispatch(event.Event{Type: event.TokenRotated, Data: event.TokenRotation{TokenID: "other", Rotation: 90}})
	o, _ := l.Overlay(h)
	assert.Equal(t, 15.0, o.Rotation)

	d.Dispatch(event.Event{Type: event.TokenRotated, Data: event.TokenRotation{TokenID: "tok", Rotation: 45}})
	o, _ = l.Overlay(h)
	assert.Equal(t, 45.0, o.Rotation)

	require.NoError(t, l.RemoveOverlay(h))
	assert.Zero(t, d.Count(event.TokenRotated))

	assert.ErrorIs(t, l.FollowRotation(h, "tok", d), ErrUnknownHandle)
	assert.ErrorIs(t, l.SetRotation(h, 10), ErrUnknownHandle)
}

func TestWriteDiagramSVG(t *testing.T) {
	hc := selection(t, hexmap.Hex{Q: 2, R: -1})
	var buf bytes.Buffer
	require.NoError(t, WriteDiagramSVG(&buf, hc, hexmap.FlatTop, DefaultDiagramOptions))

	out := buf.String()
	assert.Contains(t, out, `<svg width="400" height="400"`)
	assert.Contains(t, out, `viewBox="0 0 40000 40000"`)
	assert.Contains(t, out, `fill="#fafafa"`)
	assert.Equal(t, 91, strings.Count(out, "<polygon"))
	assert.Contains(t, out, `fill="#4caf50" stroke="#265728" stroke-width="200" data-hex="0,0"`)
	assert.Contains(t, out, `fill="#2196f3" stroke="#666666" stroke-width="100" data-hex="2,-1"`)
	// flat-top center starts at the right corner: (200+18, 200), in hundredths
	assert.Contains(t, out, `points="21800,20000 `)
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
}

func TestWriteDiagramSVGKeepsTwoDecimals(t *testing.T) {
	hc := selection(t)
	var buf bytes.Buffer
	require.NoError(t, WriteDiagramSVG(&buf, hc, hexmap.PointyTop, DefaultDiagramOptions))

	// pointy-top cell (1,0) is centered at 200+18*sqrt(3) = 231.18
	cells, err := LayoutDiagram(hc, hexmap.PointyTop, DefaultDiagramOptions)
	require.NoError(t, err)
	for _, c := range cells {
		if c.Hex == (hexmap.Hex{Q: 1, R: 0}) {
			top := c.Vertices[0]
			assert.InDelta(t, 231.18, top.X, 0.01)
			assert.Contains(t, buf.String(), fmt.Sprintf(`points="%d,%d `, scaled(top.X), scaled(top.Y)))
			assert.Equal(t, 23118, scaled(top.X))
		}
	}
}

func TestLayoutDiagramPointyTop(t *testing.T) {
	hc := selection(t)
	cells, err := LayoutDiagram(hc, hexmap.PointyTop, DefaultDiagramOptions)
	require.NoError(t, err)
	require.Len(t, cells, 91)
	for _, c := range cells {
		if c.IsCenter {
			assert.InDelta(t, 200, c.Vertices[0].X, 1e-6)
			assert.InDelta(t, 182, c.Vertices[0].Y, 1e-6)
			assert.Equal(t, 2, c.StrokeWidth)
		}
	}

	_, err = LayoutDiagram(hc, hexmap.PointyTop, DiagramOptions{Size: 400})
	assert.ErrorIs(t, err, hexmap.ErrInvalidRadius)
}
