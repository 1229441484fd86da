package export

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/exploro/maprando/pkg/mapdata"
)

// tileSizePx is the pixel size of one map tile in the rendered SVG.
const tileSizePx = 24

// areaColors gives each of the map's six areas a distinct fill color so a
// rendered map reads at a glance, independent of any per-room metadata.
var areaColors = [mapdata.NumAreas]string{
	"#d9534f", "#5bc0de", "#5cb85c", "#f0ad4e", "#9b59b6", "#34495e",
}

// WriteMapSVG renders m's room placements as colored tiles, one per room,
// positioned by RoomPlacement and colored by Area.
func WriteMapSVG(w io.Writer, m *mapdata.Map) {
	width, height := svgBounds(m)
	canvas := svg.New(w)
	canvas.Start(width, height)
	defer canvas.End()

	canvas.Rect(0, 0, width, height, "fill:#111111")

	for i, room := range m.Rooms {
		color := "#888888"
		if i < len(m.Area) && m.Area[i] >= 0 && m.Area[i] < mapdata.NumAreas {
			color = areaColors[m.Area[i]]
		}
		x := room.X * tileSizePx
		y := room.Y * tileSizePx
		canvas.Rect(x, y, tileSizePx-1, tileSizePx-1, "fill:"+color+";stroke:#000000")
	}
}

func svgBounds(m *mapdata.Map) (int, int) {
	maxX, maxY := 0, 0
	for _, room := range m.Rooms {
		if room.X > maxX {
			maxX = room.X
		}
		if room.Y > maxY {
			maxY = room.Y
		}
	}
	return (maxX + 2) * tileSizePx, (maxY + 2) * tileSizePx
}
