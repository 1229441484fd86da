package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/exploro/maprando/pkg/mapdata"
)

// tmjLayer is a minimal Tiled JSON tile layer: one row-major array of tile
// values, -1 meaning "empty".
type tmjLayer struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Data   []int  `json:"data"`
	Type   string `json:"type"`
}

// tmjDocument is a minimal Tiled map document: just enough structure for a
// level editor to open the room grid and see which rooms were reachable by
// which step.
type tmjDocument struct {
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	TileWidth  int        `json:"tilewidth"`
	TileHeight int        `json:"tileheight"`
	Layers     []tmjLayer `json:"layers"`
	Properties map[string]int `json:"properties"`
}

// WriteTMJ renders m plus per-room first-reachable-step data as a Tiled
// JSON document: one layer for room area IDs, one for reachability step.
func WriteTMJ(w io.Writer, m *mapdata.Map, reachableStep []int) error {
	width, height := tmjBounds(m)

	areaLayer := make([]int, width*height)
	stepLayer := make([]int, width*height)
	for i := range areaLayer {
		areaLayer[i] = -1
		stepLayer[i] = -1
	}

	for i, room := range m.Rooms {
		idx := room.Y*width + room.X
		if idx < 0 || idx >= len(areaLayer) {
			continue
		}
		if i < len(m.Area) {
			areaLayer[idx] = m.Area[i]
		}
		if reachableStep != nil && i < len(reachableStep) {
			stepLayer[idx] = reachableStep[i]
		}
	}

	doc := tmjDocument{
		Width: width, Height: height,
		TileWidth: tileSizePx, TileHeight: tileSizePx,
		Layers: []tmjLayer{
			{Name: "area", Width: width, Height: height, Data: areaLayer, Type: "tilelayer"},
			{Name: "reachable_step", Width: width, Height: height, Data: stepLayer, Type: "tilelayer"},
		},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: encoding TMJ document: %w", err)
	}
	return nil
}

func tmjBounds(m *mapdata.Map) (int, int) {
	maxX, maxY := 0, 0
	for _, room := range m.Rooms {
		if room.X > maxX {
			maxX = room.X
		}
		if room.Y > maxY {
			maxY = room.Y
		}
	}
	return maxX + 1, maxY + 1
}
