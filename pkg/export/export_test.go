package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/exploro/maprando/pkg/mapdata"
	"github.com/exploro/maprando/pkg/spoiler"
)

func TestWriteJSONProducesValidJSON(t *testing.T) {
	log := &spoiler.SpoilerLog{AllItems: map[string]string{"Morph Ball": "Morph"}}
	var buf bytes.Buffer
	if err := WriteJSON(&buf, log); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}
	var roundTrip spoiler.SpoilerLog
	if err := json.Unmarshal(buf.Bytes(), &roundTrip); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if roundTrip.AllItems["Morph Ball"] != "Morph" {
		t.Fatalf("round trip lost data: %+v", roundTrip)
	}
}

func TestWriteMapSVGProducesSVGElement(t *testing.T) {
	m := &mapdata.Map{
		Rooms: []mapdata.RoomPlacement{{X: 0, Y: 0}, {X: 1, Y: 0}},
		Area:  []int{0, 1},
	}
	var buf bytes.Buffer
	WriteMapSVG(&buf, m)
	if !strings.Contains(buf.String(), "<svg") {
		t.Fatalf("expected SVG output to contain an <svg> element, got %q", buf.String())
	}
}

func TestWriteTMJProducesValidJSON(t *testing.T) {
	m := &mapdata.Map{
		Rooms: []mapdata.RoomPlacement{{X: 0, Y: 0}, {X: 1, Y: 1}},
		Area:  []int{2, 3},
	}
	var buf bytes.Buffer
	if err := WriteTMJ(&buf, m, []int{1, 2}); err != nil {
		t.Fatalf("WriteTMJ error: %v", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc["width"].(float64) != 2 {
		t.Fatalf("expected width 2, got %v", doc["width"])
	}
}
