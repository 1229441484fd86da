package mapdata

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a map layout JSON document from path. Every field maps
// directly onto Map's own JSON tags, unlike gamedata's loader, since Map
// has no map-keyed-by-struct fields that need flattening.
func Load(path string) (*Map, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapdata: reading %s: %w", path, err)
	}
	var m Map
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("mapdata: parsing %s: %w", path, err)
	}
	return &m, nil
}
