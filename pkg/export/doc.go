// Package export serializes a finished placement attempt's item map and
// spoiler log into the output formats external tools consume: JSON for
// programmatic consumers, SVG for a human-readable map rendering, and Tiled
// JSON (TMJ) for level-editor inspection of room layout and reachability.
package export
