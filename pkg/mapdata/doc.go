// Package mapdata describes the room layout the randomizer places items and
// door locks onto. Layout generation itself (room positions, connections)
// is an external collaborator this module does not implement; Map values
// arrive pre-built. RandomizeAreas is the one map-shaping operation this
// module performs itself rather than leaving to the layout generator.
package mapdata
