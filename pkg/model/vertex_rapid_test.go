package model

import (
	"testing"

	"pgregory.net/rapid"
)

// TestInternerIsStableUnderRandomKeys checks, for arbitrary sequences of
// vertex keys, the two properties the traversal engine relies on: re-interning
// an already-seen key never allocates a new ID, and every assigned ID maps
// back to the exact key that produced it.
func TestInternerIsStableUnderRandomKeys(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := NewInterner()
		seen := map[VertexKey]VertexID{}

		n := rapid.IntRange(1, 50).Draw(t, "n")
		for i := 0; i < n; i++ {
			key := VertexKey{
				RoomID:       rapid.IntRange(0, 20).Draw(t, "room"),
				NodeID:       rapid.IntRange(0, 10).Draw(t, "node"),
				ObstacleMask: rapid.Uint64().Draw(t, "mask"),
			}
			id := in.Intern(key)

			if prior, ok := seen[key]; ok {
				if id != prior {
					t.Fatalf("re-interning %v returned a new ID %d, want %d", key, id, prior)
				}
			}
			seen[key] = id

			if got := in.Key(id); got != key {
				t.Fatalf("Key(%d) = %v, want %v", id, got, key)
			}
		}
	})
}
