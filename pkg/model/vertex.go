package model

import (
	"fmt"
	"sort"
	"strings"
)

// VertexID is a dense integer index into a VertexInterner's arena. Using a
// small integer instead of the VertexKey directly keeps the hot traversal
// loop's arrays contiguous.
type VertexID int

// VertexKey is the composite identity of a logical position: a room/node
// pair, a bitmask of room-local obstacles already cleared (broken blocks,
// opened doors within the room), and a sorted list of glitch-state actions
// active when arriving here (e.g. a pending G-mode sub-mode). Two arrivals
// at the same room/node with different obstacle or action state are
// genuinely different vertices, because they admit different exit sets.
type VertexKey struct {
	RoomID       int
	NodeID       int
	ObstacleMask uint64
	Actions      string // canonicalized, comma-joined action tags; "" if none
}

// NewVertexKey canonicalizes an actions slice (sorted, joined) so that two
// keys built from differently-ordered slices still compare and hash equal.
func NewVertexKey(roomID, nodeID int, obstacleMask uint64, actions []string) VertexKey {
	sorted := append([]string(nil), actions...)
	sort.Strings(sorted)
	return VertexKey{
		RoomID:       roomID,
		NodeID:       nodeID,
		ObstacleMask: obstacleMask,
		Actions:      strings.Join(sorted, ","),
	}
}

func (k VertexKey) String() string {
	if k.Actions == "" {
		return fmt.Sprintf("(%d,%d,%#x)", k.RoomID, k.NodeID, k.ObstacleMask)
	}
	return fmt.Sprintf("(%d,%d,%#x,[%s])", k.RoomID, k.NodeID, k.ObstacleMask, k.Actions)
}

// Interner assigns a dense VertexID to each distinct VertexKey encountered,
// so the traversal engine can index parallel cost/trail arrays by integer
// rather than hash on a struct key in the inner loop.
type Interner struct {
	byKey []VertexKey
	index map[VertexKey]VertexID
}

// NewInterner creates an empty vertex interner.
func NewInterner() *Interner {
	return &Interner{index: make(map[VertexKey]VertexID)}
}

// Intern returns the VertexID for key, assigning a new one if key has not
// been seen before. Safe to call repeatedly with the same key.
func (in *Interner) Intern(key VertexKey) VertexID {
	if id, ok := in.index[key]; ok {
		return id
	}
	id := VertexID(len(in.byKey))
	in.byKey = append(in.byKey, key)
	in.index[key] = id
	return id
}

// Lookup returns the VertexID for key without interning it, and whether it
// was already present.
func (in *Interner) Lookup(key VertexKey) (VertexID, bool) {
	id, ok := in.index[key]
	return id, ok
}

// Key returns the VertexKey an id was interned from.
func (in *Interner) Key(id VertexID) VertexKey {
	return in.byKey[id]
}

// Len returns the number of distinct vertices interned so far. Traversal
// arrays are sized to this.
func (in *Interner) Len() int {
	return len(in.byKey)
}
