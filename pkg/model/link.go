package model

// Link is one directed edge of the traversal graph: reaching ToVertex from
// FromVertex requires satisfying Requirement and, if satisfied, updates
// LocalState (and sometimes GlobalState, e.g. crossing a door that gets
// unlocked) by whatever amount the requirement's leaves specify along the
// way. Links are produced by the preprocessor from room/node/door geometry
// plus the door-lock randomizer's output; the traversal engine never
// constructs one itself.
type Link struct {
	FromVertex VertexID
	ToVertex   VertexID
	Requirement *Requirement

	// StartsWithShinecharge requires a stored shinecharge to already be
	// active when entering this link (consumed regardless of outcome).
	StartsWithShinecharge bool
	// EndsWithShinecharge leaves a stored shinecharge active on arrival,
	// overriding whatever decay Requirement's leaves computed.
	EndsWithShinecharge bool

	// Label is a short human-readable strat name surfaced in spoiler routes
	// ("Mission Impossible", "Shinespark down Morph Ball door", ...).
	Label string
	// Notes is optional longer-form guidance carried through to the spoiler
	// log unmodified.
	Notes string
}

// NewLink constructs a Link with no shinecharge carry flags; use the setter
// methods below for strats that need them, which keeps call sites that
// don't care readable.
func NewLink(from, to VertexID, req *Requirement) *Link {
	return &Link{FromVertex: from, ToVertex: to, Requirement: req}
}

// WithShinecharge sets both carry flags and returns the link for chaining
// during preprocessor link synthesis.
func (l *Link) WithShinecharge(startsWith, endsWith bool) *Link {
	l.StartsWithShinecharge = startsWith
	l.EndsWithShinecharge = endsWith
	return l
}

// WithLabel sets the spoiler-facing strat name.
func (l *Link) WithLabel(label string) *Link {
	l.Label = label
	return l
}
