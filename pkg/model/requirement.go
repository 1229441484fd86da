package model

import "fmt"

// ReqKind tags the variant of a Requirement node. Requirement is a single
// struct rather than an interface hierarchy so that leaves can be shared
// (interned) between links without any indirection beyond a slice index,
// per §9 "Recursive requirement trees... avoid cloning in inner loops by
// referencing leaves into interned pools."
type ReqKind int

const (
	ReqFree ReqKind = iota
	ReqNever
	ReqTech
	ReqStrat
	ReqItem
	ReqMissiles
	ReqSupers
	ReqPowerBombs
	ReqEnergy
	ReqReserve
	ReqHeatFrames
	ReqShinechargeFrames
	ReqWallJump
	ReqThreshold // generic numeric gate, e.g. min extra run speed
	ReqAnd
	ReqOr
	ReqShinecharge // shinecharge(length, heated)
	ReqSpeedball   // speedball(tiles, heated)
	ReqBlueSpeed   // blue_speed(length, heated)
)

// Requirement is a recursive sum type describing what must be true of the
// current GlobalState/LocalState for a Link to be traversable. And/Or
// compounds hold their operands in Children; leaves hold whatever scalar
// data they need directly.
type Requirement struct {
	Kind     ReqKind
	Tech     int     // ReqTech
	Strat    int     // ReqStrat
	Item     Item    // ReqItem
	Amount   int     // ReqMissiles/Supers/PowerBombs/Energy/Reserve/HeatFrames/ShinechargeFrames count
	Length   float64 // ReqShinecharge/Speedball/BlueSpeed: runway tiles; ReqThreshold: minimum value
	Heated   bool    // ReqShinecharge/Speedball/BlueSpeed/HeatFrames: room is heated
	Children []*Requirement
}

// Free always succeeds with zero resource cost.
func Free() *Requirement { return &Requirement{Kind: ReqFree} }

// Never never succeeds. Synthesize reports an impossible exit/entrance
// combination as nil rather than Never; ApplyRequirement treats both alike.
func Never() *Requirement { return &Requirement{Kind: ReqNever} }

func TechReq(id int) *Requirement  { return &Requirement{Kind: ReqTech, Tech: id} }
func StratReq(id int) *Requirement { return &Requirement{Kind: ReqStrat, Strat: id} }
func ItemReq(it Item) *Requirement { return &Requirement{Kind: ReqItem, Item: it} }

func MissilesReq(n int) *Requirement    { return &Requirement{Kind: ReqMissiles, Amount: n} }
func SupersReq(n int) *Requirement      { return &Requirement{Kind: ReqSupers, Amount: n} }
func PowerBombsReq(n int) *Requirement  { return &Requirement{Kind: ReqPowerBombs, Amount: n} }
func EnergyReq(n int) *Requirement      { return &Requirement{Kind: ReqEnergy, Amount: n} }
func ReserveReq(n int) *Requirement     { return &Requirement{Kind: ReqReserve, Amount: n} }
func WallJumpReq() *Requirement         { return &Requirement{Kind: ReqWallJump} }
func ThresholdReq(min float64) *Requirement {
	return &Requirement{Kind: ReqThreshold, Length: min}
}

// HeatFramesReq costs n frames of heat damage, charged by ApplyRequirement as
// n/4 energy only when heated is true; with heated false it costs nothing.
func HeatFramesReq(n int, heated bool) *Requirement {
	return &Requirement{Kind: ReqHeatFrames, Amount: n, Heated: heated}
}

func ShinechargeFramesReq(n int) *Requirement {
	return &Requirement{Kind: ReqShinechargeFrames, Amount: n}
}

// And succeeds only if every child succeeds; costs and local-state updates
// accumulate across children in order.
func And(children ...*Requirement) *Requirement {
	if len(children) == 1 {
		return children[0]
	}
	return &Requirement{Kind: ReqAnd, Children: children}
}

// Or succeeds if any child succeeds; traversal tries each and keeps the
// branch with the lowest TotalFrames, whichever cost metric the search is
// running under.
func Or(children ...*Requirement) *Requirement {
	if len(children) == 1 {
		return children[0]
	}
	return &Requirement{Kind: ReqOr, Children: children}
}

// Shinecharge requires holding a stored shinecharge acquired from a runway
// of the given tile length, in a heated or unheated room.
func Shinecharge(lengthTiles float64, heated bool) *Requirement {
	return &Requirement{Kind: ReqShinecharge, Length: lengthTiles, Heated: heated}
}

// Speedball requires a shinespark-charged ball roll over the given number of
// tiles of floor, in a heated or unheated room.
func Speedball(tiles float64, heated bool) *Requirement {
	return &Requirement{Kind: ReqSpeedball, Length: tiles, Heated: heated}
}

// BlueSpeed requires arriving with at least the given amount of stored extra
// run speed ("temporary blue"), in a heated or unheated room.
func BlueSpeed(length float64, heated bool) *Requirement {
	return &Requirement{Kind: ReqBlueSpeed, Length: length, Heated: heated}
}

func (r *Requirement) String() string {
	if r == nil {
		return "Never"
	}
	switch r.Kind {
	case ReqFree:
		return "Free"
	case ReqNever:
		return "Never"
	case ReqTech:
		return fmt.Sprintf("Tech(%d)", r.Tech)
	case ReqStrat:
		return fmt.Sprintf("Strat(%d)", r.Strat)
	case ReqItem:
		return fmt.Sprintf("Item(%s)", r.Item)
	case ReqMissiles:
		return fmt.Sprintf("Missiles(%d)", r.Amount)
	case ReqSupers:
		return fmt.Sprintf("Supers(%d)", r.Amount)
	case ReqPowerBombs:
		return fmt.Sprintf("PowerBombs(%d)", r.Amount)
	case ReqEnergy:
		return fmt.Sprintf("Energy(%d)", r.Amount)
	case ReqReserve:
		return fmt.Sprintf("Reserve(%d)", r.Amount)
	case ReqHeatFrames:
		return fmt.Sprintf("HeatFrames(%d,heated=%v)", r.Amount, r.Heated)
	case ReqShinechargeFrames:
		return fmt.Sprintf("ShinechargeFrames(%d)", r.Amount)
	case ReqWallJump:
		return "WallJump"
	case ReqThreshold:
		return fmt.Sprintf("Threshold(%.2f)", r.Length)
	case ReqAnd:
		return joinReqs("And", r.Children)
	case ReqOr:
		return joinReqs("Or", r.Children)
	case ReqShinecharge:
		return fmt.Sprintf("Shinecharge(%.2f,heated=%v)", r.Length, r.Heated)
	case ReqSpeedball:
		return fmt.Sprintf("Speedball(%.2f,heated=%v)", r.Length, r.Heated)
	case ReqBlueSpeed:
		return fmt.Sprintf("BlueSpeed(%.2f,heated=%v)", r.Length, r.Heated)
	default:
		return "Unknown"
	}
}

func joinReqs(op string, children []*Requirement) string {
	s := op + "("
	for i, c := range children {
		if i > 0 {
			s += ", "
		}
		s += c.String()
	}
	return s + ")"
}
