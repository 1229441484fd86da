package preprocessor

import (
	"math"

	"github.com/exploro/maprando/pkg/model"
)

// RunFrames returns the number of frames needed to run the given number of
// tiles from a standstill, via a piecewise-linear fit to the game's actual
// acceleration curve (break points at 7, 16 and 42 tiles). The result
// always rounds up, since a path can never benefit from a fractional frame
// of progress it hasn't finished yet.
func RunFrames(tiles float64) model.Capacity {
	if tiles < 0 {
		panic("preprocessor: RunFrames requires tiles >= 0")
	}
	var frames float64
	switch {
	case tiles <= 7.0:
		frames = 9.0 + 4.0*tiles
	case tiles <= 16.0:
		frames = 15.0 + 3.0*tiles
	case tiles <= 42.0:
		frames = 32.0 + 2.0*tiles
	default:
		frames = 47.0 + 64.0/39.0*tiles
	}
	return model.Capacity(math.Ceil(frames))
}

// ShinechargeFrames splits an 85-frame shinecharge window between a runway
// the player already used (otherRunwayLength) and the remaining runway
// (runwayLength), returning (otherTime, remainingTime) in frames.
//
// When the combined runway exceeds the 31.3-tile threshold at which a
// charge completes before the 85-frame window would otherwise end, the
// split is just the ordinary run-frame cost of each segment. Below the
// threshold, the charge is assumed to start at 0.125 tiles/frame and
// accelerate uniformly to fill the full 85 frames over the combined
// distance; otherTime is then read off that quadratic via the standard
// inversion of distance = v0*t + 0.5*a*t^2.
func ShinechargeFrames(otherRunwayLength, runwayLength float64) (model.Capacity, model.Capacity) {
	combinedLength := otherRunwayLength + runwayLength
	if combinedLength > 31.3 {
		totalTime := RunFrames(combinedLength)
		otherTime := RunFrames(otherRunwayLength)
		return otherTime, totalTime - otherTime
	}

	const totalTime = 85.0
	const initialSpeed = 0.125
	acceleration := 2.0 * (combinedLength - initialSpeed*totalTime) / (totalTime * totalTime)

	otherTimeF := (math.Sqrt(initialSpeed*initialSpeed+2.0*acceleration*otherRunwayLength) - initialSpeed) / acceleration
	otherTime := model.Capacity(math.Ceil(otherTimeF))
	return otherTime, model.Capacity(totalTime) - otherTime
}

// ShortchargeTileThresholdHeated and ShortchargeTileThresholdUnheated are
// the minimum combined runway lengths (in tiles) below which a shinecharge
// cannot be completed at all, with and without the heated-room frame
// penalty folded in.
const (
	ShortchargeTileThresholdUnheated = 31.3
	ShortchargeTileThresholdHeated   = 33.0
)

// BlueSpeedBounds derives the minimum and maximum extra run speed (in
// tiles/frame above the normal running maximum) obtainable from a runway of
// the given length for a given shortcharge tile threshold. Returns
// (minSpeed, maxSpeed, ok); ok is false when the runway is too short to
// produce any extra speed at all.
func BlueSpeedBounds(runwayLength, shortchargeThreshold float64) (minSpeed, maxSpeed float64, ok bool) {
	if runwayLength <= 0 {
		return 0, 0, false
	}
	// The achievable extra speed grows with how far past the threshold the
	// runway extends, saturating at a fixed maximum overspeed of 0.25
	// tiles/frame once the runway is twice the threshold or longer.
	excess := runwayLength - shortchargeThreshold
	if excess <= 0 {
		return 0, 0, false
	}
	const maxOverspeed = 0.25
	maxSpeed = math.Min(maxOverspeed, excess/shortchargeThreshold*maxOverspeed)
	minSpeed = maxSpeed * 0.5
	return minSpeed, maxSpeed, true
}

// IntersectSpeedRanges narrows two (min, max) extra-run-speed ranges to
// their overlap, returning ok=false if they do not overlap at all (the
// combination of source and destination speed requirements is impossible).
func IntersectSpeedRanges(aMin, aMax, bMin, bMax float64) (min, max float64, ok bool) {
	min = math.Max(aMin, bMin)
	max = math.Min(aMax, bMax)
	if min > max {
		return 0, 0, false
	}
	return min, max, true
}

// HeatFrameCost converts a number of frames spent in a heated room into the
// energy cost of surviving them: one unit of energy per four frames,
// rounded up, matching the base game's heat damage rate of 15 energy per
// second at 60 frames/second.
func HeatFrameCost(frames model.Capacity) float64 {
	return math.Ceil(float64(frames) / 4.0)
}

// CombinedShortchargeRunway returns the runway length the preprocessor
// should assume is needed to complete a shortcharge when the source side's
// exit condition is from_exit_node=true: a conservative 33 tiles, plus an
// extra 20 frames' worth of turn-around allowance and 5 lenience frames,
// expressed back in tile-equivalent frames for direct use in a
// ShinechargeFrames call.
func CombinedShortchargeRunway() (tiles float64, extraFrames model.Capacity) {
	return 33.0, 25
}
