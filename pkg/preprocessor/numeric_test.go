package preprocessor

import "testing"

func TestRunFramesPiecewiseBreakpoints(t *testing.T) {
	cases := []struct {
		tiles float64
		want  float64
	}{
		{0, 9},
		{7, 37},
		{16, 63},
		{42, 116},
	}
	for _, c := range cases {
		got := RunFrames(c.tiles)
		if float64(got) != c.want {
			t.Fatalf("RunFrames(%v) = %v, want %v", c.tiles, got, c.want)
		}
	}
}

func TestRunFramesMonotonic(t *testing.T) {
	prev := RunFrames(0)
	for tiles := 1.0; tiles <= 100; tiles++ {
		cur := RunFrames(tiles)
		if cur < prev {
			t.Fatalf("RunFrames should be non-decreasing, dropped from %v to %v at %v tiles", prev, cur, tiles)
		}
		prev = cur
	}
}

func TestShinechargeFramesSumsToWindow(t *testing.T) {
	other, remaining := ShinechargeFrames(10, 10)
	if other+remaining != 85 {
		t.Fatalf("short combined runway should split the 85-frame window exactly, got %v + %v = %v", other, remaining, other+remaining)
	}
}

func TestShinechargeFramesLongRunwayUsesRunFrames(t *testing.T) {
	other, remaining := ShinechargeFrames(20, 20)
	wantOther := RunFrames(20)
	wantTotal := RunFrames(40)
	if other != wantOther {
		t.Fatalf("long combined runway: other = %v, want %v", other, wantOther)
	}
	if other+remaining != wantTotal {
		t.Fatalf("long combined runway: total = %v, want %v", other+remaining, wantTotal)
	}
}

func TestBlueSpeedBoundsShortRunwayFails(t *testing.T) {
	if _, _, ok := BlueSpeedBounds(5, ShortchargeTileThresholdUnheated); ok {
		t.Fatalf("a runway shorter than the threshold should yield no extra speed")
	}
}

func TestBlueSpeedBoundsLongRunwaySucceeds(t *testing.T) {
	min, max, ok := BlueSpeedBounds(60, ShortchargeTileThresholdUnheated)
	if !ok {
		t.Fatalf("expected a long runway to produce a usable speed range")
	}
	if min > max || min < 0 {
		t.Fatalf("invalid speed range [%v, %v]", min, max)
	}
}

func TestIntersectSpeedRangesEmpty(t *testing.T) {
	if _, _, ok := IntersectSpeedRanges(0.1, 0.15, 0.2, 0.25); ok {
		t.Fatalf("disjoint ranges should not intersect")
	}
}

func TestIntersectSpeedRangesOverlap(t *testing.T) {
	min, max, ok := IntersectSpeedRanges(0.1, 0.2, 0.15, 0.3)
	if !ok {
		t.Fatalf("expected overlapping ranges to intersect")
	}
	if min != 0.15 || max != 0.2 {
		t.Fatalf("intersection = [%v, %v], want [0.15, 0.2]", min, max)
	}
}

func TestHeatFrameCostRoundsUp(t *testing.T) {
	if got := HeatFrameCost(1); got != 1 {
		t.Fatalf("HeatFrameCost(1) = %v, want 1", got)
	}
	if got := HeatFrameCost(5); got != 2 {
		t.Fatalf("HeatFrameCost(5) = %v, want 2", got)
	}
}
