package preprocessor

import (
	"testing"

	"github.com/exploro/maprando/pkg/model"
)

func TestSynthesizeNormalEntranceAlwaysFree(t *testing.T) {
	req := Synthesize(LeaveWithGMode, ExitParams{}, ComeInNormally, EntranceParams{})
	if req == nil || req.Kind != model.ReqFree {
		t.Fatalf("ComeInNormally should always synthesize Free, got %v", req)
	}
}

func TestSynthesizeRunningRequiresRunwayExit(t *testing.T) {
	if got := Synthesize(LeaveNormally, ExitParams{}, ComeInRunning, EntranceParams{}); got != nil {
		t.Fatalf("ComeInRunning should reject a plain LeaveNormally exit, got %v", got)
	}

	got := Synthesize(LeaveWithRunway, ExitParams{RunwayTiles: 10}, ComeInRunning, EntranceParams{RunwayTiles: 10})
	if got == nil {
		t.Fatalf("ComeInRunning should synthesize a requirement given a runway exit")
	}
}

func TestSynthesizeShinechargingRejectsShortRunway(t *testing.T) {
	got := Synthesize(LeaveWithRunway, ExitParams{RunwayTiles: 2}, ComeInShinecharging, EntranceParams{RunwayTiles: 2})
	if got != nil {
		t.Fatalf("a 4-tile combined runway should not support a shinecharge, got %v", got)
	}
}

func TestSynthesizeShinechargingAcceptsLongRunway(t *testing.T) {
	got := Synthesize(LeaveWithRunway, ExitParams{RunwayTiles: 20}, ComeInShinecharging, EntranceParams{RunwayTiles: 20})
	if got == nil {
		t.Fatalf("a 40-tile combined runway should support a shinecharge")
	}
	if got.Kind != model.ReqShinechargeFrames {
		t.Fatalf("expected a ShinechargeFrames requirement, got %v", got)
	}
}

func TestSynthesizeUnhandledCombinationIsNilNotPanic(t *testing.T) {
	got := Synthesize(LeaveNormally, ExitParams{}, ComeInWithTemporaryBlue, EntranceParams{})
	if got != nil {
		t.Fatalf("LeaveNormally paired with ComeInWithTemporaryBlue should be nil, got %v", got)
	}
}
