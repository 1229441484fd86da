package config

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestValidateRejectsUnknownEnum(t *testing.T) {
	cfg := Default()
	cfg.ProgressionRate = "glacial"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected an error for an unrecognized progression_rate")
	}
}

func TestHashIsStableAndSensitive(t *testing.T) {
	a := Default()
	b := Default()
	if string(a.Hash()) != string(b.Hash()) {
		t.Fatalf("two default configs should hash identically")
	}

	b.ProgressionRate = ProgressionFast
	if string(a.Hash()) == string(b.Hash()) {
		t.Fatalf("changing a field should change the hash")
	}
}
