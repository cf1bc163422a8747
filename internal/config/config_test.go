package config

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/san-kum/barrow/internal/geometry"
)

func TestPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for _, name := range names {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("preset %s listed but not found", name)
		}
		if _, err := cfg.ToRocket(); err != nil {
			t.Errorf("preset %s does not convert: %v", name, err)
		}
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestToRocketConvertsUnits(t *testing.T) {
	cfg := &Config{
		Name:                "test",
		ReferenceDiameterMM: 140.7,
		Components: []ComponentConfig{
			{Part: "nosecone", Name: "nose", Type: "ogive", LengthMM: 317.5, BaseDiameterMM: 140.7},
			{Part: "fin_set", Name: "fins", Count: 3, RootChordMM: 254.0, SpanMM: 133.4,
				SweepMM: 228.6, PositionFromNoseTipMM: 685.8},
		},
	}

	rocket, err := cfg.ToRocket()
	if err != nil {
		t.Fatalf("ToRocket failed: %v", err)
	}
	if math.Abs(rocket.ReferenceDiameter-0.1407) > 1e-12 {
		t.Errorf("reference diameter = %v m, want 0.1407", rocket.ReferenceDiameter)
	}

	nose, ok := rocket.Components[0].(geometry.NoseCone)
	if !ok {
		t.Fatalf("component 0 is %T, want NoseCone", rocket.Components[0])
	}
	if math.Abs(nose.Length-0.3175) > 1e-12 {
		t.Errorf("nose length = %v m, want 0.3175", nose.Length)
	}

	fins, ok := rocket.Components[1].(geometry.FinSet)
	if !ok {
		t.Fatalf("component 1 is %T, want FinSet", rocket.Components[1])
	}
	if fins.Count != 3 {
		t.Errorf("fin count = %d, want 3", fins.Count)
	}
	if math.Abs(fins.PositionFromNoseTip-0.6858) > 1e-12 {
		t.Errorf("fin position = %v m, want 0.6858", fins.PositionFromNoseTip)
	}
}

func TestToRocketCustomProfile(t *testing.T) {
	cfg := GetPreset("demo-custom")
	rocket, err := cfg.ToRocket()
	if err != nil {
		t.Fatalf("ToRocket failed: %v", err)
	}

	var fairing geometry.PayloadFairing
	found := false
	for _, comp := range rocket.Components {
		if pf, ok := comp.(geometry.PayloadFairing); ok {
			fairing = pf
			found = true
		}
	}
	if !found {
		t.Fatal("demo-custom has no payload fairing")
	}
	if fairing.ShapeType != "custom" || len(fairing.Profile) == 0 {
		t.Fatalf("fairing = %+v, want a custom profile", fairing)
	}
	if math.Abs(fairing.Profile[0].X-0.7) > 1e-12 {
		t.Errorf("first profile x = %v m, want 0.7", fairing.Profile[0].X)
	}
}

func TestToRocketUnknownPart(t *testing.T) {
	cfg := &Config{
		Components: []ComponentConfig{{Part: "launch_lug"}},
	}
	if _, err := cfg.ToRocket(); err == nil {
		t.Error("expected error for unknown part")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rocket.yaml")
	original := GetPreset("minie-magg")

	if err := Save(path, original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Name != original.Name {
		t.Errorf("name = %q, want %q", loaded.Name, original.Name)
	}
	if len(loaded.Components) != len(original.Components) {
		t.Fatalf("components = %d, want %d", len(loaded.Components), len(original.Components))
	}
	if loaded.Components[0].Type != "ogive" {
		t.Errorf("nose type = %q, want ogive", loaded.Components[0].Type)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
