package config

import "sort"

// Presets are catalog rockets with published CoP figures, handy for quick
// runs and regression checks. Dimensions are millimeters.
var Presets = map[string]*Config{
	"minie-magg": {
		Name:                "LOC Precision Minie-Magg",
		ReferenceDiameterMM: 140.7,
		Components: []ComponentConfig{
			{Part: "nosecone", Name: "nose", Type: "ogive", LengthMM: 317.5, BaseDiameterMM: 140.7},
			{Part: "body_tube", Name: "airframe", LengthMM: 368.3, DiameterMM: 140.7},
			{Part: "fin_set", Name: "fins", Count: 3, RootChordMM: 254.0, TipChordMM: 0.0,
				SpanMM: 133.4, SweepMM: 228.6, ThicknessMM: 3.2, PositionFromNoseTipMM: 685.8},
		},
	},
	"hi-tech": {
		Name:                "LOC Precision HI-TECH H45",
		ReferenceDiameterMM: 66.0,
		Components: []ComponentConfig{
			{Part: "nosecone", Name: "nose", Type: "ogive", LengthMM: 228.6, BaseDiameterMM: 66.0},
			{Part: "body_tube", Name: "airframe", LengthMM: 901.4, DiameterMM: 66.0},
			{Part: "fin_set", Name: "fins", Count: 3, RootChordMM: 115.0, TipChordMM: 64.8,
				SpanMM: 99.8, SweepMM: 13.0, ThicknessMM: 3.0, PositionFromNoseTipMM: 1130.0},
		},
	},
	"expediter": {
		Name:                "LOC Expediter",
		ReferenceDiameterMM: 76.2,
		Components: []ComponentConfig{
			{Part: "nosecone", Name: "nose", Type: "ogive", LengthMM: 285.8, BaseDiameterMM: 76.2},
			{Part: "irregular_body", Name: "transition", LengthMM: 63.5, FrontDiameterMM: 76.2,
				RearDiameterMM: 101.6, PositionFromNoseTipMM: 286.0},
			{Part: "body_tube", Name: "booster", LengthMM: 2350.0, DiameterMM: 101.6},
			{Part: "fin_set", Name: "fins", Count: 3, RootChordMM: 266.7, TipChordMM: 65.0,
				SpanMM: 108.0, SweepMM: 199.9, ThicknessMM: 4.8, PositionFromNoseTipMM: 2700.0},
		},
	},
	"demo-custom": {
		Name:                "Demo Custom Fairing",
		ReferenceDiameterMM: 100.0,
		Components: []ComponentConfig{
			{Part: "nosecone", Name: "nose", Type: "ogive", LengthMM: 300.0, BaseDiameterMM: 100.0},
			{Part: "body_tube", Name: "airframe", LengthMM: 400.0, DiameterMM: 100.0},
			{Part: "payload_fairing", Name: "fairing", LengthMM: 200.0, BaseDiameterMM: 160.0,
				ShapeType: "custom",
				ProfilePoints: [][2]float64{
					{700, 50}, {750, 58}, {800, 68}, {850, 76}, {900, 80},
				}},
			{Part: "fin_set", Name: "fins", Count: 4, RootChordMM: 150.0, TipChordMM: 60.0,
				SpanMM: 90.0, SweepMM: 40.0, ThicknessMM: 3.0, PositionFromNoseTipMM: 1100.0},
		},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
