// Package config loads rocket definitions from YAML. Definition files
// carry millimeters (the convention of the original catalog data); all
// values convert to meters when the geometry is built, and the engine
// never sees a millimeter.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/barrow/internal/geometry"
	"github.com/san-kum/barrow/internal/units"
)

type Config struct {
	Name                string            `yaml:"name"`
	ReferenceDiameterMM float64           `yaml:"reference_diameter_mm"`
	Components          []ComponentConfig `yaml:"components"`
}

// ComponentConfig is the union of every component's fields; Part selects
// which ones matter, mirroring the part tags of the definition format.
type ComponentConfig struct {
	Part string `yaml:"part"`
	Name string `yaml:"name"`

	// nosecone
	Type           string  `yaml:"type,omitempty"`
	LengthMM       float64 `yaml:"length_mm,omitempty"`
	BaseDiameterMM float64 `yaml:"base_diameter_mm,omitempty"`

	// body_tube
	DiameterMM float64 `yaml:"diameter_mm,omitempty"`

	// irregular_body
	FrontDiameterMM float64 `yaml:"front_diameter_mm,omitempty"`
	RearDiameterMM  float64 `yaml:"rear_diameter_mm,omitempty"`

	// payload_fairing
	ShapeType     string       `yaml:"shape_type,omitempty"`
	ProfilePoints [][2]float64 `yaml:"profile_points,omitempty"` // (x_mm, radius_mm) pairs

	// fin_set
	Count       int     `yaml:"count,omitempty"`
	RootChordMM float64 `yaml:"root_chord_mm,omitempty"`
	TipChordMM  float64 `yaml:"tip_chord_mm,omitempty"`
	SpanMM      float64 `yaml:"span_mm,omitempty"`
	SweepMM     float64 `yaml:"sweep_mm,omitempty"`
	ThicknessMM float64 `yaml:"thickness_mm,omitempty"`

	PositionFromNoseTipMM float64 `yaml:"position_from_nose_tip_mm,omitempty"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ToRocket converts the millimeter definition into an immutable
// meter-based Rocket for the engine.
func (c *Config) ToRocket() (geometry.Rocket, error) {
	rocket := geometry.Rocket{
		Name:              c.Name,
		ReferenceDiameter: units.MMToM(c.ReferenceDiameterMM),
	}

	for _, cc := range c.Components {
		switch cc.Part {
		case "nosecone":
			rocket.Components = append(rocket.Components, geometry.NoseCone{
				Name:         cc.Name,
				Shape:        cc.Type,
				Length:       units.MMToM(cc.LengthMM),
				BaseDiameter: units.MMToM(cc.BaseDiameterMM),
			})
		case "body_tube":
			rocket.Components = append(rocket.Components, geometry.BodyTube{
				Name:     cc.Name,
				Length:   units.MMToM(cc.LengthMM),
				Diameter: units.MMToM(cc.DiameterMM),
			})
		case "irregular_body":
			rocket.Components = append(rocket.Components, geometry.IrregularBody{
				Name:                cc.Name,
				Length:              units.MMToM(cc.LengthMM),
				FrontDiameter:       units.MMToM(cc.FrontDiameterMM),
				RearDiameter:        units.MMToM(cc.RearDiameterMM),
				PositionFromNoseTip: units.MMToM(cc.PositionFromNoseTipMM),
			})
		case "payload_fairing":
			var profile []geometry.ProfilePoint
			for _, p := range cc.ProfilePoints {
				profile = append(profile, geometry.ProfilePoint{
					X: units.MMToM(p[0]),
					Y: units.MMToM(p[1]),
				})
			}
			rocket.Components = append(rocket.Components, geometry.PayloadFairing{
				Name:         cc.Name,
				Length:       units.MMToM(cc.LengthMM),
				BaseDiameter: units.MMToM(cc.BaseDiameterMM),
				ShapeType:    cc.ShapeType,
				Profile:      profile,
			})
		case "fin_set":
			rocket.Components = append(rocket.Components, geometry.FinSet{
				Name:                cc.Name,
				Count:               cc.Count,
				RootChord:           units.MMToM(cc.RootChordMM),
				TipChord:            units.MMToM(cc.TipChordMM),
				Span:                units.MMToM(cc.SpanMM),
				Sweep:               units.MMToM(cc.SweepMM),
				Thickness:           units.MMToM(cc.ThicknessMM),
				PositionFromNoseTip: units.MMToM(cc.PositionFromNoseTipMM),
			})
		default:
			return geometry.Rocket{}, fmt.Errorf("unknown component part: %q", cc.Part)
		}
	}

	return rocket, nil
}
