package geometry

// Component is the closed set of rocket parts the CoP engine knows about.
// The unexported marker keeps the set sealed so the aggregator's type
// switch is exhaustive over everything that can implement it.
type Component interface {
	Label() string
	isComponent()
}

// ProfilePoint is one (axial position, radius) sample of an axisymmetric
// body outline, in meters.
type ProfilePoint struct {
	X float64
	Y float64
}

type NoseCone struct {
	Name   string
	Shape  string // "ogive" or "cone"
	Length float64
	// BaseDiameter is carried for completeness; the Barrowman nose
	// contribution does not depend on it.
	BaseDiameter float64
}

type BodyTube struct {
	Name     string
	Length   float64
	Diameter float64
}

type IrregularBody struct {
	Name                string
	Length              float64
	FrontDiameter       float64
	RearDiameter        float64
	PositionFromNoseTip float64
}

type PayloadFairing struct {
	Name         string
	Length       float64
	BaseDiameter float64
	// ShapeType is one of "conical", "ogive", "parabolic" or "custom".
	ShapeType string
	// Profile holds the sampled outline for ShapeType == "custom".
	Profile []ProfilePoint
}

type FinSet struct {
	Name                string
	Count               int
	RootChord           float64
	TipChord            float64
	Span                float64
	Sweep               float64
	Thickness           float64
	PositionFromNoseTip float64
}

func (c NoseCone) isComponent()       {}
func (c BodyTube) isComponent()       {}
func (c IrregularBody) isComponent()  {}
func (c PayloadFairing) isComponent() {}
func (c FinSet) isComponent()         {}

func (c NoseCone) Label() string {
	return labelOr(c.Name, "nosecone")
}

func (c BodyTube) Label() string {
	return labelOr(c.Name, "body_tube")
}

func (c IrregularBody) Label() string {
	return labelOr(c.Name, "irregular_body")
}

func (c PayloadFairing) Label() string {
	return labelOr(c.Name, "payload_fairing")
}

func (c FinSet) Label() string {
	return labelOr(c.Name, "fin_set")
}

func labelOr(name, kind string) string {
	if name != "" {
		return name
	}
	return kind
}

// Rocket is an ordered list of components plus the reference diameter used
// by the fin-set formula. All lengths are meters. Rockets are built once by
// the loader and only read afterwards.
type Rocket struct {
	Name              string
	ReferenceDiameter float64
	Components        []Component
}
