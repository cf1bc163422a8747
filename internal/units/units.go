// Package units holds the length conversions used at the edges of the
// engine: configs carry millimeters, the core works in meters, reports
// also print inches.
package units

const (
	mmPerMeter     = 1000.0
	inchesPerMeter = 39.3701
)

func MMToM(mm float64) float64 {
	return mm / mmPerMeter
}

func MToMM(m float64) float64 {
	return m * mmPerMeter
}

func MToInches(m float64) float64 {
	return m * inchesPerMeter
}
