package viz

import "github.com/guptarohit/asciigraph"

// ProfileChart plots a sampled curve (radius or area rate against axial
// position) as an ascii graph.
func ProfileChart(values []float64, caption string) string {
	return asciigraph.Plot(values,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}
