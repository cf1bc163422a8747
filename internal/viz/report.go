package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/barrow/internal/barrowman"
	"github.com/san-kum/barrow/internal/units"
)

// RenderBreakdown formats a CoP result as a terminal report: overall CoP
// in meters and inches, the per-component table, and any warnings.
func RenderBreakdown(rocketName string, res *barrowman.Result) string {
	var sb strings.Builder

	sb.WriteString(Title.Render(rocketName) + "\n")
	sb.WriteString(fmt.Sprintf("%s %s m  (%s in)\n",
		Label.Render("overall CoP from nose tip:"),
		Value.Render(fmt.Sprintf("%.4f", res.XCP)),
		Value.Render(fmt.Sprintf("%.2f", units.MToInches(res.XCP))),
	))
	sb.WriteString("\n")

	labels := make([]string, 0, len(res.Contributions))
	for label := range res.Contributions {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	sb.WriteString(Subtle.Render(fmt.Sprintf("%-18s %12s %12s", "component", "x_cp [m]", "CNa")) + "\n")
	for _, label := range labels {
		c := res.Contributions[label]
		line := fmt.Sprintf("%-18s %12.4f %12.4f", label, c.XCP, c.CNAlpha)
		if c.CNAlpha == 0 {
			sb.WriteString(Subtle.Render(line) + "\n")
		} else {
			sb.WriteString(line + "\n")
		}
	}

	for _, w := range res.Warnings {
		sb.WriteString(WarningStyle.Render("warning: "+w.String()) + "\n")
	}

	return Panel.Render(sb.String())
}
