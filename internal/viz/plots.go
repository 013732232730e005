package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/macma/seamtrace/internal/signature"
)

const plotWidth = 100

// downsample thins a series to at most plotWidth points so long runs
// stay readable in a terminal.
func downsample(data []float64) []float64 {
	if len(data) <= plotWidth {
		return data
	}
	out := make([]float64, plotWidth)
	for i := range out {
		out[i] = data[i*len(data)/plotWidth]
	}
	return out
}

// Series renders one named signature series as an ascii line plot.
func Series(title string, data []float64) string {
	graph := asciigraph.Plot(downsample(data),
		asciigraph.Height(12),
		asciigraph.Caption(title),
	)
	return PanelStyle.Render(graph)
}

// ParityStrip renders the w1 sequence as a step strip: one glyph per
// downsampled sample, high block for parity 1.
func ParityStrip(w1 []int) string {
	vals := make([]float64, len(w1))
	for i, p := range w1 {
		vals[i] = float64(p)
	}
	thinned := downsample(vals)

	var sb strings.Builder
	for _, v := range thinned {
		if v >= 0.5 {
			sb.WriteString(ParityOn.Render("▀"))
		} else {
			sb.WriteString(ParityOff.Render("▄"))
		}
	}
	return PanelStyle.Render(sb.String() + "\n" + LabelStyle.Render("w1 parity (high = flipped side)"))
}

// Summary renders the headline numbers of a bundle.
func Summary(b *signature.Bundle) string {
	lines := []string{
		fmt.Sprintf("%s %s", LabelStyle.Render("manifold:"), ValueStyle.Render(b.Manifold)),
		fmt.Sprintf("%s %s", LabelStyle.Render("samples:"), ValueStyle.Render(fmt.Sprintf("%d", b.Len()))),
		fmt.Sprintf("%s %s", LabelStyle.Render("parity transitions:"), ValueStyle.Render(fmt.Sprintf("%d", b.ParityTransitions()))),
	}
	if b.SeamCrossings > 0 {
		lines = append(lines, fmt.Sprintf("%s %s",
			LabelStyle.Render("seam crossings:"), ValueStyle.Render(fmt.Sprintf("%d", b.SeamCrossings))))
	}
	if len(b.Transitions) > 0 {
		lines = append(lines, fmt.Sprintf("%s %s",
			LabelStyle.Render("chart transitions:"), ValueStyle.Render(fmt.Sprintf("%d", len(b.Transitions)))))
	}
	if len(b.Helicity) > 0 {
		lines = append(lines, fmt.Sprintf("%s %s",
			LabelStyle.Render("final helicity:"), ValueStyle.Render(fmt.Sprintf("%.4f", b.Helicity[len(b.Helicity)-1]))))
	}
	return PanelStyle.Render(strings.Join(lines, "\n"))
}

// Render assembles the full terminal report for a bundle.
func Render(b *signature.Bundle) string {
	sections := []string{
		TitleStyle.Render(fmt.Sprintf("seamtrace · %s", b.Manifold)),
		Summary(b),
		Series("theta (unwrapped phase)", b.Theta),
		Series("delta (distance to seam)", b.Delta),
		ParityStrip(b.W1),
	}
	if len(b.Helicity) > 0 {
		sections = append(sections, Series("helicity (running winding)", b.Helicity))
	}
	return strings.Join(sections, "\n")
}
