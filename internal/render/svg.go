// Package render draws panel views: as text for the terminal, and the skill
// radar as a standalone SVG document.
package render

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/longkey1/twin/internal/twin/radar"
)

const (
	gridStroke = "#e2e8f0"
	dataStroke = "#3b82f6"
	dataFill   = "rgba(59, 130, 246, 0.2)"
	labelFill  = "#64748b"
	pointR     = 4
)

func points(ps []radar.Point) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

// SVG writes chart as an SVG document.
func SVG(w io.Writer, chart *radar.Chart, title string) error {
	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g" overflow="visible">`+"\n",
		chart.Size, chart.Size, chart.Size, chart.Size)
	if title != "" {
		fmt.Fprintf(&b, "  <title>%s</title>\n", html.EscapeString(title))
	}

	for _, ring := range chart.Rings {
		fmt.Fprintf(&b, `  <polygon class="level" data-level="%g" points="%s" fill="none" stroke="%s" stroke-width="1"/>`+"\n",
			ring.Level, points(ring.Points), gridStroke)
	}

	for _, axis := range chart.Axes {
		fmt.Fprintf(&b, `  <line class="axis" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1"/>`+"\n",
			chart.Center.X, chart.Center.Y, axis.End.X, axis.End.Y, gridStroke)
	}

	fmt.Fprintf(&b, `  <polygon class="data" points="%s" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
		points(chart.DataPolygon()), dataFill, dataStroke)

	for _, axis := range chart.Axes {
		fmt.Fprintf(&b, `  <circle class="point" cx="%.2f" cy="%.2f" r="%d" fill="%s"/>`+"\n",
			axis.Data.X, axis.Data.Y, pointR, dataStroke)
	}

	for _, axis := range chart.Axes {
		fmt.Fprintf(&b, `  <text class="label" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" font-size="12" fill="%s">%s</text>`+"\n",
			axis.Label.X, axis.Label.Y, labelFill, html.EscapeString(axis.Name))
	}

	b.WriteString("</svg>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSVGFile writes chart as an SVG document to path.
func WriteSVGFile(path string, chart *radar.Chart, title string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create svg file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close svg file: %w", cerr)
		}
	}()

	if err := SVG(f, chart, title); err != nil {
		return fmt.Errorf("failed to write svg file: %w", err)
	}
	return nil
}
