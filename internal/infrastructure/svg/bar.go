// Package svg dibuja las gráficas de ventas como SVG en línea para las páginas HTML.
package svg

import (
	"fmt"
	"html/template"
	"math"
	"strings"
)

// BarOpts personaliza la gráfica de barras.
type BarOpts struct {
	Title        string
	Description  string
	SeriesALabel string
	SeriesBLabel string
	ColorA       string
	ColorB       string
	AxisColor    string
	GridColor    string
	Padding      float64
	TickCount    int
}

// Valores por defecto de las gráficas.
const (
	DefaultWidth   = 720
	DefaultHeight  = 240
	DefaultPadding = 36.0
	DefaultTicks   = 5
)

// Bars barras agrupadas de dos series no negativas. Cada serie tiene su propia
// escala: A en el eje izquierdo, B en el derecho (ingreso vs. número de ventas).
func Bars(width, height int, seriesA, seriesB []float64, labels []string, opts BarOpts) (template.HTML, error) {
	if len(labels) == 0 {
		return "", fmt.Errorf("svg: labels required")
	}
	if len(seriesA) != len(labels) || (len(seriesB) > 0 && len(seriesB) != len(labels)) {
		return "", fmt.Errorf("svg: series length must match labels")
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	padding := opts.Padding
	if padding <= 0 {
		padding = DefaultPadding
	}
	ticks := opts.TickCount
	if ticks <= 0 {
		ticks = DefaultTicks
	}

	axisColor := fallback(opts.AxisColor, "#475569")
	gridColor := fallback(opts.GridColor, "#cbd5e1")
	colorA := fallback(opts.ColorA, "#3C50E0")
	colorB := fallback(opts.ColorB, "#80CAEE")
	labelA := fallback(opts.SeriesALabel, "Series A")
	labelB := fallback(opts.SeriesBLabel, "Series B")

	chartWidth := float64(width) - 2*padding
	chartHeight := float64(height) - 2*padding
	if chartWidth <= 0 || chartHeight <= 0 {
		return "", fmt.Errorf("svg: viewport too small")
	}
	maxA := maxOf(seriesA)
	maxB := maxOf(seriesB)
	bottom := padding + chartHeight

	titleID := makeID(opts.Title, "bar-title")
	descID := makeID(opts.Title, "bar-desc")

	var b strings.Builder
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %d %d\" role=\"img\" aria-labelledby=\"%s %s\">", width, height, titleID, descID)
	fmt.Fprintf(&b, "<title id=\"%s\">%s</title>", titleID, template.HTMLEscapeString(fallback(opts.Title, "Bar chart")))
	fmt.Fprintf(&b, "<desc id=\"%s\">%s</desc>", descID, template.HTMLEscapeString(fallback(opts.Description, "Grouped bar comparison")))

	for i := 0; i <= ticks; i++ {
		ratio := float64(i) / float64(ticks)
		y := bottom - ratio*chartHeight
		fmt.Fprintf(&b, "<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"%s\" stroke-width=\"0.5\" stroke-dasharray=\"2,4\" aria-hidden=\"true\"></line>", padding, y, padding+chartWidth, y, gridColor)
		fmt.Fprintf(&b, "<text x=\"%.2f\" y=\"%.2f\" fill=\"%s\" font-size=\"10\" text-anchor=\"end\">%s</text>", padding-4, y+4, axisColor, formatTick(maxA*ratio))
		if len(seriesB) > 0 {
			fmt.Fprintf(&b, "<text x=\"%.2f\" y=\"%.2f\" fill=\"%s\" font-size=\"10\" text-anchor=\"start\">%s</text>", padding+chartWidth+4, y+4, axisColor, formatTick(maxB*ratio))
		}
	}
	fmt.Fprintf(&b, "<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"%s\" stroke-width=\"1\"></line>", padding, bottom, padding+chartWidth, bottom, axisColor)

	groupWidth := chartWidth / float64(len(labels))
	barWidth := groupWidth / 3
	for i, label := range labels {
		baseX := padding + float64(i)*groupWidth
		h := chartHeight * seriesA[i] / maxA
		fmt.Fprintf(&b, "<rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" fill=\"%s\" aria-label=\"%s %s\"></rect>", baseX+barWidth*0.3, bottom-h, barWidth, h, colorA, template.HTMLEscapeString(labelA), template.HTMLEscapeString(label))
		if len(seriesB) > 0 {
			h = chartHeight * seriesB[i] / maxB
			fmt.Fprintf(&b, "<rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" fill=\"%s\" aria-label=\"%s %s\"></rect>", baseX+barWidth*1.4, bottom-h, barWidth, h, colorB, template.HTMLEscapeString(labelB), template.HTMLEscapeString(label))
		}
		fmt.Fprintf(&b, "<text x=\"%.2f\" y=\"%.2f\" fill=\"%s\" font-size=\"10\" text-anchor=\"middle\">%s</text>", baseX+groupWidth/2, bottom+14, axisColor, template.HTMLEscapeString(label))
	}

	legendY := math.Max(padding-12, 12)
	fmt.Fprintf(&b, "<rect x=\"%.2f\" y=\"%.2f\" width=\"10\" height=\"10\" fill=\"%s\"></rect>", padding, legendY-8, colorA)
	fmt.Fprintf(&b, "<text x=\"%.2f\" y=\"%.2f\" fill=\"%s\" font-size=\"10\">%s</text>", padding+14, legendY, axisColor, template.HTMLEscapeString(labelA))
	if len(seriesB) > 0 {
		fmt.Fprintf(&b, "<rect x=\"%.2f\" y=\"%.2f\" width=\"10\" height=\"10\" fill=\"%s\"></rect>", padding+150, legendY-8, colorB)
		fmt.Fprintf(&b, "<text x=\"%.2f\" y=\"%.2f\" fill=\"%s\" font-size=\"10\">%s</text>", padding+164, legendY, axisColor, template.HTMLEscapeString(labelB))
	}

	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}

// maxOf máximo de la serie; 1 si todo es cero o está vacía (evita dividir por cero).
func maxOf(series []float64) float64 {
	m := 0.0
	for _, v := range series {
		if v > m {
			m = v
		}
	}
	if m == 0 {
		return 1
	}
	return m
}

func fallback(value, defaultValue string) string {
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	return value
}

func makeID(base, suffix string) string {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, strings.ToLower(strings.TrimSpace(base)))
	cleaned = strings.Trim(cleaned, "-")
	if cleaned == "" {
		cleaned = "chart"
	}
	return cleaned + "-" + suffix
}

func formatTick(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", v/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fk", v/1_000)
	}
	return fmt.Sprintf("%.0f", v)
}
