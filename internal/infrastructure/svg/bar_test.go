package svg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBars_GeneraSVG(t *testing.T) {
	html, err := Bars(0, 0, []float64{1500000, 0, 320000}, []float64{20, 0, 10}, []string{"Jan", "Feb", "Mar"}, BarOpts{
		Title:        "Monthly Sales",
		SeriesALabel: "Total Revenue (PKR)",
		SeriesBLabel: "Total Sales",
	})
	require.NoError(t, err)
	out := string(html)
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Equal(t, 6, strings.Count(out, "<rect")-2, "una barra por serie y etiqueta")
	assert.Contains(t, out, "Total Revenue (PKR)")
	assert.Contains(t, out, "1.5M")
	assert.NotContains(t, out, "NaN")
}

func TestBars_SeriesEnCero(t *testing.T) {
	html, err := Bars(300, 200, make([]float64, 7), nil, []string{"M", "T", "W", "T", "F", "S", "S"}, BarOpts{})
	require.NoError(t, err)
	assert.NotContains(t, string(html), "NaN")
}

func TestBars_Errores(t *testing.T) {
	_, err := Bars(300, 200, []float64{1}, nil, nil, BarOpts{})
	assert.Error(t, err)
	_, err = Bars(300, 200, []float64{1, 2}, nil, []string{"a"}, BarOpts{})
	assert.Error(t, err)
	_, err = Bars(40, 40, []float64{1}, nil, []string{"a"}, BarOpts{})
	assert.Error(t, err)
}
