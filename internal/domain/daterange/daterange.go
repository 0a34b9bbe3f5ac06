// Package daterange modela el rango de fechas seleccionado en el dashboard.
//
// Los campos derivados (día, semana, mes, año) se recalculan siempre a partir
// de las cadenas de inicio y fin; nunca se editan por separado.
package daterange

import (
	"errors"
	"strings"
	"time"
)

// Errores de validación del rango.
var (
	ErrMissingBounds = errors.New("daterange: startDate y endDate son obligatorios")
	ErrInvalidDate   = errors.New("daterange: formato de fecha inválido")
	ErrInvertedRange = errors.New("daterange: startDate posterior a endDate")
)

const dateLayout = "2006-01-02"

// Bound campos derivados de un extremo del rango.
type Bound struct {
	Day   int `json:"day"`
	Week  int `json:"week"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Range rango de fechas validado.
type Range struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Start     Bound  `json:"start"`
	End       Bound  `json:"end"`

	from    time.Time
	to      time.Time
	endOnly bool // endDate sin hora: se extiende al final del día
}

// Parse valida ambos extremos (YYYY-MM-DD o RFC 3339) y calcula los derivados.
func Parse(start, end string) (Range, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" || end == "" {
		return Range{}, ErrMissingBounds
	}
	from, _, err := parseDate(start)
	if err != nil {
		return Range{}, err
	}
	to, dateOnly, err := parseDate(end)
	if err != nil {
		return Range{}, err
	}
	if from.After(to) {
		return Range{}, ErrInvertedRange
	}
	return Range{
		StartDate: start,
		EndDate:   end,
		Start:     boundOf(from),
		End:       boundOf(to),
		from:      from,
		to:        to,
		endOnly:   dateOnly,
	}, nil
}

// Bounds devuelve [inicio, fin] inclusivos. Una fecha fin sin hora cubre el día completo.
func (r Range) Bounds() (time.Time, time.Time) {
	to := r.to
	if r.endOnly {
		to = to.Add(24*time.Hour - time.Millisecond)
	}
	return r.from, to
}

// IsZero indica que no hay rango seleccionado.
func (r Range) IsZero() bool {
	return r.StartDate == "" && r.EndDate == ""
}

// Key clave estable para caché.
func (r Range) Key() string {
	return r.StartDate + "_" + r.EndDate
}

func parseDate(s string) (time.Time, bool, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, true, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), false, nil
	}
	return time.Time{}, false, ErrInvalidDate
}

// boundOf semana = ceil(día/7), mes 1..12.
func boundOf(t time.Time) Bound {
	day := t.Day()
	return Bound{
		Day:   day,
		Week:  (day + 6) / 7,
		Month: int(t.Month()),
		Year:  t.Year(),
	}
}

// Selection contenedor del rango elegido por un administrador.
// Set con entrada inválida conserva el valor anterior y devuelve el error.
type Selection struct {
	current Range
}

// Set reemplaza el rango completo.
func (s *Selection) Set(start, end string) error {
	r, err := Parse(start, end)
	if err != nil {
		return err
	}
	s.current = r
	return nil
}

// Reset limpia todos los campos.
func (s *Selection) Reset() { s.current = Range{} }

// Current rango vigente (cero si no hay selección).
func (s *Selection) Current() Range { return s.current }

// IsZero indica que no hay selección.
func (s *Selection) IsZero() bool { return s.current.IsZero() }
