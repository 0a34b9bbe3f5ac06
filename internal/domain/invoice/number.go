// Package invoice genera y valida los números de factura.
//
// Formato: {PREFIX}-{YYYYMMDD}-{últimos 6 dígitos de epoch ms}-{3 caracteres base 36 en mayúscula}.
// Ej: ZYCK-20250225-686722-XBF. No es único por construcción; la unicidad la
// garantiza el índice único de la base y el reintento del caso de uso.
package invoice

import (
	"crypto/rand"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
)

// DefaultPrefix prefijo de la marca.
const DefaultPrefix = "ZYCK"

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var numberRe = regexp.MustCompile(`^[A-Z0-9]+-\d{8}-\d{6}-[0-9A-Z]{3}$`)

// NumberGenerator genera números de factura. Clock y Rand son inyectables para tests.
type NumberGenerator struct {
	Prefix string
	Clock  func() time.Time
	Rand   io.Reader
}

// NewNumberGenerator generador con reloj real y crypto/rand.
func NewNumberGenerator(prefix string) *NumberGenerator {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &NumberGenerator{Prefix: prefix, Clock: time.Now, Rand: rand.Reader}
}

// Next devuelve un número nuevo.
func (g *NumberGenerator) Next() (string, error) {
	clock := g.Clock
	if clock == nil {
		clock = time.Now
	}
	src := g.Rand
	if src == nil {
		src = rand.Reader
	}
	prefix := g.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	now := clock()
	ms := fmt.Sprintf("%06d", now.UnixMilli()%1_000_000)

	buf := make([]byte, 3)
	if _, err := io.ReadFull(src, buf); err != nil {
		return "", fmt.Errorf("invoice: leer aleatorio: %w", err)
	}
	for i, b := range buf {
		buf[i] = base36[int(b)%len(base36)]
	}
	return fmt.Sprintf("%s-%s-%s-%s", strings.ToUpper(prefix), now.Format("20060102"), ms, buf), nil
}

// Valid indica si n respeta el formato.
func Valid(n string) bool {
	return numberRe.MatchString(n)
}
