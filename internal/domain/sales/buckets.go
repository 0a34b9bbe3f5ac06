package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// countScale factor cosmético del eje de conteo en la gráfica mensual.
const countScale = 10

// MonthLabels etiquetas de la gráfica mensual.
var MonthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// WeekdayLabels etiquetas de la gráfica semanal (lunes primero).
var WeekdayLabels = [7]string{"M", "T", "W", "T", "F", "S", "S"}

// Bucket acumulado de una barra.
type Bucket struct {
	Label       string          `json:"label"`
	Revenue     decimal.Decimal `json:"revenue"`
	Count       int             `json:"count"`
	ScaledCount int             `json:"scaledCount"`
}

// MonthlyBuckets 12 cubetas por mes calendario de createdAt (UTC).
// ScaledCount = Count*10.
func MonthlyBuckets(rows []Row) [12]Bucket {
	var out [12]Bucket
	for i := range out {
		out[i] = Bucket{Label: MonthLabels[i], Revenue: decimal.Zero}
	}
	for _, r := range rows {
		m := int(r.CreatedAt.UTC().Month()) - 1
		out[m].Revenue = out[m].Revenue.Add(r.PaymentAmount)
		out[m].Count++
	}
	for i := range out {
		out[i].ScaledCount = out[i].Count * countScale
	}
	return out
}

// WeekdayBuckets 7 cubetas lunes=0 .. domingo=6, ingreso sin escalar.
func WeekdayBuckets(rows []Row) [7]Bucket {
	var out [7]Bucket
	for i := range out {
		out[i] = Bucket{Label: WeekdayLabels[i], Revenue: decimal.Zero}
	}
	for _, r := range rows {
		d := weekdayIndex(r.CreatedAt.UTC().Weekday())
		out[d].Revenue = out[d].Revenue.Add(r.PaymentAmount)
		out[d].Count++
	}
	for i := range out {
		out[i].ScaledCount = out[i].Count
	}
	return out
}

// weekdayIndex time.Sunday=0 -> 6, lunes -> 0.
func weekdayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// TotalRevenue suma de todos los montos.
func TotalRevenue(rows []Row) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.PaymentAmount)
	}
	return total
}
