package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Property publicación de un inmueble. Solo lectura salvo el borrado.
type Property struct {
	ID          int64
	UserID      string
	Description string
	Price       decimal.Decimal
	Images      []PropertyImage
	Location    *PropertyLocation
	Contact     *PropertyContact
	CreatedAt   time.Time
}

// PropertyImage imagen de la publicación.
type PropertyImage struct {
	ID         int64
	URL        string
	PropertyID int64
	CreatedAt  time.Time
}

// PropertyContact datos de contacto de la publicación.
type PropertyContact struct {
	ID         int64
	Name       string
	Phone      string
	Email      string
	PropertyID int64
	CreatedAt  time.Time
}

// Region provincia o ciudad (catálogo).
type Region struct {
	ID    int64
	Value string
}

// PropertyLocation ubicación de la publicación.
type PropertyLocation struct {
	ID            int64
	PropertyID    int64
	StreetAddress string
	City          Region
	State         Region
	CreatedAt     time.Time
}

// LocationWithProperty fila de ubicación unida al resumen de su publicación (reporte de provincias).
type LocationWithProperty struct {
	PropertyLocation
	Price       decimal.Decimal
	Description string
	PropertyAt  time.Time
}
