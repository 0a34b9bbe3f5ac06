package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserDetailResponse fila de usersDetails en GET /api/listing.
type UserDetailResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListingResponse conteos del rango y detalle de usuarios.
type ListingResponse struct {
	Users        int64                `json:"users"`
	Listings     int64                `json:"listings"`
	UsersDetails []UserDetailResponse `json:"usersDetails"`
}

// TotalsResponse conteos globales (GET /api/listing/totals).
type TotalsResponse struct {
	Users    int64 `json:"users"`
	Listings int64 `json:"listings"`
}

// RegionResponse ciudad o provincia.
type RegionResponse struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}

// ProvinceRow ubicación creada en el mes con el resumen de su propiedad.
type ProvinceRow struct {
	ID            int64           `json:"id"`
	PropertyID    int64           `json:"propertyId"`
	StreetAddress string          `json:"streetAddress"`
	City          RegionResponse  `json:"city"`
	State         RegionResponse  `json:"state"`
	CreatedAt     time.Time       `json:"createdAt"`
	Price         decimal.Decimal `json:"price"`
	Description   string          `json:"description"`
}

// ProvincesResponse respuesta de GET /api/provinces.
type ProvincesResponse struct {
	Province []ProvinceRow `json:"province"`
}

// ProvinceSummary agregado por provincia del mes.
type ProvinceSummary struct {
	Month     int              `json:"month"`
	Year      int              `json:"year"`
	Total     int              `json:"total"`
	Provinces map[string]int64 `json:"provinces"`
}
