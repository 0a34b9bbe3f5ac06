package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PropertyImageResponse imagen publicada.
type PropertyImageResponse struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// PropertyLocationResponse ubicación de la publicación.
type PropertyLocationResponse struct {
	City          RegionResponse `json:"city"`
	State         RegionResponse `json:"state"`
	StreetAddress string         `json:"streetAddress"`
}

// PropertyContactResponse contacto de la publicación.
type PropertyContactResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// PropertyResponse propiedad del usuario.
type PropertyResponse struct {
	ID          int64                     `json:"id"`
	Description string                    `json:"description"`
	Price       decimal.Decimal           `json:"price"`
	CreatedAt   time.Time                 `json:"createdAt"`
	Images      []PropertyImageResponse   `json:"images"`
	Location    *PropertyLocationResponse `json:"location"`
	Contact     *PropertyContactResponse  `json:"contact"`
}

// PropertiesResponse respuesta de GET /api/properties. La clave conserva la
// grafía que consume el cliente.
type PropertiesResponse struct {
	UserProeperties []PropertyResponse `json:"userProeperties"`
}
