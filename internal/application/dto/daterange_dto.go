package dto

import "github.com/zyck/property-admin/internal/domain/daterange"

// DateRangeRequest body de PUT /api/session/date-range.
type DateRangeRequest struct {
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

// DateRangeResponse rango vigente de la sesión; Selected=false si no hay.
type DateRangeResponse struct {
	Selected bool             `json:"selected"`
	Range    *daterange.Range `json:"range,omitempty"`
}
