package dto

// PageMeta metadatos de página en respuestas paginadas.
type PageMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int   `json:"total"`
	TotalPages int   `json:"totalPages"`
	From       int   `json:"from"`
	To         int   `json:"to"`
	Pages      []int `json:"pages"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta de confirmación simple.
type MessageResponse struct {
	Message string `json:"message"`
}
