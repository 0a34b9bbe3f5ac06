package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest body de POST /api/sales.
// ID identifica al usuario; si no existe se crea con FirstName, LastName y Email.
// InvoiceNumber vacío = se genera en el servidor.
type CreateSaleRequest struct {
	ID            string          `json:"id" validate:"required"`
	InvoiceNumber string          `json:"invoiceNumber" validate:"omitempty,max=64"`
	PropertyTitle string          `json:"propertyTitle" validate:"omitempty,max=300"`
	Payment       decimal.Decimal `json:"payment"`
	PaymentMethod string          `json:"paymentMethod" validate:"required"`
	PaymentGender string          `json:"paymentGender" validate:"required"`
	FirstName     string          `json:"firstName" validate:"omitempty,max=100"`
	LastName      string          `json:"lastName" validate:"omitempty,max=100"`
	Email         string          `json:"email" validate:"omitempty,email"`
}

// SaleResponse venta registrada. Las claves respetan el esquema que consume el panel.
type SaleResponse struct {
	ID            string          `json:"id"`
	InvoiceNo     string          `json:"invoiceNo"`
	PropertyTitle string          `json:"PropertyTitle"`
	PaymentAmount decimal.Decimal `json:"PaymentAmount"`
	PaymentMethod string          `json:"PaymentMethod"`
	PaymentGender string          `json:"PaymentGender"`
	UserID        string          `json:"userId"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// CreateSaleResponse respuesta de POST /api/sales y POST /api/invoice.
type CreateSaleResponse struct {
	Message string       `json:"message"`
	Invoice SaleResponse `json:"invoice"`
}

// SaleRowResponse fila de la tabla de ventas.
type SaleRowResponse struct {
	SaleResponse
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// SalesTableQuery parámetros de GET /api/sales.
type SalesTableQuery struct {
	StartDate     string `query:"startDate"`
	EndDate       string `query:"endDate"`
	Search        string `query:"search" validate:"max=200"`
	SortField     string `query:"sortField"`
	SortDir       string `query:"sortDir" validate:"omitempty,oneof=asc desc"`
	Page          int    `query:"page" validate:"min=0"`
	PageSize      int    `query:"pageSize" validate:"omitempty,pagesize"`
	ViewportWidth int    `query:"viewportWidth" validate:"min=0"`
}

// SalesTableResponse página de la tabla con columnas visibles.
type SalesTableResponse struct {
	Items []SaleRowResponse `json:"items"`
	PageMeta
	SortField string   `json:"sortField"`
	SortDir   string   `json:"sortDir"`
	Columns   []string `json:"columns"`
	Empty     bool     `json:"empty"`
}

// ChartSeries serie de una gráfica de barras.
type ChartSeries struct {
	Labels  []string          `json:"labels"`
	Revenue []decimal.Decimal `json:"revenue"`
	Sales   []int             `json:"sales"`
}

// ChartsResponse respuesta de GET /api/sales/charts.
// Monthly.Sales va escalado x10 para el eje; Weekday.Sales sin escalar.
type ChartsResponse struct {
	Monthly      ChartSeries     `json:"monthly"`
	Weekday      ChartSeries     `json:"weekday"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalSales   int             `json:"totalSales"`
}

// InvoiceNumberResponse número de factura recién generado.
type InvoiceNumberResponse struct {
	InvoiceNumber string `json:"invoiceNumber"`
}

// InvoicePDFRequest formulario para renderizar la factura sin persistirla.
type InvoicePDFRequest struct {
	InvoiceNumber string          `json:"invoiceNumber" validate:"required"`
	Date          string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	CustomerName  string          `json:"customerName" validate:"required,max=200"`
	PropertyTitle string          `json:"propertyTitle" validate:"required,max=300"`
	Payment       decimal.Decimal `json:"payment"`
	PaymentMethod string          `json:"paymentMethod" validate:"required"`
	PaymentGender string          `json:"paymentGender" validate:"required"`
}
