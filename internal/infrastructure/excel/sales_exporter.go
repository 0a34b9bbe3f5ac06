// Package excel exporta la tabla de ventas a XLSX.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	appsales "github.com/zyck/property-admin/internal/application/sales"
	"github.com/zyck/property-admin/internal/domain/entity"
)

var _ appsales.SalesExporter = (*SalesExporter)(nil)

// SheetName hoja con las ventas.
const SheetName = "Sales"

// SalesHeaders encabezados en orden de columna.
var SalesHeaders = []string{
	"Invoice No", "Property Title", "Payment Amount (PKR)", "Payment Method",
	"Payment Gender", "First Name", "Last Name", "Email", "Phone", "Created At",
}

// SalesExporter implementa sales.SalesExporter con excelize.
type SalesExporter struct{}

// NewSalesExporter construye el exportador.
func NewSalesExporter() *SalesExporter { return &SalesExporter{} }

// ExportSales una fila por venta bajo la fila de encabezados.
func (e *SalesExporter) ExportSales(_ context.Context, rows []entity.SaleWithUser) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(SalesHeaders))
	for i, h := range SalesHeaders {
		header[i] = h
	}
	if err := file.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	bold, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	if err := file.SetCellStyle(SheetName, "A1", "J1", bold); err != nil {
		return nil, fmt.Errorf("apply header style: %w", err)
	}
	money, err := file.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, fmt.Errorf("amount style: %w", err)
	}

	for i, r := range rows {
		line := i + 2
		cell, err := excelize.CoordinatesToCellName(1, line)
		if err != nil {
			return nil, err
		}
		values := []any{
			r.InvoiceNo,
			r.PropertyTitle,
			r.PaymentAmount.InexactFloat64(),
			r.PaymentMethod,
			r.PaymentGender,
			r.FirstName,
			r.LastName,
			r.Email,
			r.PhoneNumber,
			r.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		if err := file.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		amountCell := fmt.Sprintf("C%d", line)
		if err := file.SetCellStyle(SheetName, amountCell, amountCell, money); err != nil {
			return nil, fmt.Errorf("row %d style: %w", line, err)
		}
	}
	if err := file.SetColWidth(SheetName, "A", "J", 20); err != nil {
		return nil, fmt.Errorf("column width: %w", err)
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
