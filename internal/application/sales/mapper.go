package sales

import (
	"github.com/zyck/property-admin/internal/application/dto"
	"github.com/zyck/property-admin/internal/domain/entity"
)

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:            s.ID,
		InvoiceNo:     s.InvoiceNo,
		PropertyTitle: s.PropertyTitle,
		PaymentAmount: s.PaymentAmount,
		PaymentMethod: s.PaymentMethod,
		PaymentGender: s.PaymentGender,
		UserID:        s.UserID,
		CreatedAt:     s.CreatedAt,
	}
}

func toSaleRowResponse(r entity.SaleWithUser) dto.SaleRowResponse {
	return dto.SaleRowResponse{
		SaleResponse: toSaleResponse(&r.Sale),
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		PhoneNumber:  r.PhoneNumber,
	}
}
