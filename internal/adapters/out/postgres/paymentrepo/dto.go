// Package paymentrepo provides data transfer objects and mapping functions for payment persistence.
package paymentrepo

import (
	"time"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for persisting payment records.
type PaymentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID uuid.UUID `gorm:"type:uuid;index"`
	Amount    float64
	Method    int
	CreatedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:        aggregate.ID().Bytes(),
		BookingID: aggregate.BookingID().Bytes(),
		Amount:    aggregate.Amount(),
		Method:    int(aggregate.PaymentMethod()),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	bookingID, err := kernel.UUIDFromBytes(dto.BookingID[:])
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(id, bookingID, dto.Amount, payment.Method(dto.Method), dto.CreatedAt)
}
