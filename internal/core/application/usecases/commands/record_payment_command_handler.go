package commands

import (
	"context"

	"servicebooking/internal/core/domain/model/payment"
)

// RecordPaymentCommandHandler handles manual payment recording.
// The stored amount is the booking's snapshotted amount.
type RecordPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
func NewRecordPaymentCommandHandler(uowFactory PaymentUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment recording command.
// The booking must exist; its amount is copied into the record.
func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paidBooking, err := uow.BookingRepository().Get(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	newPayment, err := payment.NewPayment(
		cmd.PaymentID(),
		paidBooking.ID(),
		paidBooking.Amount(),
		cmd.PaymentMethod(),
	)
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().Add(ctx, newPayment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
