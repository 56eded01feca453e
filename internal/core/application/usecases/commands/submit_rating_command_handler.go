package commands

import (
	"context"

	"servicebooking/internal/core/domain/model/rating"
	"servicebooking/internal/pkg/errs"
)

// SubmitRatingCommandHandler handles rating submission.
// Stores the rating and recomputes the provider's average star value in the
// same transaction, so the provider's displayed rating never drifts from the
// stored ratings.
type SubmitRatingCommandHandler struct {
	uowFactory RatingUoWFactory
}

// NewSubmitRatingCommandHandler creates a handler for rating submission.
func NewSubmitRatingCommandHandler(uowFactory RatingUoWFactory) SubmitRatingCommandHandler {
	return SubmitRatingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating submission command.
// The booking must exist and have a provider assigned. A second rating for
// the same booking fails with errs.ErrValueIsInvalid from the repository's
// uniqueness constraint.
func (h *SubmitRatingCommandHandler) Handle(ctx context.Context, cmd SubmitRatingCommand) error {
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

	ratedBooking, err := uow.BookingRepository().Get(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	if ratedBooking.ProviderID() == nil {
		return errs.NewObjectNotFoundError("providerID", cmd.BookingID())
	}

	newRating, err := rating.NewRating(
		cmd.RatingID(),
		cmd.BookingID(),
		*ratedBooking.ProviderID(),
		cmd.Stars(),
		cmd.Comment(),
	)
	if err != nil {
		return err
	}

	if err = uow.RatingRepository().Add(ctx, newRating); err != nil {
		return err
	}

	avg, _, err := uow.RatingRepository().AverageForProvider(ctx, newRating.ProviderID())
	if err != nil {
		return err
	}

	ratedProvider, err := uow.ProviderRepository().Get(ctx, newRating.ProviderID())
	if err != nil {
		return err
	}

	if err = ratedProvider.ApplyAverageRating(avg); err != nil {
		return err
	}

	if err = uow.ProviderRepository().Update(ctx, ratedProvider); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
