package commands

import (
	"errors"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/core/domain/model/rating"
	"servicebooking/internal/pkg/errs"
	"servicebooking/internal/pkg/guard"
)

var ErrSubmitRatingCommandIsNotConstructed = errors.New(
	"SubmitRatingCommand must be created via NewSubmitRatingCommand constructor",
)

// SubmitRatingCommand represents a customer's rating of a completed booking.
// At most one rating may exist per booking; the comment is optional.
type SubmitRatingCommand struct { //nolint:recvcheck //using for validation
	ratingID  kernel.UUID
	bookingID kernel.UUID
	stars     int
	comment   string

	guard guard.ConstructorGuard
}

// NewSubmitRatingCommand creates a command to rate a booking.
// Stars must lie in [rating.MinStars, rating.MaxStars].
func NewSubmitRatingCommand(
	ratingID kernel.UUID,
	bookingID kernel.UUID,
	stars int,
	comment string,
) (SubmitRatingCommand, error) {
	ratingCommand := SubmitRatingCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ratingCommand.setRatingID(ratingID),
		ratingCommand.setBookingID(bookingID),
		ratingCommand.setStars(stars),
	); err != nil {
		return SubmitRatingCommand{}, err
	}

	return ratingCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitRatingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRatingCommandIsNotConstructed)
}

// RatingID returns the unique identifier for the new rating.
func (c SubmitRatingCommand) RatingID() kernel.UUID {
	return c.ratingID
}

// BookingID returns the rated booking's identifier.
func (c SubmitRatingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// Stars returns the star value, 1 to 5.
func (c SubmitRatingCommand) Stars() int {
	return c.stars
}

// Comment returns the optional free-text comment.
func (c SubmitRatingCommand) Comment() string {
	return c.comment
}

func (c *SubmitRatingCommand) setRatingID(ratingID kernel.UUID) error {
	if err := ratingID.Validate(); err != nil {
		return err
	}

	c.ratingID = ratingID
	return nil
}

func (c *SubmitRatingCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}

	c.bookingID = bookingID
	return nil
}

func (c *SubmitRatingCommand) setStars(stars int) error {
	if stars < rating.MinStars || stars > rating.MaxStars {
		return errs.NewValueIsOutOfRangeError("stars", stars, rating.MinStars, rating.MaxStars)
	}

	c.stars = stars
	return nil
}
