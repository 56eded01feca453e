package booking_test

import (
	"testing"

	"servicebooking/internal/core/domain/model/booking"
	"servicebooking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass validation", func(t *testing.T) {
		for _, s := range []booking.Status{
			booking.Pending, booking.Accepted, booking.Completed, booking.Cancelled,
		} {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("unknown and out-of-range statuses fail validation", func(t *testing.T) {
		for _, s := range []booking.Status{booking.Unknown, booking.Status(99), booking.Status(-1)} {
			err := s.Validate()
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_String(t *testing.T) {
	cases := map[booking.Status]string{
		booking.Unknown:    "UNKNOWN",
		booking.Pending:    "PENDING",
		booking.Accepted:   "ACCEPTED",
		booking.Completed:  "COMPLETED",
		booking.Cancelled:  "CANCELLED",
		booking.Status(42): "UNKNOWN",
	}
	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses the four valid statuses", func(t *testing.T) {
		for str, expected := range map[string]booking.Status{
			"PENDING":   booking.Pending,
			"ACCEPTED":  booking.Accepted,
			"COMPLETED": booking.Completed,
			"CANCELLED": booking.Cancelled,
		} {
			s, err := booking.StatusFromString(str)
			require.NoError(t, err)
			assert.Equal(t, expected, s)
		}
	})

	t.Run("rejects unknown and lowercase values", func(t *testing.T) {
		for _, str := range []string{"", "pending", "DONE", "UNKNOWN"} {
			_, err := booking.StatusFromString(str)
			require.Error(t, err, str)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_StateMachine(t *testing.T) {
	type edge struct {
		from, to booking.Status
		legal    bool
	}
	edges := []edge{
		{booking.Pending, booking.Accepted, true},
		{booking.Pending, booking.Cancelled, true},
		{booking.Pending, booking.Completed, false},
		{booking.Accepted, booking.Accepted, true},
		{booking.Accepted, booking.Completed, true},
		{booking.Accepted, booking.Cancelled, true},
		{booking.Completed, booking.Accepted, false},
		{booking.Completed, booking.Completed, false},
		{booking.Completed, booking.Cancelled, false},
		{booking.Cancelled, booking.Accepted, false},
		{booking.Cancelled, booking.Completed, false},
		{booking.Cancelled, booking.Cancelled, false},
		// Reopening is never legal, whatever the source state.
		{booking.Pending, booking.Pending, false},
		{booking.Accepted, booking.Pending, false},
		{booking.Completed, booking.Pending, false},
		{booking.Cancelled, booking.Pending, false},
	}

	for _, e := range edges {
		name := e.from.String() + "->" + e.to.String()
		t.Run(name, func(t *testing.T) {
			result, err := e.from.TransitionTo(e.to)
			if e.legal {
				require.NoError(t, err)
				assert.Equal(t, e.to, result)
			} else {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			}
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, booking.Pending.IsTerminal())
	assert.False(t, booking.Accepted.IsTerminal())
	assert.True(t, booking.Completed.IsTerminal())
	assert.True(t, booking.Cancelled.IsTerminal())
}

func TestStatus_ValidateCanHaveProvider(t *testing.T) {
	t.Run("pending must not have a provider", func(t *testing.T) {
		require.Error(t, booking.Pending.ValidateCanHaveProvider(true))
		require.NoError(t, booking.Pending.ValidateCanHaveProvider(false))
	})

	t.Run("accepted and completed must have a provider", func(t *testing.T) {
		for _, s := range []booking.Status{booking.Accepted, booking.Completed} {
			require.NoError(t, s.ValidateCanHaveProvider(true), s.String())
			require.Error(t, s.ValidateCanHaveProvider(false), s.String())
		}
	})

	t.Run("cancelled may or may not have one", func(t *testing.T) {
		require.NoError(t, booking.Cancelled.ValidateCanHaveProvider(true))
		require.NoError(t, booking.Cancelled.ValidateCanHaveProvider(false))
	})
}
