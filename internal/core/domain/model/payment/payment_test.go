package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicebooking/internal/core/domain/model/kernel"
)

func Test_NewPayment_Success(t *testing.T) {
	// Arrange
	id := kernel.NewUUID()
	bookingID := kernel.NewUUID()

	// Act
	p, err := NewPayment(id, bookingID, 499.0, UPI)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, id, p.ID())
	assert.Equal(t, bookingID, p.BookingID())
	assert.InDelta(t, 499.0, p.Amount(), 0.0001)
	assert.Equal(t, UPI, p.PaymentMethod())
	assert.WithinDuration(t, time.Now().UTC(), p.CreatedAt(), time.Second)
	assert.NoError(t, p.Validate())
}

func Test_NewPayment_InvalidParams(t *testing.T) {
	tests := map[string]struct {
		id        kernel.UUID
		bookingID kernel.UUID
		amount    float64
		method    Method
	}{
		"empty id":        {kernel.UUID{}, kernel.NewUUID(), 100.0, Cash},
		"empty bookingID": {kernel.NewUUID(), kernel.UUID{}, 100.0, Cash},
		"zero amount":     {kernel.NewUUID(), kernel.NewUUID(), 0, Cash},
		"negative amount": {kernel.NewUUID(), kernel.NewUUID(), -10.0, Cash},
		"unknown method":  {kernel.NewUUID(), kernel.NewUUID(), 100.0, MethodUnknown},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			p, err := NewPayment(tc.id, tc.bookingID, tc.amount, tc.method)
			assert.Error(t, err)
			assert.Nil(t, p)
		})
	}
}

func Test_MethodFromString(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    Method
		wantErr bool
	}{
		"cash":    {"CASH", Cash, false},
		"upi":     {"UPI", UPI, false},
		"card":    {"CARD", Card, false},
		"unknown": {"UNKNOWN", MethodUnknown, true},
		"empty":   {"", MethodUnknown, true},
		"lower":   {"cash", MethodUnknown, true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := MethodFromString(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func Test_RestorePayment_KeepsCreatedAt(t *testing.T) {
	createdAt := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)

	p, err := RestorePayment(kernel.NewUUID(), kernel.NewUUID(), 250.0, Card, createdAt)

	require.NoError(t, err)
	assert.Equal(t, createdAt, p.CreatedAt())
}
