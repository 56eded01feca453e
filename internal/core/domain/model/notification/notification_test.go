package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicebooking/internal/core/domain/model/kernel"
)

func Test_NewNotification_Success(t *testing.T) {
	// Arrange
	id := kernel.NewUUID()
	userID := kernel.NewUUID()

	// Act
	n, err := NewNotification(id, userID, "Booking Accepted", "A provider accepted your booking")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, id, n.ID())
	assert.Equal(t, userID, n.UserID())
	assert.Equal(t, "Booking Accepted", n.Title())
	assert.Equal(t, "A provider accepted your booking", n.Message())
	assert.False(t, n.IsRead())
	assert.NoError(t, n.Validate())
}

func Test_NewNotification_InvalidParams(t *testing.T) {
	tests := map[string]struct {
		id      kernel.UUID
		userID  kernel.UUID
		title   string
		message string
	}{
		"empty id":      {kernel.UUID{}, kernel.NewUUID(), "t", "m"},
		"empty userID":  {kernel.NewUUID(), kernel.UUID{}, "t", "m"},
		"blank title":   {kernel.NewUUID(), kernel.NewUUID(), "  ", "m"},
		"blank message": {kernel.NewUUID(), kernel.NewUUID(), "t", ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			n, err := NewNotification(tc.id, tc.userID, tc.title, tc.message)
			assert.Error(t, err)
			assert.Nil(t, n)
		})
	}
}

func Test_MarkRead_IsIdempotent(t *testing.T) {
	n, err := NewNotification(kernel.NewUUID(), kernel.NewUUID(), "Job Completed", "Your job was completed")
	require.NoError(t, err)

	n.MarkRead()
	assert.True(t, n.IsRead())

	n.MarkRead()
	assert.True(t, n.IsRead())
}

func Test_RestoreNotification_KeepsState(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	n, err := RestoreNotification(kernel.NewUUID(), kernel.NewUUID(), "t", "m", true, createdAt)

	require.NoError(t, err)
	assert.True(t, n.IsRead())
	assert.Equal(t, createdAt, n.CreatedAt())
}
