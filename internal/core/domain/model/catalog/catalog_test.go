package catalog_test

import (
	"testing"

	"servicebooking/internal/core/domain/model/catalog"
	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	id := kernel.NewUUID()

	category, err := catalog.NewCategory(id, "Home Cleaning", "deep and standard cleaning", "broom")

	require.NoError(t, err)
	require.NoError(t, category.Validate())
	assert.Equal(t, id, category.ID())
	assert.Equal(t, "Home Cleaning", category.Name())
	assert.Equal(t, "deep and standard cleaning", category.Description())
	assert.Equal(t, "broom", category.Icon())
}

func TestNewCategory_NameIsRequired(t *testing.T) {
	_, err := catalog.NewCategory(kernel.NewUUID(), "", "", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCategory_EmptyOptionalFieldsAreAllowed(t *testing.T) {
	category, err := catalog.NewCategory(kernel.NewUUID(), "Plumbing", "", "")

	require.NoError(t, err)
	assert.Empty(t, category.Description())
	assert.Empty(t, category.Icon())
}

func TestCategory_Validate_NotConstructed(t *testing.T) {
	var category catalog.Category

	err := category.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrCategoryIsNotConstructed)
}

func TestNewServiceItem(t *testing.T) {
	id := kernel.NewUUID()
	categoryID := kernel.NewUUID()

	item, err := catalog.NewServiceItem(id, categoryID, "Tap Repair", "fix leaking taps", 250.0)

	require.NoError(t, err)
	require.NoError(t, item.Validate())
	assert.Equal(t, id, item.ID())
	assert.Equal(t, categoryID, item.CategoryID())
	assert.Equal(t, "Tap Repair", item.Name())
	assert.InDelta(t, 250.0, item.BasePrice(), 0.001)
}

func TestNewServiceItem_PriceMustBePositive(t *testing.T) {
	tests := []struct {
		name      string
		basePrice float64
	}{
		{"zero price", 0},
		{"negative price", -50.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.NewServiceItem(kernel.NewUUID(), kernel.NewUUID(), "Tap Repair", "", tt.basePrice)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestNewServiceItem_NameIsRequired(t *testing.T) {
	_, err := catalog.NewServiceItem(kernel.NewUUID(), kernel.NewUUID(), "", "", 100.0)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestServiceItem_ChangeBasePrice(t *testing.T) {
	item, err := catalog.NewServiceItem(kernel.NewUUID(), kernel.NewUUID(), "Tap Repair", "", 250.0)
	require.NoError(t, err)

	require.NoError(t, item.ChangeBasePrice(300.0))
	assert.InDelta(t, 300.0, item.BasePrice(), 0.001)

	err = item.ChangeBasePrice(-1.0)
	require.Error(t, err)
	assert.InDelta(t, 300.0, item.BasePrice(), 0.001, "Price should be unchanged after a rejected update")
}
