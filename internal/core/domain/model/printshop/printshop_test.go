package printshop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/printshop"
)

func mustGeoPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return point
}

func Test_NewPrintshop_Success(t *testing.T) {
	// Arrange
	id := kernel.NewUUID()
	location := mustGeoPoint(t, 52.37, 4.89)

	// Act
	shop, err := printshop.NewPrintshop(id, "Central Print", "Main St 1", location)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, id, shop.ID())
	assert.Equal(t, "Central Print", shop.Name())
	assert.Equal(t, "Main St 1", shop.Address())
	assert.True(t, location.IsEqual(shop.Location()))
	assert.NoError(t, shop.Validate())
}

func Test_NewPrintshop_EmptyName_ReturnsError(t *testing.T) {
	_, err := printshop.NewPrintshop(
		kernel.NewUUID(), "", "Main St 1", mustGeoPoint(t, 0, 0))

	assert.Error(t, err)
}

func Test_NewPrintshop_InvalidLocation_ReturnsError(t *testing.T) {
	_, err := printshop.NewPrintshop(
		kernel.NewUUID(), "Central Print", "Main St 1", kernel.GeoPoint{})

	assert.Error(t, err)
}

func Test_Printshop_Validate_ZeroValue_ReturnsError(t *testing.T) {
	var shop printshop.Printshop

	assert.ErrorIs(t, shop.Validate(), printshop.ErrPrintshopIsNotConstructed)
}

func Test_RestorePrintshop_Success(t *testing.T) {
	id := kernel.NewUUID()

	shop, err := printshop.RestorePrintshop(
		id, "Harbor Print", "Dock Rd 9", mustGeoPoint(t, -33.86, 151.2))

	require.NoError(t, err)
	assert.Equal(t, id, shop.ID())
	assert.NoError(t, shop.Validate())
}
