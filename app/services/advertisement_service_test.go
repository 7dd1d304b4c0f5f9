package services_test

import (
	"strings"
	"testing"

	"adboard/app/dto"
	"adboard/app/models"
	"adboard/app/repo"
	"adboard/app/services"
	"adboard/app/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAdService(gdb *gorm.DB) *services.AdvertisementService {
	return services.NewAdvertisementService(gdb, repo.NewAdvertisementRepository(gdb), validate.New())
}

func adCount(t *testing.T, gdb *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gdb.Model(&models.Advertisement{}).Count(&n).Error)
	return n
}

func TestAdvertisementCreateAndList(t *testing.T) {
	gdb := setupDB(t)
	svc := newAdService(gdb)

	uid := uint(1)
	id, err := svc.Create(dto.CreateAdvertisementRequest{
		Title:       "Sell bike",
		Description: "Barely used road bike",
		Owner:       "Alice",
		UserID:      &uid,
	})
	require.NoError(t, err)

	ads, err := svc.List()
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, id, ads[0].ID)
	assert.Equal(t, "Sell bike", ads[0].Title)
	assert.Equal(t, "Alice", ads[0].Owner)
	require.NotNil(t, ads[0].UserID)
	assert.Equal(t, uid, *ads[0].UserID)
	assert.NotEmpty(t, ads[0].CreationTime)
}

func TestAdvertisementCreateBounds(t *testing.T) {
	gdb := setupDB(t)
	svc := newAdService(gdb)

	cases := []dto.CreateAdvertisementRequest{
		{Title: "1234", Description: "long enough description"},
		{Title: strings.Repeat("x", 101), Description: "long enough description"},
		{Title: "Sell bike", Description: "short"},
		{Title: "Sell bike", Description: strings.Repeat("y", 501)},
		{Title: "Sell bike", Description: "long enough description", Owner: strings.Repeat("o", 51)},
	}
	for _, c := range cases {
		_, err := svc.Create(c)
		var fe *validate.FieldError
		assert.ErrorAs(t, err, &fe, "payload %+v must be rejected", c)
	}
	assert.Zero(t, adCount(t, gdb))
}

func TestAdvertisementPartialUpdate(t *testing.T) {
	gdb := setupDB(t)
	svc := newAdService(gdb)

	uid := uint(7)
	id, err := svc.Create(dto.CreateAdvertisementRequest{
		Title:       "Sell bike",
		Description: "Barely used road bike",
		Owner:       "Bob",
		UserID:      &uid,
	})
	require.NoError(t, err)

	owner := "Alice"
	require.NoError(t, svc.Update(id, dto.UpdateAdvertisementRequest{Owner: &owner}))

	ad, err := svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Alice", ad.Owner)
	assert.Equal(t, "Sell bike", ad.Title)
	assert.Equal(t, "Barely used road bike", ad.Description)
	require.NotNil(t, ad.UserID)
	assert.Equal(t, uid, *ad.UserID)
}

func TestAdvertisementUpdateValidationLeavesRow(t *testing.T) {
	gdb := setupDB(t)
	svc := newAdService(gdb)

	id, err := svc.Create(dto.CreateAdvertisementRequest{Title: "Sell bike", Description: "Barely used road bike"})
	require.NoError(t, err)

	bad := "1234"
	err = svc.Update(id, dto.UpdateAdvertisementRequest{Title: &bad})
	var fe *validate.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "title", fe.Field)

	ad, err := svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Sell bike", ad.Title)
}

func TestAdvertisementUpdateMissing(t *testing.T) {
	svc := newAdService(setupDB(t))
	owner := "Alice"
	assert.ErrorIs(t, svc.Update(404, dto.UpdateAdvertisementRequest{Owner: &owner}), repo.ErrNotFound)
}

func TestAdvertisementGetAndDeleteMissing(t *testing.T) {
	gdb := setupDB(t)
	svc := newAdService(gdb)

	_, err := svc.Get(404)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(404), repo.ErrNotFound)
	assert.Zero(t, adCount(t, gdb))
}

func TestAdvertisementDelete(t *testing.T) {
	gdb := setupDB(t)
	svc := newAdService(gdb)

	id, err := svc.Create(dto.CreateAdvertisementRequest{Title: "Sell bike", Description: "Barely used road bike"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(id))

	_, err = svc.Get(id)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
