package services

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/marketplace-app/models"
	"github.com/yeremiapane/marketplace-app/repository"
	"github.com/yeremiapane/marketplace-app/utils"
	"gorm.io/gorm"
)

func newMenuItemService(t *testing.T) (*MenuItemService, *VendorService, *gorm.DB) {
	db := newTestDB(t)
	vendorRepo := repository.NewVendorRepository(db)
	svc := NewMenuItemService(repository.NewMenuItemRepository(db), vendorRepo)
	return svc, NewVendorService(vendorRepo), db
}

func seedVendor(t *testing.T, vendors *VendorService, email string) uint {
	t.Helper()
	vendor, err := vendors.Create(CreateVendorInput{
		Name: "Vendor " + email, Email: email, Password: "password123",
	})
	assert.NoError(t, err)
	return vendor.ID
}

func TestMenuItemCreateBatch(t *testing.T) {
	svc, vendors, _ := newMenuItemService(t)
	vendorID := seedVendor(t, vendors, "batch@example.com")

	items, err := svc.CreateBatch(vendorID, []MenuItemInput{
		{Name: "Margherita", Price: 1200},
		{Name: "Pepperoni", Price: 1400, Description: strPtr("Spicy")},
	})
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, vendorID, item.VendorID)
		assert.NotZero(t, item.ID)
	}
}

func TestMenuItemCreateBatchEmpty(t *testing.T) {
	svc, vendors, db := newMenuItemService(t)
	vendorID := seedVendor(t, vendors, "empty@example.com")

	items, err := svc.CreateBatch(vendorID, []MenuItemInput{})
	assert.NoError(t, err)
	assert.Empty(t, items)

	var count int64
	assert.NoError(t, db.Model(&models.MenuItem{}).Count(&count).Error)
	assert.Zero(t, count)

	// An empty batch for a missing vendor is still a 404.
	_, err = svc.CreateBatch(9999, []MenuItemInput{})
	var appErr *utils.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestMenuItemCreateBatchUnknownVendor(t *testing.T) {
	svc, _, db := newMenuItemService(t)

	_, err := svc.CreateBatch(9999, []MenuItemInput{
		{Name: "Orphan", Price: 100},
	})
	var appErr *utils.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Status)

	// No rows may be inserted when the vendor does not exist.
	var count int64
	assert.NoError(t, db.Model(&models.MenuItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestMenuItemPagination(t *testing.T) {
	svc, vendors, _ := newMenuItemService(t)
	vendorID := seedVendor(t, vendors, "page@example.com")

	_, err := svc.CreateBatch(vendorID, []MenuItemInput{
		{Name: "One", Price: 100},
		{Name: "Two", Price: 200},
		{Name: "Three", Price: 300},
	})
	assert.NoError(t, err)

	items, meta, err := svc.ListByVendor(vendorID, Pagination{Page: 1, Limit: 2})
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, utils.PageMeta{
		Page: 1, Limit: 2, Total: 3, TotalPages: 2,
		HasNext: true, HasPrev: false,
	}, meta)

	items, meta, err = svc.ListByVendor(vendorID, Pagination{Page: 2, Limit: 2})
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, utils.PageMeta{
		Page: 2, Limit: 2, Total: 3, TotalPages: 2,
		HasNext: false, HasPrev: true,
	}, meta)
}

func TestMenuItemListUnknownVendor(t *testing.T) {
	svc, _, _ := newMenuItemService(t)

	_, _, err := svc.ListByVendor(9999, Pagination{Page: 1, Limit: 10})
	var appErr *utils.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestMenuItemOwnership(t *testing.T) {
	svc, vendors, _ := newMenuItemService(t)
	ownerID := seedVendor(t, vendors, "owner@example.com")
	otherID := seedVendor(t, vendors, "other@example.com")

	items, err := svc.CreateBatch(ownerID, []MenuItemInput{
		{Name: "Protected", Price: 500},
	})
	assert.NoError(t, err)
	itemID := items[0].ID

	// The other vendor can neither update nor delete.
	_, err = svc.Update(otherID, itemID, UpdateMenuItemInput{Name: strPtr("Hijacked")})
	var appErr *utils.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusForbidden, appErr.Status)

	err = svc.Delete(otherID, itemID)
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusForbidden, appErr.Status)

	// The owner can.
	updated, err := svc.Update(ownerID, itemID, UpdateMenuItemInput{
		Name:  strPtr("Renamed"),
		Price: intPtr(750),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 750, updated.Price)

	assert.NoError(t, svc.Delete(ownerID, itemID))

	_, err = svc.Get(itemID)
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestMenuItemUpdateMissing(t *testing.T) {
	svc, vendors, _ := newMenuItemService(t)
	vendorID := seedVendor(t, vendors, "missing@example.com")

	var appErr *utils.AppError

	_, err := svc.Update(vendorID, 4242, UpdateMenuItemInput{Name: strPtr("Ghost")})
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Status)

	err = svc.Delete(vendorID, 4242)
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func intPtr(i int) *int { return &i }
