package repository

import (
	"errors"

	"github.com/yeremiapane/marketplace-app/models"
	"gorm.io/gorm"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

// CreateBatch inserts all items in a single multi-row insert, so the
// batch either fully succeeds or fails as one statement.
func (r *MenuItemRepository) CreateBatch(items []models.MenuItem) ([]models.MenuItem, error) {
	if err := r.DB.Create(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuItemRepository) FindByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.DB.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepository) FindByVendor(vendorID uint, limit, offset int) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.DB.
		Where("vendor_id = ?", vendorID).
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) CountByVendor(vendorID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&models.MenuItem{}).
		Where("vendor_id = ?", vendorID).
		Count(&total).Error
	return total, err
}

func (r *MenuItemRepository) Update(id uint, patch map[string]interface{}) (*models.MenuItem, error) {
	if err := r.DB.Model(&models.MenuItem{}).Where("id = ?", id).Updates(patch).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *MenuItemRepository) Delete(id uint) error {
	return r.DB.Delete(&models.MenuItem{}, id).Error
}
