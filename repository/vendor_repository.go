package repository

import (
	"errors"

	"github.com/yeremiapane/marketplace-app/models"
	"gorm.io/gorm"
)

type VendorRepository struct {
	DB *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{DB: db}
}

func (r *VendorRepository) Create(vendor *models.Vendor) error {
	return r.DB.Create(vendor).Error
}

// FindByEmail returns (nil, nil) when no vendor matches.
func (r *VendorRepository) FindByEmail(email string) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.DB.Where("email = ?", email).First(&vendor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *VendorRepository) FindByID(id uint) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.DB.First(&vendor, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *VendorRepository) FindAll() ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.DB.Find(&vendors).Error
	return vendors, err
}

// Update applies a partial patch and returns the fresh row.
func (r *VendorRepository) Update(id uint, patch map[string]interface{}) (*models.Vendor, error) {
	if err := r.DB.Model(&models.Vendor{}).Where("id = ?", id).Updates(patch).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}
