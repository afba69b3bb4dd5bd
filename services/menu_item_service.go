package services

import (
	"math"

	"github.com/yeremiapane/marketplace-app/models"
	"github.com/yeremiapane/marketplace-app/repository"
	"github.com/yeremiapane/marketplace-app/utils"
)

type MenuItemService struct {
	Repo       *repository.MenuItemRepository
	VendorRepo *repository.VendorRepository
}

func NewMenuItemService(repo *repository.MenuItemRepository, vendorRepo *repository.VendorRepository) *MenuItemService {
	return &MenuItemService{Repo: repo, VendorRepo: vendorRepo}
}

type MenuItemInput struct {
	Name        string
	Description *string
	Price       int
	Image       *string
}

type UpdateMenuItemInput struct {
	Name        *string
	Description *string
	Price       *int
	Image       *string
}

type Pagination struct {
	Page  int
	Limit int
}

func (s *MenuItemService) validateVendor(vendorID uint) (*models.Vendor, error) {
	vendor, err := s.VendorRepo.FindByID(vendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, utils.NewNotFound("Vendor not found")
	}
	return vendor, nil
}

// CreateBatch stamps every item with the vendor id and inserts them as
// one batch. Nothing is inserted when the vendor does not exist.
func (s *MenuItemService) CreateBatch(vendorID uint, inputs []MenuItemInput) ([]models.MenuItem, error) {
	if _, err := s.validateVendor(vendorID); err != nil {
		return nil, err
	}

	items := make([]models.MenuItem, 0, len(inputs))
	for _, input := range inputs {
		items = append(items, models.MenuItem{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Image:       input.Image,
			VendorID:    vendorID,
		})
	}

	// gorm rejects an empty multi-row insert, so an empty batch is a no-op
	if len(items) == 0 {
		return items, nil
	}

	return s.Repo.CreateBatch(items)
}

// ListByVendor returns one page of a vendor's items plus paging meta.
// Page and limit arrive pre-clamped by the controller.
func (s *MenuItemService) ListByVendor(vendorID uint, p Pagination) ([]models.MenuItem, utils.PageMeta, error) {
	if _, err := s.validateVendor(vendorID); err != nil {
		return nil, utils.PageMeta{}, err
	}

	total, err := s.Repo.CountByVendor(vendorID)
	if err != nil {
		return nil, utils.PageMeta{}, err
	}

	offset := (p.Page - 1) * p.Limit
	items, err := s.Repo.FindByVendor(vendorID, p.Limit, offset)
	if err != nil {
		return nil, utils.PageMeta{}, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(p.Limit)))
	meta := utils.PageMeta{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
	}

	return items, meta, nil
}

func (s *MenuItemService) Get(id uint) (*models.MenuItem, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, utils.NewNotFound("Menu item not found")
	}
	return item, nil
}

// Update re-checks ownership even though the ownership middleware
// already did, so the service is safe to call from any entry point.
func (s *MenuItemService) Update(vendorID, id uint, input UpdateMenuItemInput) (*models.MenuItem, error) {
	existing, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, utils.NewNotFound("Menu item not found")
	}
	if existing.VendorID != vendorID {
		return nil, utils.NewForbidden("You do not have permission to update this menu item")
	}

	patch := map[string]interface{}{}
	if input.Name != nil {
		patch["name"] = *input.Name
	}
	if input.Description != nil {
		patch["description"] = *input.Description
	}
	if input.Price != nil {
		patch["price"] = *input.Price
	}
	if input.Image != nil {
		patch["image"] = *input.Image
	}
	if len(patch) == 0 {
		return existing, nil
	}

	return s.Repo.Update(id, patch)
}

func (s *MenuItemService) Delete(vendorID, id uint) error {
	existing, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return utils.NewNotFound("Menu item not found")
	}
	if existing.VendorID != vendorID {
		return utils.NewForbidden("You do not have permission to delete this menu item")
	}

	return s.Repo.Delete(id)
}
