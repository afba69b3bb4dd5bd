package services

import (
	"github.com/yeremiapane/marketplace-app/models"
	"github.com/yeremiapane/marketplace-app/repository"
	"github.com/yeremiapane/marketplace-app/utils"
	"golang.org/x/crypto/bcrypt"
)

type VendorService struct {
	Repo *repository.VendorRepository
}

func NewVendorService(repo *repository.VendorRepository) *VendorService {
	return &VendorService{Repo: repo}
}

type CreateVendorInput struct {
	Name     string
	Email    string
	Password string
	Address  *string
	Phone    *string
}

type UpdateVendorInput struct {
	Name    *string
	Address *string
	Phone   *string
}

// Create registers a new vendor. The email uniqueness check here is
// backed by the unique constraint on vendors.email; a concurrent
// duplicate insert is caught by the database, not by this lookup.
func (s *VendorService) Create(input CreateVendorInput) (*models.Vendor, error) {
	existing, err := s.Repo.FindByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewConflict("Vendor already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	vendor := &models.Vendor{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Address:  input.Address,
		Phone:    input.Phone,
	}
	if err := s.Repo.Create(vendor); err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("New vendor registered: %s", vendor.Email)
	return vendor, nil
}

// Authenticate returns the vendor and a signed token. Unknown email and
// wrong password produce the same message so neither is leaked.
func (s *VendorService) Authenticate(email, password string) (*models.Vendor, string, error) {
	vendor, err := s.Repo.FindByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if vendor == nil {
		return nil, "", utils.NewUnauthorized("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(vendor.Password), []byte(password)); err != nil {
		return nil, "", utils.NewUnauthorized("Invalid email or password")
	}

	token, err := utils.GenerateToken(vendor.ID, vendor.Email, utils.PrincipalVendor)
	if err != nil {
		return nil, "", err
	}

	return vendor, token, nil
}

func (s *VendorService) Get(id uint) (*models.Vendor, error) {
	vendor, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, utils.NewNotFound("Vendor not found")
	}
	return vendor, nil
}

func (s *VendorService) List() ([]models.Vendor, error) {
	return s.Repo.FindAll()
}

func (s *VendorService) Update(id uint, input UpdateVendorInput) (*models.Vendor, error) {
	existing, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, utils.NewNotFound("Vendor not found")
	}

	patch := map[string]interface{}{}
	if input.Name != nil {
		patch["name"] = *input.Name
	}
	if input.Address != nil {
		patch["address"] = *input.Address
	}
	if input.Phone != nil {
		patch["phone"] = *input.Phone
	}
	if len(patch) == 0 {
		return existing, nil
	}

	return s.Repo.Update(id, patch)
}
