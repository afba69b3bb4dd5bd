package services

import (
	"github.com/yeremiapane/marketplace-app/models"
	"github.com/yeremiapane/marketplace-app/repository"
	"github.com/yeremiapane/marketplace-app/utils"
	"golang.org/x/crypto/bcrypt"
)

type CustomerService struct {
	Repo *repository.CustomerRepository
}

func NewCustomerService(repo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{Repo: repo}
}

type CreateCustomerInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type UpdateCustomerInput struct {
	FirstName *string
	LastName  *string
}

func (s *CustomerService) Create(input CreateCustomerInput) (*models.Customer, error) {
	existing, err := s.Repo.FindByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewConflict("Customer already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  string(hashed),
	}
	if err := s.Repo.Create(customer); err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("New customer registered: %s", customer.Email)
	return customer, nil
}

// Authenticate mirrors VendorService.Authenticate with a customer token.
func (s *CustomerService) Authenticate(email, password string) (*models.Customer, string, error) {
	customer, err := s.Repo.FindByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if customer == nil {
		return nil, "", utils.NewUnauthorized("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(password)); err != nil {
		return nil, "", utils.NewUnauthorized("Invalid email or password")
	}

	token, err := utils.GenerateToken(customer.ID, customer.Email, utils.PrincipalCustomer)
	if err != nil {
		return nil, "", err
	}

	return customer, token, nil
}

func (s *CustomerService) Get(id uint) (*models.Customer, error) {
	customer, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, utils.NewNotFound("Customer not found")
	}
	return customer, nil
}

func (s *CustomerService) List() ([]models.Customer, error) {
	return s.Repo.FindAll()
}

func (s *CustomerService) Update(id uint, input UpdateCustomerInput) (*models.Customer, error) {
	existing, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, utils.NewNotFound("Customer not found")
	}

	patch := map[string]interface{}{}
	if input.FirstName != nil {
		patch["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		patch["last_name"] = *input.LastName
	}
	if len(patch) == 0 {
		return existing, nil
	}

	return s.Repo.Update(id, patch)
}
