package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/marketplace-app/repository"
	"github.com/yeremiapane/marketplace-app/utils"
)

func newCustomerService(t *testing.T) *CustomerService {
	return NewCustomerService(repository.NewCustomerRepository(newTestDB(t)))
}

func TestCustomerCreateAndGet(t *testing.T) {
	svc := newCustomerService(t)

	created, err := svc.Create(CreateCustomerInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "password123",
	})
	assert.NoError(t, err)

	fetched, err := svc.Get(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Jane", fetched.FirstName)
	assert.Equal(t, "Doe", fetched.LastName)
	assert.Equal(t, "jane@example.com", fetched.Email)

	raw, err := json.Marshal(fetched)
	assert.NoError(t, err)
	var asMap map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &asMap))
	_, hasPassword := asMap["password"]
	assert.False(t, hasPassword)
}

func TestCustomerCreateDuplicateEmail(t *testing.T) {
	svc := newCustomerService(t)

	_, err := svc.Create(CreateCustomerInput{
		FirstName: "A", LastName: "B", Email: "dup@example.com", Password: "password123",
	})
	assert.NoError(t, err)

	_, err = svc.Create(CreateCustomerInput{
		FirstName: "C", LastName: "D", Email: "dup@example.com", Password: "password456",
	})
	var appErr *utils.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.Status)
}

func TestCustomerAuthenticate(t *testing.T) {
	svc := newCustomerService(t)

	_, err := svc.Create(CreateCustomerInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: "password123",
	})
	assert.NoError(t, err)

	customer, token, err := svc.Authenticate("jane@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := utils.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, utils.PrincipalCustomer, claims.Type)
	assert.Equal(t, customer.ID, claims.ID)

	_, _, wrongPassErr := svc.Authenticate("jane@example.com", "nope12345")
	_, _, unknownEmailErr := svc.Authenticate("ghost@example.com", "password123")

	var wrongPass, unknownEmail *utils.AppError
	assert.True(t, errors.As(wrongPassErr, &wrongPass))
	assert.True(t, errors.As(unknownEmailErr, &unknownEmail))
	assert.Equal(t, wrongPass.Message, unknownEmail.Message)
}

func TestCustomerUpdate(t *testing.T) {
	svc := newCustomerService(t)

	created, err := svc.Create(CreateCustomerInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: "password123",
	})
	assert.NoError(t, err)

	updated, err := svc.Update(created.ID, UpdateCustomerInput{
		FirstName: strPtr("Janet"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Janet", updated.FirstName)
	assert.Equal(t, "Doe", updated.LastName)

	_, err = svc.Update(9999, UpdateCustomerInput{FirstName: strPtr("Nope")})
	var appErr *utils.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}
