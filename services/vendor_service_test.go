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

func newVendorService(t *testing.T) *VendorService {
	return NewVendorService(repository.NewVendorRepository(newTestDB(t)))
}

func strPtr(s string) *string { return &s }

func TestVendorCreateAndGet(t *testing.T) {
	svc := newVendorService(t)

	created, err := svc.Create(CreateVendorInput{
		Name:     "Pizza Palace",
		Email:    "pizza@palace.com",
		Password: "password123",
		Address:  strPtr("123 Main Street"),
		Phone:    strPtr("555-0101"),
	})
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)

	fetched, err := svc.Get(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Pizza Palace", fetched.Name)
	assert.Equal(t, "pizza@palace.com", fetched.Email)
	assert.Equal(t, "123 Main Street", *fetched.Address)
	assert.Equal(t, "555-0101", *fetched.Phone)

	// The password hash must never appear in the outward representation.
	raw, err := json.Marshal(fetched)
	assert.NoError(t, err)
	var asMap map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &asMap))
	_, hasPassword := asMap["password"]
	assert.False(t, hasPassword)
}

func TestVendorCreateDuplicateEmail(t *testing.T) {
	svc := newVendorService(t)

	_, err := svc.Create(CreateVendorInput{
		Name: "First", Email: "dup@example.com", Password: "password123",
	})
	assert.NoError(t, err)

	_, err = svc.Create(CreateVendorInput{
		Name: "Second", Email: "dup@example.com", Password: "password456",
	})
	var appErr *utils.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.Status)
}

func TestVendorAuthenticate(t *testing.T) {
	svc := newVendorService(t)

	_, err := svc.Create(CreateVendorInput{
		Name: "Sushi Express", Email: "hello@sushiexpress.com", Password: "password123",
	})
	assert.NoError(t, err)

	vendor, token, err := svc.Authenticate("hello@sushiexpress.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "hello@sushiexpress.com", vendor.Email)

	claims, err := utils.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, utils.PrincipalVendor, claims.Type)
	assert.Equal(t, vendor.ID, claims.ID)
}

// Wrong password and unknown email must yield the identical message so
// the response does not leak which part was wrong.
func TestVendorAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	svc := newVendorService(t)

	_, err := svc.Create(CreateVendorInput{
		Name: "Taco Fiesta", Email: "contact@tacofiesta.com", Password: "password123",
	})
	assert.NoError(t, err)

	_, _, wrongPassErr := svc.Authenticate("contact@tacofiesta.com", "wrongpassword")
	_, _, unknownEmailErr := svc.Authenticate("nobody@example.com", "password123")

	var wrongPass, unknownEmail *utils.AppError
	assert.True(t, errors.As(wrongPassErr, &wrongPass))
	assert.True(t, errors.As(unknownEmailErr, &unknownEmail))
	assert.Equal(t, http.StatusUnauthorized, wrongPass.Status)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Status)
	assert.Equal(t, wrongPass.Message, unknownEmail.Message)
}

func TestVendorUpdate(t *testing.T) {
	svc := newVendorService(t)

	created, err := svc.Create(CreateVendorInput{
		Name: "Old Name", Email: "update@example.com", Password: "password123",
	})
	assert.NoError(t, err)

	updated, err := svc.Update(created.ID, UpdateVendorInput{
		Name:    strPtr("New Name"),
		Address: strPtr("New Address"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "New Address", *updated.Address)
	assert.Equal(t, "update@example.com", updated.Email)

	_, err = svc.Update(9999, UpdateVendorInput{Name: strPtr("Nope")})
	var appErr *utils.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestVendorGetMissing(t *testing.T) {
	svc := newVendorService(t)

	_, err := svc.Get(42)
	var appErr *utils.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}
