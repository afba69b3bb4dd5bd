package config

import (
	"github.com/yeremiapane/marketplace-app/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// SeedVendors inserts demo vendors for local development. Does nothing
// when vendors already exist.
func SeedVendors(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Vendor{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	vendors := []models.Vendor{
		{Name: "Pizza Palace", Email: "pizza@palace.com", Password: string(hashed),
			Address: strPtr("123 Main Street, New York, NY 10001"), Phone: strPtr("555-0101")},
		{Name: "Burger Barn", Email: "info@burgerbarn.com", Password: string(hashed),
			Address: strPtr("456 Oak Avenue, Los Angeles, CA 90001"), Phone: strPtr("555-0202")},
		{Name: "Sushi Express", Email: "hello@sushiexpress.com", Password: string(hashed),
			Address: strPtr("789 Pine Road, San Francisco, CA 94102"), Phone: strPtr("555-0303")},
		{Name: "Taco Fiesta", Email: "contact@tacofiesta.com", Password: string(hashed),
			Address: strPtr("321 Elm Street, Austin, TX 78701"), Phone: strPtr("555-0404")},
		{Name: "Pasta Paradise", Email: "info@pastaparadise.com", Password: string(hashed),
			Address: strPtr("654 Maple Drive, Chicago, IL 60601"), Phone: strPtr("555-0505")},
	}

	return db.Create(&vendors).Error
}
