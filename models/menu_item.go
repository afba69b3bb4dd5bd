package models

import "time"

// Price is stored in minor currency units (e.g. cents).
type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	Price       int       `gorm:"not null" json:"price"`
	Image       *string   `gorm:"type:varchar(255)" json:"image"`
	VendorID    uint      `gorm:"not null;index" json:"vendor_id"`
	Vendor      Vendor    `gorm:"foreignKey:VendorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
