package models

import "time"

type Vendor struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	Email     string     `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password  string     `gorm:"type:varchar(255);not null" json:"-"`
	Address   *string    `gorm:"type:varchar(255)" json:"address"`
	Phone     *string    `gorm:"type:varchar(50)" json:"phone"`
	MenuItems []MenuItem `gorm:"foreignKey:VendorID" json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
