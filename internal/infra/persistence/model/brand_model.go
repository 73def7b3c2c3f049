package model

import (
	"time"
)

// BrandModel is the GORM-specific struct for the 'brands' table.
// Location is stored flat; the mapper nests it for API responses.
// The JSON tags describe the static-file record format.
type BrandModel struct {
	ID           string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Description  string    `gorm:"type:text;not null;default:''" json:"description"`
	Category     string    `gorm:"type:varchar(255);not null;default:''" json:"category"`
	Founded      int       `gorm:"not null;default:0" json:"founded"`
	Headquarters string    `gorm:"type:varchar(255);not null;default:''" json:"headquarters"`
	Lat          *float64  `gorm:"type:double precision" json:"lat,omitempty"`
	Lng          *float64  `gorm:"type:double precision" json:"lng,omitempty"`
	Address      *string   `gorm:"type:text" json:"address,omitempty"`
	Image        string    `gorm:"type:text;not null;default:''" json:"image"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// TableName explicitly sets the table name for GORM.
func (BrandModel) TableName() string {
	return "brands"
}
