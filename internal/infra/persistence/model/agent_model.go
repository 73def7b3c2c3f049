package model

import (
	"time"
)

// AgentModel is the GORM-specific struct for the 'agents' table.
type AgentModel struct {
	ID          string            `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name        string            `gorm:"type:varchar(255);not null;index" json:"name"`
	Email       string            `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Phone       *string           `gorm:"type:varchar(64)" json:"phone"`
	Expertise   *string           `gorm:"type:text" json:"expertise"`
	Active      bool              `gorm:"not null" json:"active"`
	AgentBrands []AgentBrandModel `gorm:"foreignKey:AgentID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time         `json:"-"`
	UpdatedAt   time.Time         `json:"-"`
}

// TableName explicitly sets the table name for GORM.
func (AgentModel) TableName() string {
	return "agents"
}

// AgentBrandModel is the join entity between agents and brands.
// It never leaves the persistence layer.
type AgentBrandModel struct {
	ID      string      `gorm:"type:varchar(64);primaryKey"`
	AgentID string      `gorm:"type:varchar(64);not null;uniqueIndex:idx_agent_brands_agent_brand"`
	BrandID string      `gorm:"type:varchar(64);not null;uniqueIndex:idx_agent_brands_agent_brand;index"`
	Brand   *BrandModel `gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AgentBrandModel) TableName() string {
	return "agent_brands"
}
