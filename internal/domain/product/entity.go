// internal/domain/product/entity.go
package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a watch in the catalogue
type Product struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	Name               string          `gorm:"not null;size:200" json:"name"`
	Brand              string          `gorm:"not null;size:100;index" json:"brand"`
	Price              decimal.Decimal `gorm:"type:decimal(18,2);not null;index" json:"price"` // VND
	CaseMaterial       string          `gorm:"size:100" json:"caseMaterial"`
	CaseDiameter       string          `gorm:"size:50" json:"caseDiameter"`
	Dial               string          `gorm:"size:100" json:"dial"`
	Movement           string          `gorm:"size:100" json:"movement"`
	PowerReserve       string          `gorm:"size:50" json:"powerReserve"`
	WaterResistance    string          `gorm:"size:50" json:"waterResistance"`
	WaterResistanceAtm *int            `gorm:"index" json:"waterResistanceAtm"`
	Crystal            string          `gorm:"size:100" json:"crystal"`
	Gender             string          `gorm:"size:20" json:"gender"`
	StrapType          string          `gorm:"size:100" json:"strapType"`
	Description        string          `gorm:"type:text" json:"description"`
	ImageURL           string          `gorm:"size:1000" json:"imageUrl"`
	CreatedAt          time.Time       `gorm:"index" json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// TableName overrides the table name
func (Product) TableName() string { return "products" }

// Facets lists the distinct values available to the catalogue filters
type Facets struct {
	Brands              []string `json:"brands"`
	Genders             []string `json:"genders"`
	Movements           []string `json:"movements"`
	StrapTypes          []string `json:"strapTypes"`
	WaterResistanceAtms []int    `json:"waterResistanceAtms"`
}
