package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Product represents a catalog machine. Numeric attributes are nullable so
// that "not provided" is stored as NULL rather than zero. Features is opaque
// structured data (object or array) persisted as JSONB.
type Product struct {
	ID                         uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name                       string         `json:"name" gorm:"size:255;not null"`
	Category                   string         `json:"category" gorm:"size:255;not null;index"`
	Description                string         `json:"description" gorm:"type:text"`
	Features                   datatypes.JSON `json:"features" gorm:"type:jsonb"`
	Specifications             string         `json:"specifications" gorm:"type:text"`
	Horsepower                 *float64       `json:"horsepower"`
	RatedOperatingCapacity     *float64       `json:"rated_operating_capacity"`
	RatedOperatingCapacityUnit string         `json:"rated_operating_capacity_unit" gorm:"size:16;default:'kg'"`
	OperatingWeight            *float64       `json:"operating_weight"`
	DigDepth                   *float64       `json:"dig_depth"`
	Featured                   bool           `json:"featured"`
	Image1                     string         `json:"image1" gorm:"not null"`
	Image2                     *string        `json:"image2"`
	Image3                     *string        `json:"image3"`
	Image4                     *string        `json:"image4"`
	PDFURL                     *string        `json:"pdf_url" gorm:"column:pdf_url"`
	SpecPDFURL                 *string        `json:"spec_pdf_url" gorm:"column:spec_pdf_url"`
	CreatedAt                  time.Time      `json:"created_at"`
}
