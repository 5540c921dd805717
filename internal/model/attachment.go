package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Attachment represents a machine attachment in the catalog. Structurally a
// smaller Product: one image, optional brochure and spec PDFs.
type Attachment struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string         `json:"name" gorm:"size:255;not null"`
	Category       string         `json:"category" gorm:"size:255;not null;index"`
	Description    string         `json:"description" gorm:"type:text"`
	Features       datatypes.JSON `json:"features" gorm:"type:jsonb"`
	Specifications string         `json:"specifications" gorm:"type:text"`
	Image          string         `json:"image" gorm:"not null"`
	PDFURL         *string        `json:"pdf_url" gorm:"column:pdf_url"`
	SpecPDFURL     *string        `json:"spec_pdf_url" gorm:"column:spec_pdf_url"`
	CreatedAt      time.Time      `json:"created_at"`
}
