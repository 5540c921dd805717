package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a lead captured from the public "get in touch" form.
// Immutable after creation.
type ContactMessage struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FirstName string    `json:"first_name" gorm:"size:255"`
	LastName  string    `json:"last_name" gorm:"size:255"`
	Email     string    `json:"email" gorm:"size:255"`
	Phone     string    `json:"phone" gorm:"size:64"`
	Comments  string    `json:"comments" gorm:"type:text"`
	Branch    string    `json:"branch" gorm:"size:64"`
	CreatedAt time.Time `json:"created_at"`
}

// QuotationStatusPending is the status every new quotation starts in.
const QuotationStatusPending = "pending"

// Quotation is a lead captured from the "get a quote" form.
type Quotation struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FirstName       string    `json:"first_name" gorm:"size:255"`
	LastName        string    `json:"last_name" gorm:"size:255"`
	ClientName      string    `json:"client_name" gorm:"size:255"`
	Email           string    `json:"email" gorm:"size:255"`
	Phone           string    `json:"phone" gorm:"size:64"`
	Company         string    `json:"company" gorm:"size:255"`
	Street          string    `json:"street" gorm:"size:255"`
	City            string    `json:"city" gorm:"size:128"`
	State           string    `json:"state" gorm:"size:128"`
	Country         string    `json:"country" gorm:"size:128"`
	Zip             string    `json:"zip" gorm:"size:32"`
	Interest        string    `json:"interest" gorm:"size:255"`
	ProductInterest string    `json:"product_interest" gorm:"size:255"`
	Comments        string    `json:"comments" gorm:"type:text"`
	TotalAmount     float64   `json:"total_amount"`
	Status          string    `json:"status" gorm:"size:32"`
	CreatedAt       time.Time `json:"created_at"`
}
