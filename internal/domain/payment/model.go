package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const StatusReleased Status = "released"

// Payment is an append-only ledger row. One per contract, never updated.
type Payment struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	ContractID uint            `json:"contract_id" gorm:"uniqueIndex;not null"`
	PayerID    uint            `json:"payer_id" gorm:"index;not null"`
	PayeeID    uint            `json:"payee_id" gorm:"index;not null"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:numeric(12,2);not null"`
	Status     Status          `json:"status" gorm:"size:20;not null"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Entry is a payment with the job its contract was for.
type Entry struct {
	Payment
	JobID    uint   `json:"job_id"`
	JobTitle string `json:"job_title"`
}

// Wallet is the freelancer's view of released payments.
type Wallet struct {
	Payments []Entry         `json:"payments"`
	Total    decimal.Decimal `json:"total" swaggertype:"string"`
}
