package contract

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Contract is created once per job, when a proposal is hired. Budget is the
// winning bid, not the job's posted budget.
type Contract struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	JobID           uint            `json:"job_id" gorm:"uniqueIndex;not null"`
	ProposalID      uint            `json:"proposal_id" gorm:"uniqueIndex;not null"`
	ClientID        uint            `json:"client_id" gorm:"index;not null"`
	FreelancerID    uint            `json:"freelancer_id" gorm:"index;not null"`
	Budget          decimal.Decimal `json:"budget" gorm:"type:numeric(12,2);not null"`
	Status          Status          `json:"status" gorm:"size:20;index;not null;default:'active'"`
	WorkSubmitted   bool            `json:"work_submitted" gorm:"not null;default:false"`
	WorkSubmittedAt *time.Time      `json:"work_submitted_at"`
	StartDate       time.Time       `json:"start_date"`
	CompletedAt     *time.Time      `json:"completed_at"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (c Contract) IsActive() bool {
	return c.Status == StatusActive
}
