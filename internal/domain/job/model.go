package job

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Status is the posting state of a job. A job closes exactly once, when one
// of its proposals is hired, and is never reopened.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

type BudgetType string

const (
	BudgetFixed  BudgetType = "Fixed"
	BudgetHourly BudgetType = "Hourly"
)

type ExperienceLevel string

const (
	ExperienceEntry        ExperienceLevel = "Entry"
	ExperienceIntermediate ExperienceLevel = "Intermediate"
	ExperienceExpert       ExperienceLevel = "Expert"
)

type Job struct {
	ID              uint                        `json:"id" gorm:"primaryKey"`
	ClientID        uint                        `json:"client_id" gorm:"index;not null"`
	Title           string                      `json:"title" gorm:"size:200;not null"`
	Description     string                      `json:"description" gorm:"type:text"`
	Budget          decimal.Decimal             `json:"budget" gorm:"type:numeric(12,2);not null"`
	BudgetType      BudgetType                  `json:"budget_type" gorm:"size:20;not null"`
	ExperienceLevel ExperienceLevel             `json:"experience_level" gorm:"size:20;not null"`
	Skills          datatypes.JSONSlice[string] `json:"skills"`
	Status          Status                      `json:"status" gorm:"size:20;index;not null;default:'open'"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}

func (j Job) IsOpen() bool {
	return j.Status == StatusOpen
}
