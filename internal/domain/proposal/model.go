package proposal

import (
	"time"

	"github.com/linskybing/gigboard/internal/domain/user"
	"github.com/shopspring/decimal"
)

// Status is the stage of a proposal in the hiring pipeline. Stages only move
// forward, one step at a time, and hired is terminal.
type Status string

const (
	StatusApplied   Status = "applied"   // initial stage, chat locked
	StatusViewed    Status = "viewed"    // client opened the proposal
	StatusInterview Status = "interview" // in conversation with the client
	StatusHired     Status = "hired"     // terminal; contract created, job closed
)

var order = map[Status]int{
	StatusApplied:   0,
	StatusViewed:    1,
	StatusInterview: 2,
	StatusHired:     3,
}

// Valid reports whether s is a known stage.
func (s Status) Valid() bool {
	_, ok := order[s]
	return ok
}

// Rank is the position of s in the pipeline, or -1 if s is unknown.
func (s Status) Rank() int {
	r, ok := order[s]
	if !ok {
		return -1
	}
	return r
}

func (s Status) Terminal() bool {
	return s == StatusHired
}

// CanAdvance reports whether from -> to is a legal single-step transition.
func CanAdvance(from, to Status) bool {
	if !from.Valid() || !to.Valid() || from.Terminal() {
		return false
	}
	return to.Rank() == from.Rank()+1
}

type Proposal struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	JobID        uint            `json:"job_id" gorm:"not null;uniqueIndex:idx_proposal_job_freelancer"`
	FreelancerID uint            `json:"freelancer_id" gorm:"not null;index;uniqueIndex:idx_proposal_job_freelancer"`
	BidAmount    decimal.Decimal `json:"bid_amount" gorm:"type:numeric(12,2);not null"`
	CoverLetter  string          `json:"cover_letter" gorm:"type:text"`
	Status       Status          `json:"status" gorm:"size:20;index;not null;default:'applied'"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Applicant is a proposal with the freelancer's profile, as listed to the
// job's client.
type Applicant struct {
	Proposal
	Freelancer user.User `json:"freelancer" gorm:"foreignKey:FreelancerID"`
}

func (Applicant) TableName() string {
	return "proposals"
}

// JobSummary is the job a proposal was made for. ClientName falls back to
// the username when the client has no full name.
type JobSummary struct {
	ID         uint            `json:"id"`
	Title      string          `json:"title"`
	Budget     decimal.Decimal `json:"budget" swaggertype:"string"`
	BudgetType string          `json:"budget_type"`
	Status     string          `json:"status"`
	ClientID   uint            `json:"client_id"`
	ClientName string          `json:"client_name"`
}

type Detail struct {
	Proposal
	Job JobSummary `json:"job"`
}
