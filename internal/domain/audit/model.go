package audit

import (
	"time"

	"gorm.io/datatypes"
)

// Actions recorded by the marketplace.
const (
	ActionRegister        = "user.register"
	ActionLogin           = "user.login"
	ActionOnboarding      = "user.onboarding"
	ActionAvatar          = "user.avatar"
	ActionJobPost         = "job.post"
	ActionProposalSubmit  = "proposal.submit"
	ActionProposalAdvance = "proposal.advance"
	ActionHire            = "proposal.hire"
	ActionWorkSubmit      = "contract.submit_work"
	ActionPaymentRelease  = "payment.release"
)

// Resource types.
const (
	ResourceUser     = "user"
	ResourceJob      = "job"
	ResourceProposal = "proposal"
	ResourceContract = "contract"
)

type AuditLog struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	UserID       uint           `json:"user_id" gorm:"index"`
	Action       string         `json:"action" gorm:"size:50;not null"`
	ResourceType string         `json:"resource_type" gorm:"size:50;not null"`
	ResourceID   string         `json:"resource_id" gorm:"size:100"`
	OldData      datatypes.JSON `json:"old_data" swaggertype:"object"`
	NewData      datatypes.JSON `json:"new_data" swaggertype:"object"`
	IPAddress    string         `json:"ip_address" gorm:"size:45"`
	UserAgent    string         `json:"user_agent" gorm:"type:text"`
	Description  string         `json:"description" gorm:"type:text"`
	CreatedAt    time.Time      `json:"created_at" gorm:"index"`
}
