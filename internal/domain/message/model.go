package message

import (
	"time"

	"github.com/linskybing/gigboard/internal/domain/proposal"
)

// Message is one line in a proposal's room. Rows are append-only.
type Message struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ProposalID uint      `json:"proposal_id" gorm:"index;not null"`
	SenderID   uint      `json:"sender_id" gorm:"not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
}

type SendInput struct {
	Content string `json:"content" example:"Can we talk about the timeline?"`
}

// IsLocked reports whether the room for a proposal in stage s is closed.
// Rooms open once the client has viewed the proposal.
func IsLocked(s proposal.Status) bool {
	return s == proposal.StatusApplied
}
