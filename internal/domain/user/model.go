package user

import (
	"time"

	"gorm.io/datatypes"
)

// Role decides which side of the marketplace an account acts on.
type Role string

const (
	RoleClient     Role = "client"
	RoleFreelancer Role = "freelancer"
)

func (r Role) Valid() bool {
	return r == RoleClient || r == RoleFreelancer
}

type User struct {
	ID                 uint                        `json:"id" gorm:"primaryKey"`
	Username           string                      `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Password           string                      `json:"-" gorm:"not null"`
	Email              *string                     `json:"email"`
	FullName           *string                     `json:"full_name"`
	Role               Role                        `json:"role" gorm:"size:20;not null"`
	Bio                string                      `json:"bio" gorm:"type:text"`
	CompanyName        *string                     `json:"company_name"`  // clients only
	PortfolioURL       *string                     `json:"portfolio_url"` // freelancers only
	Skills             datatypes.JSONSlice[string] `json:"skills"`
	AvatarURL          *string                     `json:"avatar_url"`
	OnboardingComplete bool                        `json:"onboarding_complete" gorm:"default:false"`
	CreatedAt          time.Time                   `json:"created_at"`
	UpdatedAt          time.Time                   `json:"updated_at"`
}
