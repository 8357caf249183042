package user

type CreateUserInput struct {
	Username string  `json:"username" form:"username" binding:"required,min=3,max=50" example:"johndoe"`
	Password string  `json:"password" form:"password" binding:"required,min=6" example:"password123"`
	Email    *string `json:"email" form:"email" binding:"omitempty,email" example:"user@example.com"`
	FullName *string `json:"full_name" form:"full_name" example:"John Doe"`
	Role     Role    `json:"role" form:"role" binding:"required,oneof=client freelancer" example:"freelancer"`
}

type LoginInput struct {
	Username string `json:"username" form:"username" binding:"required" example:"johndoe"`
	Password string `json:"password" form:"password" binding:"required" example:"password123"`
}

// OnboardingInput fills in the profile after signup. Company name applies to
// clients, portfolio and skills to freelancers; the other side is ignored.
type OnboardingInput struct {
	Bio          string   `json:"bio" binding:"required" example:"I build web apps."`
	CompanyName  *string  `json:"company_name" example:"Acme"`
	PortfolioURL *string  `json:"portfolio_url" binding:"omitempty,url" example:"https://myportfolio.com"`
	Skills       []string `json:"skills" example:"go,react"`
}
