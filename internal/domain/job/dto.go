package job

import "github.com/shopspring/decimal"

type CreateJobInput struct {
	Title           string          `json:"title" binding:"required" example:"Landing page in Next.js"`
	Description     string          `json:"description" binding:"required" example:"Need a marketing site."`
	Budget          decimal.Decimal `json:"budget" swaggertype:"string" example:"500"`
	BudgetType      BudgetType      `json:"budget_type" example:"Fixed"`
	ExperienceLevel ExperienceLevel `json:"experience_level" example:"Intermediate"`
	Skills          []string        `json:"skills" example:"react,css"`
}
