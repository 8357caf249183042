package proposal

import "github.com/shopspring/decimal"

type SubmitProposalInput struct {
	BidAmount   decimal.Decimal `json:"bid_amount" swaggertype:"string" example:"450"`
	CoverLetter string          `json:"cover_letter" example:"I have shipped five similar sites."`
}

type AdvanceInput struct {
	Status Status `json:"status" binding:"required" example:"viewed"`
}
