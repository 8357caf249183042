package application

import (
	"github.com/linskybing/gigboard/pkg/apperr"
	"github.com/shopspring/decimal"
)

// Money columns are numeric(12,2): ten integer digits and cents.
var maxAmount = decimal.New(1, 10)

// cents rounds d to cents and rejects values the money columns cannot hold.
// Checks on sign must use the rounded value.
func cents(what string, d decimal.Decimal) (decimal.Decimal, error) {
	r := d.Round(2)
	if r.Abs().GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, apperr.Validation("%s must be less than %s", what, maxAmount.String())
	}
	return r, nil
}
