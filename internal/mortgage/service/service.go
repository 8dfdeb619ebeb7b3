// Package service computes closed-form mortgage estimates.
package service

import (
	"math"

	"bluepeak_backend/internal/mortgage/transport"
	"bluepeak_backend/platform/apperr"
	"bluepeak_backend/platform/currency"
)

// Estimate computes the monthly payment for a fixed-rate loan. A zero
// interest rate degenerates to linear amortization.
func Estimate(req transport.EstimateRequest) (transport.EstimateResponse, error) {
	if req.DownPayment > req.Price {
		return transport.EstimateResponse{}, apperr.Validation("down payment cannot exceed price")
	}

	loan := req.Price - req.DownPayment
	n := req.TermYears * 12
	if loan <= 0 || n <= 0 {
		return transport.EstimateResponse{
			MonthlyPaymentFormatted: currency.Format(0, currency.USD, "en"),
			PaymentsCount:           n,
		}, nil
	}

	var monthly float64
	r := req.InterestRate / 100 / 12
	if r == 0 {
		monthly = loan / float64(n)
	} else {
		pow := math.Pow(1+r, float64(n))
		monthly = loan * r * pow / (pow - 1)
	}

	totalPaid := monthly * float64(n)

	return transport.EstimateResponse{
		LoanAmount:              loan,
		MonthlyPayment:          monthly,
		TotalPaid:               totalPaid,
		TotalInterest:           totalPaid - loan,
		PaymentsCount:           n,
		MonthlyPaymentFormatted: currency.Format(monthly, currency.USD, "en"),
	}, nil
}
