package transport

// EstimateRequest carries the mortgage calculator inputs.
type EstimateRequest struct {
	Price        float64 `form:"price" validate:"required,gt=0"`
	DownPayment  float64 `form:"downPayment" validate:"min=0"`
	InterestRate float64 `form:"interestRate" validate:"min=0,max=100"`
	TermYears    int     `form:"termYears" validate:"required,min=1,max=50"`
}

// EstimateResponse is the closed-form amortization result.
type EstimateResponse struct {
	LoanAmount              float64 `json:"loanAmount"`
	MonthlyPayment          float64 `json:"monthlyPayment"`
	TotalPaid               float64 `json:"totalPaid"`
	TotalInterest           float64 `json:"totalInterest"`
	PaymentsCount           int     `json:"paymentsCount"`
	MonthlyPaymentFormatted string  `json:"monthlyPaymentFormatted"`
}
