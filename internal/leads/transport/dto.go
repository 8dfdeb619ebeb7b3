package transport

// ViewingRequest captures contact details for a property viewing or a general
// contact inquiry. All three contact fields are required together.
type ViewingRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email,max=200"`
	Phone     string `json:"phone" validate:"required,min=5,max=30"`
	ListingID string `json:"listingId" validate:"omitempty,max=100"`
	Message   string `json:"message" validate:"omitempty,max=2000"`
}

// ViewingResponse acknowledges a captured lead.
type ViewingResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}
