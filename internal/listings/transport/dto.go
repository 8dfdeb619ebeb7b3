package transport

// BrowseRequest carries the general listings browse filters. All fields are
// optional; absent fields mean "no constraint".
type BrowseRequest struct {
	Location    string   `form:"location" validate:"max=100"`
	Type        string   `form:"type" validate:"omitempty,oneof=Apartment Townhouse Villa Penthouse"`
	MinPrice    *float64 `form:"minPrice" validate:"omitempty,min=0"`
	MaxPrice    *float64 `form:"maxPrice" validate:"omitempty,min=0"`
	MinSize     *float64 `form:"minSize" validate:"omitempty,min=0"`
	MinRooms    *int     `form:"minRooms" validate:"omitempty,min=0"`
	MinBedrooms *int     `form:"bedrooms" validate:"omitempty,min=0"`
	Sort        string   `form:"sort" validate:"omitempty,oneof=newest priceAsc priceDesc"`
	Page        int      `form:"page" validate:"omitempty,min=1"`
}

// ListingResponse is the full listing shape for detail and browse views.
type ListingResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Location       string   `json:"location"`
	Type           string   `json:"type"`
	Price          float64  `json:"price"`
	Currency       string   `json:"currency"`
	PriceFormatted string   `json:"priceFormatted"`
	Bedrooms       int      `json:"bedrooms"`
	Bathrooms      int      `json:"bathrooms"`
	SizeSqm        float64  `json:"sizeSqm"`
	Rooms          int      `json:"rooms"`
	CreatedAt      string   `json:"createdAt"`
	Description    string   `json:"description"`
	Images         []string `json:"images"`
	Tags           []string `json:"tags"`
	AgentID        string   `json:"agentId"`
	Lat            float64  `json:"lat"`
	Lng            float64  `json:"lng"`
}

// BrowseResponse is a single page of browse results.
type BrowseResponse struct {
	Items      []ListingResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}

// ShortlistEntry is the compact projection used for chat grounding and the
// shortlist panel.
type ShortlistEntry struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	Location string  `json:"location"`
	Type     string  `json:"type"`
	Bedrooms int     `json:"bedrooms"`
}

// CompareRequest selects up to three listings for side-by-side comparison.
type CompareRequest struct {
	IDs []string `form:"ids" validate:"required,min=1,max=3,dive,required"`
}

// CompareResponse returns the selected listings in request order.
type CompareResponse struct {
	Items []ListingResponse `json:"items"`
}
