// Package service provides business logic for the listings catalog: the
// general browse view, side-by-side comparison, and the chat shortlist
// matcher.
package service

import (
	"sort"
	"time"

	"bluepeak_backend/internal/listings/repository"
	"bluepeak_backend/internal/listings/transport"
	"bluepeak_backend/platform/currency"
	"bluepeak_backend/platform/logger"
	"bluepeak_backend/platform/textnorm"
)

// BrowsePageSize is the fixed page size of the browse view.
const BrowsePageSize = 6

// DefaultShortlistLimit caps the chat shortlist.
const DefaultShortlistLimit = 5

// Service provides read operations over the catalog.
type Service struct {
	repo repository.Repository
	conv *currency.Converter
	log  *logger.Logger
}

// New creates a new listings service.
func New(repo repository.Repository, conv *currency.Converter, log *logger.Logger) *Service {
	return &Service{repo: repo, conv: conv, log: log}
}

// GetByID returns a single listing.
func (s *Service) GetByID(id string) (transport.ListingResponse, error) {
	l, err := s.repo.ByID(id)
	if err != nil {
		return transport.ListingResponse{}, err
	}
	return s.toListingResponse(l), nil
}

// Browse applies the browse filters, sorts, and paginates.
func (s *Service) Browse(req transport.BrowseRequest) transport.BrowseResponse {
	var matched []repository.Listing
	for _, l := range s.repo.All() {
		if !s.browseMatch(l, req) {
			continue
		}
		matched = append(matched, l)
	}

	switch req.Sort {
	case "priceAsc":
		sort.SliceStable(matched, func(i, j int) bool {
			return s.priceUSD(matched[i]) < s.priceUSD(matched[j])
		})
	case "priceDesc":
		sort.SliceStable(matched, func(i, j int) bool {
			return s.priceUSD(matched[i]) > s.priceUSD(matched[j])
		})
	default: // newest
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		})
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	totalPages := (len(matched) + BrowsePageSize - 1) / BrowsePageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * BrowsePageSize
	end := start + BrowsePageSize
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	items := make([]transport.ListingResponse, 0, end-start)
	for _, l := range matched[start:end] {
		items = append(items, s.toListingResponse(l))
	}

	return transport.BrowseResponse{
		Items:      items,
		Total:      len(matched),
		Page:       page,
		PageSize:   BrowsePageSize,
		TotalPages: totalPages,
	}
}

func (s *Service) browseMatch(l repository.Listing, req transport.BrowseRequest) bool {
	if req.Location != "" &&
		!textnorm.Contains(l.Location, req.Location) &&
		!textnorm.Contains(l.Title, req.Location) {
		return false
	}
	if req.Type != "" && string(l.Type) != req.Type {
		return false
	}

	price := s.priceUSD(l)
	if req.MinPrice != nil && price < *req.MinPrice {
		return false
	}
	if req.MaxPrice != nil && price > *req.MaxPrice {
		return false
	}
	if req.MinSize != nil && l.SizeSqm < *req.MinSize {
		return false
	}
	if req.MinRooms != nil && l.Rooms < *req.MinRooms {
		return false
	}
	if req.MinBedrooms != nil && l.Bedrooms < *req.MinBedrooms {
		return false
	}
	return true
}

// Compare returns up to three listings in request order.
func (s *Service) Compare(ids []string) (transport.CompareResponse, error) {
	items := make([]transport.ListingResponse, 0, len(ids))
	for _, id := range ids {
		l, err := s.repo.ByID(id)
		if err != nil {
			return transport.CompareResponse{}, err
		}
		items = append(items, s.toListingResponse(l))
	}
	return transport.CompareResponse{Items: items}, nil
}

func (s *Service) priceUSD(l repository.Listing) float64 {
	return s.conv.Convert(l.Price, l.Currency, currency.USD)
}

func (s *Service) toListingResponse(l repository.Listing) transport.ListingResponse {
	return transport.ListingResponse{
		ID:             l.ID,
		Title:          l.Title,
		Location:       l.Location,
		Type:           string(l.Type),
		Price:          l.Price,
		Currency:       l.Currency,
		PriceFormatted: currency.Format(l.Price, l.Currency, "en"),
		Bedrooms:       l.Bedrooms,
		Bathrooms:      l.Bathrooms,
		SizeSqm:        l.SizeSqm,
		Rooms:          l.Rooms,
		CreatedAt:      l.CreatedAt.Format(time.RFC3339),
		Description:    l.Description,
		Images:         l.Images,
		Tags:           l.Tags,
		AgentID:        l.AgentID,
		Lat:            l.Lat,
		Lng:            l.Lng,
	}
}
