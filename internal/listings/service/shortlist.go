package service

import (
	"bluepeak_backend/internal/listings/repository"
	"bluepeak_backend/internal/listings/transport"
	"bluepeak_backend/platform/currency"
	"bluepeak_backend/platform/textnorm"
)

// ShortlistFilters is the structured filter set derived from a chat query.
// Zero values mean "no constraint"; a filter with every field absent matches
// the whole catalog.
type ShortlistFilters struct {
	Type        repository.PropertyType
	City        string
	MaxPriceUSD float64
	MinBedrooms int
}

// Empty reports whether no constraint is present.
func (f ShortlistFilters) Empty() bool {
	return f.Type == "" && f.City == "" && f.MaxPriceUSD == 0 && f.MinBedrooms == 0
}

// Shortlist applies the filter set to the catalog, preserving catalog order,
// truncates to limit, and projects to the compact shortlist shape. It is pure
// and introduces no sorting of its own.
func (s *Service) Shortlist(filters ShortlistFilters, limit int) []transport.ShortlistEntry {
	if limit <= 0 {
		limit = DefaultShortlistLimit
	}

	entries := make([]transport.ShortlistEntry, 0, limit)
	for _, l := range s.repo.All() {
		if !s.shortlistMatch(l, filters) {
			continue
		}
		entries = append(entries, transport.ShortlistEntry{
			ID:       l.ID,
			Title:    l.Title,
			Price:    l.Price,
			Currency: l.Currency,
			Location: l.Location,
			Type:     string(l.Type),
			Bedrooms: l.Bedrooms,
		})
		if len(entries) == limit {
			break
		}
	}
	return entries
}

func (s *Service) shortlistMatch(l repository.Listing, f ShortlistFilters) bool {
	if f.Type != "" && l.Type != f.Type {
		return false
	}
	if f.City != "" && !textnorm.Contains(l.Location, f.City) {
		return false
	}
	if f.MaxPriceUSD > 0 && s.priceUSD(l) > f.MaxPriceUSD {
		return false
	}
	if f.MinBedrooms > 0 && l.Bedrooms < f.MinBedrooms {
		return false
	}
	return true
}
