// Package repository holds the static listings catalog. The catalog is loaded
// once at startup from an embedded asset and never mutated afterwards; all
// operations are reads over a stable ordering.
package repository

import (
	"time"

	"bluepeak_backend/platform/apperr"
)

// PropertyType is the closed set of listing types.
type PropertyType string

const (
	TypeApartment PropertyType = "Apartment"
	TypeTownhouse PropertyType = "Townhouse"
	TypeVilla     PropertyType = "Villa"
	TypePenthouse PropertyType = "Penthouse"
)

// KnownType reports whether s is one of the supported property types.
func KnownType(s string) bool {
	switch PropertyType(s) {
	case TypeApartment, TypeTownhouse, TypeVilla, TypePenthouse:
		return true
	}
	return false
}

// Listing is an immutable catalog record.
type Listing struct {
	ID          string       `yaml:"id"`
	Title       string       `yaml:"title"`
	Location    string       `yaml:"location"`
	Type        PropertyType `yaml:"type"`
	Price       float64      `yaml:"price"`
	Currency    string       `yaml:"currency"`
	Bedrooms    int          `yaml:"bedrooms"`
	Bathrooms   int          `yaml:"bathrooms"`
	SizeSqm     float64      `yaml:"sizeSqm"`
	Rooms       int          `yaml:"rooms"`
	CreatedAt   time.Time    `yaml:"createdAt"`
	Description string       `yaml:"description"`
	Images      []string     `yaml:"images"`
	Tags        []string     `yaml:"tags"`
	AgentID     string       `yaml:"agentId"`
	Lat         float64      `yaml:"lat"`
	Lng         float64      `yaml:"lng"`
}

// Repository provides read access to the catalog.
type Repository interface {
	// All returns every listing in catalog order. Callers must not mutate
	// the returned slice.
	All() []Listing
	// ByID returns the listing with the given id.
	ByID(id string) (Listing, error)
}

// Memory is the in-memory Repository backed by the embedded seed.
type Memory struct {
	listings []Listing
	byID     map[string]int
}

// New builds a Memory repository from the embedded seed catalog.
func New() (*Memory, error) {
	listings, err := loadSeed()
	if err != nil {
		return nil, err
	}
	return NewWithListings(listings), nil
}

// NewWithListings builds a Memory repository over the given catalog.
// Intended for tests that need a controlled catalog.
func NewWithListings(listings []Listing) *Memory {
	byID := make(map[string]int, len(listings))
	for i, l := range listings {
		byID[l.ID] = i
	}
	return &Memory{listings: listings, byID: byID}
}

// All returns every listing in catalog order.
func (m *Memory) All() []Listing {
	return m.listings
}

// ByID returns the listing with the given id.
func (m *Memory) ByID(id string) (Listing, error) {
	i, ok := m.byID[id]
	if !ok {
		return Listing{}, apperr.NotFound("listing not found")
	}
	return m.listings[i], nil
}
