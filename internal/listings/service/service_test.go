package service

import (
	"reflect"
	"testing"
	"time"

	"bluepeak_backend/internal/listings/repository"
	"bluepeak_backend/internal/listings/transport"
	"bluepeak_backend/platform/currency"
	"bluepeak_backend/platform/logger"
)

func day(n int) time.Time {
	return time.Date(2026, 1, n, 0, 0, 0, 0, time.UTC)
}

func testCatalog() []repository.Listing {
	return []repository.Listing{
		{ID: "p1", Title: "Sunny Apartment", Location: "Prishtina, Kosovo", Type: repository.TypeApartment, Price: 95000, Currency: "USD", Bedrooms: 2, Rooms: 3, SizeSqm: 70, CreatedAt: day(1)},
		{ID: "p2", Title: "Hillside Villa", Location: "Prishtina, Kosovo", Type: repository.TypeVilla, Price: 450000, Currency: "USD", Bedrooms: 4, Rooms: 6, SizeSqm: 240, CreatedAt: day(2)},
		{ID: "p3", Title: "Old Town Apartment", Location: "Prizren, Kosovo", Type: repository.TypeApartment, Price: 80000, Currency: "EUR", Bedrooms: 2, Rooms: 3, SizeSqm: 65, CreatedAt: day(3)},
		{ID: "p4", Title: "Skyline Penthouse", Location: "Tirana, Albania", Type: repository.TypePenthouse, Price: 380000, Currency: "EUR", Bedrooms: 3, Rooms: 5, SizeSqm: 160, CreatedAt: day(4)},
		{ID: "p5", Title: "Garden Townhouse", Location: "Prishtina, Kosovo", Type: repository.TypeTownhouse, Price: 180000, Currency: "USD", Bedrooms: 3, Rooms: 4, SizeSqm: 130, CreatedAt: day(5)},
		{ID: "p6", Title: "Seafront Apartment", Location: "Durrës, Albania", Type: repository.TypeApartment, Price: 120000, Currency: "EUR", Bedrooms: 2, Rooms: 3, SizeSqm: 75, CreatedAt: day(6)},
		{ID: "p7", Title: "Compact Studio Apartment", Location: "Prishtina, Kosovo", Type: repository.TypeApartment, Price: 60000, Currency: "USD", Bedrooms: 1, Rooms: 2, SizeSqm: 40, CreatedAt: day(7)},
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	repo := repository.NewWithListings(testCatalog())
	return New(repo, currency.NewConverter(1.09), logger.New("development"))
}

func shortlistIDs(entries []transport.ShortlistEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestShortlist_AllAbsentFilters_ReturnFirstEntriesInCatalogOrder(t *testing.T) {
	svc := newTestService(t)

	got := svc.Shortlist(ShortlistFilters{}, 5)

	want := []string{"p1", "p2", "p3", "p4", "p5"}
	if !reflect.DeepEqual(shortlistIDs(got), want) {
		t.Fatalf("expected %v, got %v", want, shortlistIDs(got))
	}
}

func TestShortlist_TypeFilter_ExactMatch(t *testing.T) {
	svc := newTestService(t)

	got := svc.Shortlist(ShortlistFilters{Type: repository.TypeApartment}, 5)

	want := []string{"p1", "p3", "p6", "p7"}
	if !reflect.DeepEqual(shortlistIDs(got), want) {
		t.Fatalf("expected %v, got %v", want, shortlistIDs(got))
	}
}

func TestShortlist_CityFilter_DiacriticInsensitiveSubstring(t *testing.T) {
	svc := newTestService(t)

	got := svc.Shortlist(ShortlistFilters{City: "durres"}, 5)

	if len(got) != 1 || got[0].ID != "p6" {
		t.Fatalf("expected [p6], got %v", shortlistIDs(got))
	}
}

func TestShortlist_PriceCeiling_NormalizesEURListings(t *testing.T) {
	svc := newTestService(t)

	// p3 is EUR 80,000 which is USD 87,200 at rate 1.09. A ceiling of
	// 90,000 USD admits it; a ceiling of 87,000 does not.
	got := svc.Shortlist(ShortlistFilters{Type: repository.TypeApartment, MaxPriceUSD: 90000}, 5)
	want := []string{"p1", "p3", "p7"}
	if !reflect.DeepEqual(shortlistIDs(got), want) {
		t.Fatalf("expected %v, got %v", want, shortlistIDs(got))
	}

	got = svc.Shortlist(ShortlistFilters{Type: repository.TypeApartment, MaxPriceUSD: 87000}, 5)
	want = []string{"p1", "p7"}
	if !reflect.DeepEqual(shortlistIDs(got), want) {
		t.Fatalf("expected %v, got %v", want, shortlistIDs(got))
	}
}

func TestShortlist_Idempotent(t *testing.T) {
	svc := newTestService(t)
	filters := ShortlistFilters{City: "prishtina", MinBedrooms: 2}

	first := svc.Shortlist(filters, 5)
	second := svc.Shortlist(filters, 5)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("shortlist not idempotent: %v vs %v", first, second)
	}
}

func TestShortlist_LimitCapsResults(t *testing.T) {
	svc := newTestService(t)

	got := svc.Shortlist(ShortlistFilters{}, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}

	// Non-positive limit falls back to the default cap.
	got = svc.Shortlist(ShortlistFilters{}, 0)
	if len(got) != DefaultShortlistLimit {
		t.Fatalf("expected %d entries, got %d", DefaultShortlistLimit, len(got))
	}
}

func TestShortlist_CombinedQueryScenario(t *testing.T) {
	svc := newTestService(t)

	// "2 bedroom apartment in Prishtina under €100k": 100k EUR is 109k USD.
	got := svc.Shortlist(ShortlistFilters{
		Type:        repository.TypeApartment,
		City:        "prishtina",
		MaxPriceUSD: 109000,
		MinBedrooms: 2,
	}, 5)

	if len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("expected [p1], got %v", shortlistIDs(got))
	}
}

func TestBrowse_DefaultSortNewestFirst(t *testing.T) {
	svc := newTestService(t)

	got := svc.Browse(transport.BrowseRequest{Page: 1})

	if got.Total != 7 || got.TotalPages != 2 {
		t.Fatalf("expected total 7 over 2 pages, got %d over %d", got.Total, got.TotalPages)
	}
	if len(got.Items) != BrowsePageSize {
		t.Fatalf("expected full page of %d, got %d", BrowsePageSize, len(got.Items))
	}
	if got.Items[0].ID != "p7" {
		t.Fatalf("expected newest listing first, got %s", got.Items[0].ID)
	}
}

func TestBrowse_PriceAscSortUsesNormalizedPrices(t *testing.T) {
	svc := newTestService(t)

	got := svc.Browse(transport.BrowseRequest{Sort: "priceAsc", Page: 1})

	// p3 (EUR 80k = USD 87.2k) sorts below p1 (USD 95k) but above p7 (USD 60k).
	if got.Items[0].ID != "p7" || got.Items[1].ID != "p3" || got.Items[2].ID != "p1" {
		t.Fatalf("unexpected priceAsc order: %s, %s, %s", got.Items[0].ID, got.Items[1].ID, got.Items[2].ID)
	}
}

func TestBrowse_LocationMatchesTitleToo(t *testing.T) {
	svc := newTestService(t)

	got := svc.Browse(transport.BrowseRequest{Location: "seafront", Page: 1})

	if got.Total != 1 || got.Items[0].ID != "p6" {
		t.Fatalf("expected [p6] via title match, got total %d", got.Total)
	}
}

func TestBrowse_PageBeyondRangeClampsToLastPage(t *testing.T) {
	svc := newTestService(t)

	got := svc.Browse(transport.BrowseRequest{Page: 99})

	if got.Page != 2 {
		t.Fatalf("expected clamp to page 2, got %d", got.Page)
	}
	if len(got.Items) != 1 {
		t.Fatalf("expected 1 item on last page, got %d", len(got.Items))
	}
}

func TestBrowse_NoMatches_EmptyFirstPage(t *testing.T) {
	svc := newTestService(t)

	got := svc.Browse(transport.BrowseRequest{Location: "nowhere", Page: 1})

	if got.Total != 0 || len(got.Items) != 0 || got.TotalPages != 1 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestCompare_PreservesRequestOrder(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.Compare([]string{"p4", "p1", "p5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Items[0].ID != "p4" || got.Items[1].ID != "p1" || got.Items[2].ID != "p5" {
		t.Fatalf("compare order not preserved: %s, %s, %s", got.Items[0].ID, got.Items[1].ID, got.Items[2].ID)
	}
}

func TestCompare_UnknownIDFails(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Compare([]string{"p1", "missing"}); err == nil {
		t.Fatal("expected error for unknown listing id")
	}
}
