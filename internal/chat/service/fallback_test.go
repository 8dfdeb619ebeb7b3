package service

import (
	"strings"
	"testing"

	listings "bluepeak_backend/internal/listings/transport"
)

func sampleShortlist(n int) []listings.ShortlistEntry {
	all := []listings.ShortlistEntry{
		{ID: "p1", Title: "Sunny Apartment", Price: 95000, Currency: "USD", Location: "Prishtina, Kosovo", Type: "Apartment", Bedrooms: 2},
		{ID: "p2", Title: "Hillside Villa", Price: 450000, Currency: "USD", Location: "Prishtina, Kosovo", Type: "Villa", Bedrooms: 4},
		{ID: "p3", Title: "Old Town Apartment", Price: 80000, Currency: "EUR", Location: "Prizren, Kosovo", Type: "Apartment", Bedrooms: 2},
		{ID: "p4", Title: "Skyline Penthouse", Price: 380000, Currency: "EUR", Location: "Tirana, Albania", Type: "Penthouse", Bedrooms: 3},
		{ID: "p5", Title: "Garden Townhouse", Price: 180000, Currency: "USD", Location: "Prishtina, Kosovo", Type: "Townhouse", Bedrooms: 3},
		{ID: "p6", Title: "Seafront Apartment", Price: 120000, Currency: "EUR", Location: "Durrës, Albania", Type: "Apartment", Bedrooms: 2},
	}
	return all[:n]
}

func TestFallbackReply_NumbersOneLinePerListing(t *testing.T) {
	reply := FallbackReply("en", sampleShortlist(3), "show me apartments")

	lines := strings.Split(reply, "\n")
	if lines[0] != "Here are a few matches from the live listings:" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 lines, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], "1. Sunny Apartment - Prishtina, Kosovo - Apartment - 2 bed - $") {
		t.Fatalf("unexpected first line: %q", lines[1])
	}
	if !strings.HasPrefix(lines[3], "3. ") {
		t.Fatalf("expected sequential numbering, got %q", lines[3])
	}
}

func TestFallbackReply_CapsAtFiveListings(t *testing.T) {
	reply := FallbackReply("en", sampleShortlist(6), "show me everything")

	lines := strings.Split(reply, "\n")
	if len(lines) != 6 {
		t.Fatalf("expected header plus 5 capped lines, got %d lines", len(lines))
	}
	if strings.Contains(reply, "Seafront Apartment") {
		t.Fatal("sixth listing should not appear in the reply")
	}
}

func TestFallbackReply_NoMatches_EnglishPrompt(t *testing.T) {
	reply := FallbackReply("en", nil, "something in Paris")

	want := "I could not find a matching property for that query. Please share city, budget, and bedrooms you need."
	if reply != want {
		t.Fatalf("unexpected no-match reply: %q", reply)
	}
}

func TestFallbackReply_NoMatches_AlbanianPrompt(t *testing.T) {
	reply := FallbackReply("sq", nil, "dicka ne Paris")

	want := "Nuk gjeta ndonjë pronë me kërkesën tuaj. Më jepni qytetin, buxhetin dhe numrin e dhomave që kërkoni."
	if reply != want {
		t.Fatalf("unexpected no-match reply: %q", reply)
	}
}

func TestFallbackReply_BookingIntentAppendsLeadHint(t *testing.T) {
	reply := FallbackReply("en", sampleShortlist(2), "can I book a viewing")

	if !strings.HasSuffix(reply, "\n\nIf you want to schedule a viewing, share your name, email, and phone.") {
		t.Fatalf("expected trailing lead hint, got %q", reply)
	}
}

func TestFallbackReply_BookingIntentAppendsLeadHint_Albanian(t *testing.T) {
	reply := FallbackReply("sq", nil, "rezervo nje vizite")

	if !strings.HasSuffix(reply, "\n\nNëse dëshironi ta rezervojmë një vizitë, më dërgoni emrin, emailin dhe telefonin.") {
		t.Fatalf("expected trailing lead hint, got %q", reply)
	}
}

func TestFallbackReply_ZeroPriceRendersPriceOnRequest(t *testing.T) {
	shortlist := []listings.ShortlistEntry{
		{ID: "p9", Title: "Private Estate", Currency: "USD", Location: "Beverly Hills, CA", Type: "Villa", Bedrooms: 6},
	}

	reply := FallbackReply("en", shortlist, "estates")
	if !strings.HasSuffix(reply, "Price on request") {
		t.Fatalf("expected price-on-request suffix, got %q", reply)
	}

	reply = FallbackReply("sq", shortlist, "vila")
	if !strings.HasSuffix(reply, "Çmimi sipas kërkesës") {
		t.Fatalf("expected Albanian price-on-request suffix, got %q", reply)
	}
}

func TestFallbackReply_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	reply := FallbackReply("de", nil, "anything")

	if !strings.HasPrefix(reply, "I could not find a matching property") {
		t.Fatalf("expected English fallback for unknown language, got %q", reply)
	}
}
