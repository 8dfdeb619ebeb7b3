package service

import (
	"regexp"

	"bluepeak_backend/internal/chat/transport"
)

// bookingIntentRe is the bilingual vocabulary for scheduling a viewing.
var bookingIntentRe = regexp.MustCompile(`(?i)schedule|book|reserve|viewing|tour|appointment|vizit|rezervo`)

// WantsViewing reports whether a message asks to schedule a property viewing.
func WantsViewing(text string) bool {
	return bookingIntentRe.MatchString(text)
}

// RequiresLead is the lead-gate predicate, evaluated identically on both
// sides of the network boundary: lead details are required when the last
// user message carries booking intent and the supplied lead is incomplete.
func RequiresLead(lastUserText string, lead *transport.Lead) bool {
	return WantsViewing(lastUserText) && !lead.Complete()
}
