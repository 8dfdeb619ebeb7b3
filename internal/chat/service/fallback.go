package service

import (
	"fmt"
	"strings"

	listings "bluepeak_backend/internal/listings/transport"
	"bluepeak_backend/platform/currency"
)

// fallbackStrings holds the per-language fixed strings of the templated
// responder.
type fallbackStrings struct {
	header         string
	noMatches      string
	bookingHint    string
	apology        string
	priceOnRequest string
}

var fallbackByLanguage = map[string]fallbackStrings{
	"en": {
		header:         "Here are a few matches from the live listings:",
		noMatches:      "I could not find a matching property for that query. Please share city, budget, and bedrooms you need.",
		bookingHint:    "If you want to schedule a viewing, share your name, email, and phone.",
		apology:        "Sorry, something went wrong.",
		priceOnRequest: "Price on request",
	},
	"sq": {
		header:         "Ja disa sugjerime nga listat aktuale:",
		noMatches:      "Nuk gjeta ndonjë pronë me kërkesën tuaj. Më jepni qytetin, buxhetin dhe numrin e dhomave që kërkoni.",
		bookingHint:    "Nëse dëshironi ta rezervojmë një vizitë, më dërgoni emrin, emailin dhe telefonin.",
		apology:        "Na fal, pati një problem.",
		priceOnRequest: "Çmimi sipas kërkesës",
	},
}

func stringsFor(language string) fallbackStrings {
	if s, ok := fallbackByLanguage[language]; ok {
		return s
	}
	return fallbackByLanguage["en"]
}

// FallbackReply deterministically builds a listings-grounded reply without
// any external calls. It always succeeds.
func FallbackReply(language string, shortlist []listings.ShortlistEntry, lastUserText string) string {
	str := stringsFor(language)

	var b strings.Builder
	if len(shortlist) == 0 {
		b.WriteString(str.noMatches)
	} else {
		b.WriteString(str.header)
		for i, p := range shortlist {
			if i == maxShortlist {
				break
			}
			b.WriteString("\n")
			b.WriteString(fmt.Sprintf("%d. %s - %s - %s - %d bed - %s",
				i+1, p.Title, p.Location, p.Type, p.Bedrooms, priceText(p, language, str)))
		}
	}

	if WantsViewing(lastUserText) {
		b.WriteString("\n\n")
		b.WriteString(str.bookingHint)
	}

	return b.String()
}

func priceText(p listings.ShortlistEntry, language string, str fallbackStrings) string {
	if p.Price <= 0 {
		return str.priceOnRequest
	}
	return currency.Format(p.Price, p.Currency, language)
}
