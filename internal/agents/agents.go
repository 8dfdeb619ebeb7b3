// Package agents provides the agent directory module.
package agents

// Agent is a directory record for a property advisor.
type Agent struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Title     string   `json:"title"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
	Bio       string   `json:"bio"`
	Languages []string `json:"languages"`
}

// Demo agents dataset (CMS-ready placeholder). Replace with API/CMS data when
// integrating a backend directory.
var directory = []Agent{
	{
		ID:        "agent-ava-carter",
		Name:      "Ava Carter",
		Title:     "Senior Property Advisor",
		Phone:     "+1 (212) 555-0142",
		Email:     "ava.carter@bluepeakrealty.com",
		Bio:       "Ava specializes in luxury apartments and investment-grade properties, guiding clients through valuation, negotiation, and closing with clarity and discretion.",
		Languages: []string{"English", "French"},
	},
	{
		ID:        "agent-noah-ramirez",
		Name:      "Noah Ramirez",
		Title:     "Global Buyer Specialist",
		Phone:     "+1 (212) 555-0187",
		Email:     "noah.ramirez@bluepeakrealty.com",
		Bio:       "Noah supports international buyers with end-to-end relocation expertise, including market research, viewings, and paperwork coordination.",
		Languages: []string{"English", "Spanish"},
	},
	{
		ID:        "agent-lina-hassan",
		Name:      "Lina Hassan",
		Title:     "Residential Listings Director",
		Phone:     "+1 (212) 555-0111",
		Email:     "lina.hassan@bluepeakrealty.com",
		Bio:       "Lina curates high-performing listings with professional marketing and hands-on seller support, focused on premium presentation and strong outcomes.",
		Languages: []string{"English", "Arabic"},
	},
}

// All returns the full agent directory in stable order.
func All() []Agent {
	return directory
}

// ByID returns the agent with the given id.
func ByID(id string) (Agent, bool) {
	for _, a := range directory {
		if a.ID == id {
			return a, true
		}
	}
	return Agent{}, false
}
