package quote

import (
	"time"

	"quotedesk/backend/internal/domain/catalog"
)

// Request is a quote as submitted by the wizard: the collected details
// plus one option name per category. Missing or null categories are
// unselected.
type Request struct {
	Client         ClientInfo         `json:"client"`
	Website        WebsiteInfo        `json:"website"`
	Selections     map[string]*string `json:"selections"`
	RecipientEmail string             `json:"recipientEmail,omitempty"`
}

// Invoice resolves the selections against c and builds the invoice.
func (r Request) Invoice(c *catalog.Catalog, now time.Time, numbers Numberer) (Invoice, error) {
	sel, err := SelectionFromNames(c, r.Selections)
	if err != nil {
		return Invoice{}, err
	}
	return Build(r.Client, r.Website, sel, now, numbers), nil
}
