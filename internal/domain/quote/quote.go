package quote

import (
	"time"

	"github.com/shopspring/decimal"

	"quotedesk/backend/internal/domain/catalog"
)

// ValidFor is how long a quotation stays valid after creation.
const ValidFor = 30 * 24 * time.Hour

type Invoice struct {
	Number     string
	CreatedAt  time.Time
	ValidUntil time.Time
	Client     ClientInfo
	Website    WebsiteInfo
	Services   []SelectedService
	Items      []LineItem

	SubTotal     decimal.Decimal
	VATAmount    decimal.Decimal
	TotalAmount  decimal.Decimal
	MonthlyTotal decimal.Decimal
}

// ClientInfo is collected on wizard step 2.
type ClientInfo struct {
	BusinessName   string `json:"businessName" validate:"required"`
	ContactName    string `json:"contactName" validate:"required"`
	ContactSurname string `json:"contactSurname" validate:"required"`
	Email          string `json:"email" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Address        string `json:"address,omitempty"`
	VATNumber      string `json:"vatNumber,omitempty"`
}

func (c ClientInfo) ContactFullName() string {
	switch {
	case c.ContactName == "":
		return c.ContactSurname
	case c.ContactSurname == "":
		return c.ContactName
	}
	return c.ContactName + " " + c.ContactSurname
}

// WebsiteInfo is collected on wizard step 1.
type WebsiteInfo struct {
	Name     string `json:"websiteName" validate:"required"`
	Domain   string `json:"domain" validate:"required"`
	Industry string `json:"industry,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

type SelectedService struct {
	CategoryID    string
	CategoryTitle string
	Option        catalog.Option
}

// LineItem is one printable row. Monthly rows are itemised but never part
// of the VAT subtotal.
type LineItem struct {
	CategoryID  string
	Description string
	Amount      decimal.Decimal
	Monthly     bool
}
