// Package dashboard holds the view models shown on the admin and agent
// dashboards. Records are owned by the remote API; these are request
// scoped copies.
package dashboard

import "time"

type Agent struct {
	ID             string     `json:"id"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	CommissionRate float64    `json:"commissionRate"`
	TotalSales     float64    `json:"totalSales"`
	IsActive       bool       `json:"isActive"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
}

func (a Agent) Key() string { return a.ID }

func (a Agent) FullName() string {
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}

type Client struct {
	ID             string     `json:"id"`
	BusinessName   string     `json:"businessName"`
	ContactName    string     `json:"contactName"`
	ContactSurname string     `json:"contactSurname"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	AgentID        string     `json:"agentId"`
	ProductIDs     []string   `json:"productIds"`
	IsActive       bool       `json:"isActive"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
}

func (c Client) Key() string { return c.ID }

type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Price        float64  `json:"price"`
	MonthlyPrice float64  `json:"monthlyPrice"`
	Features     []string `json:"features"`
	IsActive     bool     `json:"isActive"`
}

func (p Product) Key() string { return p.ID }

type Transaction struct {
	ID               string     `json:"id"`
	AgentID          string     `json:"agentId"`
	ClientID         string     `json:"clientId"`
	ProductID        string     `json:"productId"`
	Amount           float64    `json:"amount"`
	CommissionAmount float64    `json:"commissionAmount"`
	Status           string     `json:"status"`
	TransactionDate  *time.Time `json:"transactionDate,omitempty"`
}

func (t Transaction) Key() string { return t.ID }

type CommissionPayout struct {
	ID               string     `json:"id"`
	AgentID          string     `json:"agentId"`
	AgentName        string     `json:"agentName"`
	Period           string     `json:"period"`
	TotalSales       float64    `json:"totalSales"`
	CommissionAmount float64    `json:"commissionAmount"`
	Status           string     `json:"status"`
	PaidAt           *time.Time `json:"paidAt,omitempty"`
	CreatedAt        *time.Time `json:"createdAt,omitempty"`
}

func (p CommissionPayout) Key() string { return p.ID }

type QuoteRecord struct {
	ID             string     `json:"id"`
	QuoteNumber    string     `json:"quoteNumber"`
	BusinessName   string     `json:"businessName"`
	RecipientEmail string     `json:"recipientEmail"`
	SubTotal       float64    `json:"subTotal"`
	VATAmount      float64    `json:"vatAmount"`
	TotalAmount    float64    `json:"totalAmount"`
	Status         string     `json:"status"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	ValidUntil     *time.Time `json:"validUntil,omitempty"`
}

func (q QuoteRecord) Key() string { return q.ID }

type AgentInput struct {
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	CommissionRate float64 `json:"commissionRate"`
	IsActive       bool    `json:"isActive"`
}

type ClientInput struct {
	BusinessName   string   `json:"businessName"`
	ContactName    string   `json:"contactName"`
	ContactSurname string   `json:"contactSurname"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	AgentID        string   `json:"agentId"`
	ProductIDs     []string `json:"productIds"`
	IsActive       bool     `json:"isActive"`
}

type ProductInput struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Price        float64  `json:"price"`
	MonthlyPrice float64  `json:"monthlyPrice"`
	Features     []string `json:"features"`
	IsActive     bool     `json:"isActive"`
}

type TransactionInput struct {
	AgentID          string     `json:"agentId"`
	ClientID         string     `json:"clientId"`
	ProductID        string     `json:"productId"`
	Amount           float64    `json:"amount"`
	CommissionAmount float64    `json:"commissionAmount"`
	Status           string     `json:"status"`
	TransactionDate  *time.Time `json:"transactionDate,omitempty"`
}

// RegisterInput signs up a new dashboard user with the remote API.
type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// GenerateResult is the outcome of a payout generation run.
type GenerateResult struct {
	Message        string `json:"message"`
	GeneratedCount int    `json:"generatedCount"`
}
