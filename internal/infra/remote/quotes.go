package remote

import (
	"context"

	"quotedesk/backend/internal/domain/dashboard"
	"quotedesk/backend/internal/domain/quote"
)

type saveQuoteData struct {
	ID      Text `json:"id"`
	QuoteID Text `json:"quote_id"`
}

// SaveQuote implements quote.Submitter.
func (c *Client) SaveQuote(ctx context.Context, p quote.Payload) (quote.SaveResult, error) {
	env, err := c.call(ctx, EndpointSaveQuote, p)
	if err != nil {
		return quote.SaveResult{}, err
	}
	var data saveQuoteData
	if err := decodeData(EndpointSaveQuote, env, &data); err != nil {
		return quote.SaveResult{}, err
	}
	id := string(data.QuoteID)
	if id == "" {
		id = string(data.ID)
	}
	return quote.SaveResult{Message: env.Message, QuoteID: id}, nil
}

type quoteWire struct {
	ID             Text   `json:"id"`
	QuoteNumber    string `json:"quote_number"`
	BusinessName   string `json:"business_name"`
	RecipientEmail string `json:"recipient_email"`
	SubTotal       Number `json:"sub_total"`
	VATAmount      Number `json:"vat_amount"`
	TotalAmount    Number `json:"total_amount"`
	Status         string `json:"status"`
	DateCreated    Time   `json:"date_created"`
	ValidUntil     Time   `json:"valid_until"`
}

func toQuoteRecord(w quoteWire) dashboard.QuoteRecord {
	return dashboard.QuoteRecord{
		ID:             string(w.ID),
		QuoteNumber:    w.QuoteNumber,
		BusinessName:   w.BusinessName,
		RecipientEmail: w.RecipientEmail,
		SubTotal:       w.SubTotal.Float(),
		VATAmount:      w.VATAmount.Float(),
		TotalAmount:    w.TotalAmount.Float(),
		Status:         w.Status,
		CreatedAt:      w.DateCreated.Ptr(),
		ValidUntil:     w.ValidUntil.Ptr(),
	}
}

func (c *Client) FetchQuotes(ctx context.Context) ([]dashboard.QuoteRecord, error) {
	return fetchList(ctx, c, EndpointGetQuotes, toQuoteRecord)
}

type quoteStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (c *Client) UpdateQuoteStatus(ctx context.Context, id, status string) (string, error) {
	env, err := c.call(ctx, EndpointUpdateQuoteStatus, quoteStatusRequest{ID: id, Status: status})
	if err != nil {
		return "", err
	}
	return env.Message, nil
}
