package remote

import (
	"context"

	"quotedesk/backend/internal/domain/dashboard"
)

type payoutWire struct {
	ID               Text   `json:"id"`
	AgentID          Text   `json:"agent_id"`
	AgentName        string `json:"agent_name"`
	Period           string `json:"period"`
	TotalSales       Number `json:"total_sales"`
	CommissionAmount Number `json:"commission_amount"`
	Status           string `json:"status"`
	PaidAt           Time   `json:"paid_at"`
	CreatedAt        Time   `json:"created_at"`
}

func toPayout(w payoutWire) dashboard.CommissionPayout {
	return dashboard.CommissionPayout{
		ID:               string(w.ID),
		AgentID:          string(w.AgentID),
		AgentName:        w.AgentName,
		Period:           w.Period,
		TotalSales:       w.TotalSales.Float(),
		CommissionAmount: w.CommissionAmount.Float(),
		Status:           w.Status,
		PaidAt:           w.PaidAt.Ptr(),
		CreatedAt:        w.CreatedAt.Ptr(),
	}
}

func (c *Client) FetchCommissionPayouts(ctx context.Context) ([]dashboard.CommissionPayout, error) {
	return fetchList(ctx, c, EndpointGetPayouts, toPayout)
}

type generateRequest struct {
	Period string `json:"period"`
}

type generateData struct {
	GeneratedCount Number `json:"generated_count"`
	Count          Number `json:"count"`
}

// GeneratePayouts asks the remote API to compute payouts for period. The
// aggregation happens remotely; this only reports what it did.
func (c *Client) GeneratePayouts(ctx context.Context, period string) (dashboard.GenerateResult, error) {
	env, err := c.call(ctx, EndpointGeneratePayouts, generateRequest{Period: period})
	if err != nil {
		return dashboard.GenerateResult{}, err
	}
	var data generateData
	if err := decodeData(EndpointGeneratePayouts, env, &data); err != nil {
		return dashboard.GenerateResult{}, err
	}
	count := data.GeneratedCount.Int()
	if count == 0 {
		count = data.Count.Int()
	}
	return dashboard.GenerateResult{Message: env.Message, GeneratedCount: count}, nil
}

func (c *Client) UpdatePayoutStatus(context.Context, string, string) error {
	return notImplemented("update payout status")
}

func (c *Client) DeletePayout(context.Context, string) error {
	return notImplemented("delete payout")
}
