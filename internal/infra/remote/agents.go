package remote

import (
	"context"

	"quotedesk/backend/internal/domain/dashboard"
)

type agentWire struct {
	ID             Text   `json:"id,omitempty"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	CommissionRate Number `json:"commission_rate"`
	TotalSales     Number `json:"total_sales,omitempty"`
	IsActive       Bool   `json:"is_active"`
	CreatedAt      Time   `json:"created_at"`
}

func toAgent(w agentWire) dashboard.Agent {
	return dashboard.Agent{
		ID:             string(w.ID),
		FirstName:      w.FirstName,
		LastName:       w.LastName,
		Email:          w.Email,
		Phone:          w.Phone,
		CommissionRate: w.CommissionRate.Float(),
		TotalSales:     w.TotalSales.Float(),
		IsActive:       bool(w.IsActive),
		CreatedAt:      w.CreatedAt.Ptr(),
	}
}

func fromAgentInput(in dashboard.AgentInput) agentWire {
	return agentWire{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		Phone:          in.Phone,
		CommissionRate: Number(in.CommissionRate),
		IsActive:       Bool(in.IsActive),
	}
}

func (c *Client) FetchAgents(ctx context.Context) ([]dashboard.Agent, error) {
	return fetchList(ctx, c, EndpointGetAgents, toAgent)
}

func (c *Client) CreateAgent(ctx context.Context, in dashboard.AgentInput) (dashboard.Agent, error) {
	return create(ctx, c, EndpointAddAgent, fromAgentInput(in), toAgent)
}

func (c *Client) UpdateAgent(context.Context, string, dashboard.AgentInput) (dashboard.Agent, error) {
	return dashboard.Agent{}, notImplemented("update agent")
}

func (c *Client) DeleteAgent(context.Context, string) error {
	return notImplemented("delete agent")
}

func (c *Client) ToggleAgentStatus(context.Context, string) error {
	return notImplemented("toggle agent status")
}
