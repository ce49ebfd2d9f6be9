package remote

import (
	"context"

	"quotedesk/backend/internal/domain/dashboard"
)

type clientWire struct {
	ID             Text       `json:"id,omitempty"`
	BusinessName   string     `json:"business_name"`
	ContactName    string     `json:"contact_name"`
	ContactSurname string     `json:"contact_surname"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	AgentID        Text       `json:"agent_id"`
	ProductIDs     StringList `json:"product_ids"`
	IsActive       Bool       `json:"is_active"`
	CreatedAt      Time       `json:"created_at"`
}

func toClient(w clientWire) dashboard.Client {
	return dashboard.Client{
		ID:             string(w.ID),
		BusinessName:   w.BusinessName,
		ContactName:    w.ContactName,
		ContactSurname: w.ContactSurname,
		Email:          w.Email,
		Phone:          w.Phone,
		AgentID:        string(w.AgentID),
		ProductIDs:     w.ProductIDs.Strings(),
		IsActive:       bool(w.IsActive),
		CreatedAt:      w.CreatedAt.Ptr(),
	}
}

func fromClientInput(in dashboard.ClientInput) clientWire {
	return clientWire{
		BusinessName:   in.BusinessName,
		ContactName:    in.ContactName,
		ContactSurname: in.ContactSurname,
		Email:          in.Email,
		Phone:          in.Phone,
		AgentID:        Text(in.AgentID),
		ProductIDs:     StringList(in.ProductIDs),
		IsActive:       Bool(in.IsActive),
	}
}

func (c *Client) FetchClients(ctx context.Context) ([]dashboard.Client, error) {
	return fetchList(ctx, c, EndpointGetClients, toClient)
}

func (c *Client) CreateClient(ctx context.Context, in dashboard.ClientInput) (dashboard.Client, error) {
	return create(ctx, c, EndpointAddClient, fromClientInput(in), toClient)
}

func (c *Client) UpdateClient(context.Context, string, dashboard.ClientInput) (dashboard.Client, error) {
	return dashboard.Client{}, notImplemented("update client")
}

func (c *Client) DeleteClient(context.Context, string) error {
	return notImplemented("delete client")
}

func (c *Client) ToggleClientStatus(context.Context, string) error {
	return notImplemented("toggle client status")
}
