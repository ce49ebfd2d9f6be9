package remote

import (
	"context"

	"quotedesk/backend/internal/domain/dashboard"
)

type registerWire struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

type registerData struct {
	ID Text `json:"id"`
}

// Register creates a dashboard user record and returns its id.
func (c *Client) Register(ctx context.Context, in dashboard.RegisterInput) (string, string, error) {
	env, err := c.call(ctx, EndpointRegister, registerWire{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
		Role:      in.Role,
	})
	if err != nil {
		return "", "", err
	}
	var data registerData
	if err := decodeData(EndpointRegister, env, &data); err != nil {
		return "", "", err
	}
	return string(data.ID), env.Message, nil
}
