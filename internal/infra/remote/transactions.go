package remote

import (
	"context"

	"quotedesk/backend/internal/domain/dashboard"
)

type transactionWire struct {
	ID               Text   `json:"id,omitempty"`
	AgentID          Text   `json:"agent_id"`
	ClientID         Text   `json:"client_id"`
	ProductID        Text   `json:"product_id"`
	Amount           Number `json:"amount"`
	CommissionAmount Number `json:"commission_amount"`
	Status           string `json:"status"`
	TransactionDate  Time   `json:"transaction_date"`
}

func toTransaction(w transactionWire) dashboard.Transaction {
	return dashboard.Transaction{
		ID:               string(w.ID),
		AgentID:          string(w.AgentID),
		ClientID:         string(w.ClientID),
		ProductID:        string(w.ProductID),
		Amount:           w.Amount.Float(),
		CommissionAmount: w.CommissionAmount.Float(),
		Status:           w.Status,
		TransactionDate:  w.TransactionDate.Ptr(),
	}
}

func fromTransactionInput(in dashboard.TransactionInput) transactionWire {
	return transactionWire{
		AgentID:          Text(in.AgentID),
		ClientID:         Text(in.ClientID),
		ProductID:        Text(in.ProductID),
		Amount:           Number(in.Amount),
		CommissionAmount: Number(in.CommissionAmount),
		Status:           in.Status,
		TransactionDate:  timeOf(in.TransactionDate),
	}
}

func (c *Client) FetchTransactions(ctx context.Context) ([]dashboard.Transaction, error) {
	return fetchList(ctx, c, EndpointGetTransactions, toTransaction)
}

func (c *Client) CreateTransaction(ctx context.Context, in dashboard.TransactionInput) (dashboard.Transaction, error) {
	return create(ctx, c, EndpointAddTransaction, fromTransactionInput(in), toTransaction)
}

func (c *Client) UpdateTransaction(context.Context, string, dashboard.TransactionInput) (dashboard.Transaction, error) {
	return dashboard.Transaction{}, notImplemented("update transaction")
}

func (c *Client) DeleteTransaction(context.Context, string) error {
	return notImplemented("delete transaction")
}
