package dashboard

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"quotedesk/backend/internal/infra/store"
)

var ErrStatusRequired = errors.New("quote status is required")

// Source is the remote side of the dashboards.
type Source interface {
	FetchAgents(ctx context.Context) ([]Agent, error)
	CreateAgent(ctx context.Context, in AgentInput) (Agent, error)
	UpdateAgent(ctx context.Context, id string, in AgentInput) (Agent, error)
	DeleteAgent(ctx context.Context, id string) error
	ToggleAgentStatus(ctx context.Context, id string) error

	FetchClients(ctx context.Context) ([]Client, error)
	CreateClient(ctx context.Context, in ClientInput) (Client, error)
	UpdateClient(ctx context.Context, id string, in ClientInput) (Client, error)
	DeleteClient(ctx context.Context, id string) error
	ToggleClientStatus(ctx context.Context, id string) error

	FetchProducts(ctx context.Context) ([]Product, error)
	CreateProduct(ctx context.Context, in ProductInput) (Product, error)
	UpdateProduct(ctx context.Context, id string, in ProductInput) (Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ToggleProductStatus(ctx context.Context, id string) error

	FetchTransactions(ctx context.Context) ([]Transaction, error)
	CreateTransaction(ctx context.Context, in TransactionInput) (Transaction, error)
	UpdateTransaction(ctx context.Context, id string, in TransactionInput) (Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error

	FetchQuotes(ctx context.Context) ([]QuoteRecord, error)
	UpdateQuoteStatus(ctx context.Context, id, status string) (string, error)

	Register(ctx context.Context, in RegisterInput) (id string, message string, err error)
}

// Directory keeps one normalized copy per entity list. Lists are reloaded
// from the source after every successful mutation instead of being
// patched locally; failed mutations leave them as they were.
type Directory struct {
	src    Source
	logger *zap.Logger

	agents       *store.Store[Agent]
	clients      *store.Store[Client]
	products     *store.Store[Product]
	transactions *store.Store[Transaction]
	quotes       *store.Store[QuoteRecord]
}

func NewDirectory(src Source, logger *zap.Logger) *Directory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Directory{
		src:          src,
		logger:       logger,
		agents:       store.New[Agent](),
		clients:      store.New[Client](),
		products:     store.New[Product](),
		transactions: store.New[Transaction](),
		quotes:       store.New[QuoteRecord](),
	}
}

// list serves a cached copy unless refresh is set or nothing is loaded yet.
func list[T store.Keyed](ctx context.Context, s *store.Store[T], refresh bool, fetch func(context.Context) ([]T, error)) ([]T, error) {
	if !refresh && s.Loaded() {
		return s.List(), nil
	}
	items, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	s.Replace(items)
	return s.List(), nil
}

// mutate runs op and then reloads s. A reload failure is logged; the
// mutation itself already succeeded remotely.
func mutate[T store.Keyed, R any](ctx context.Context, d *Directory, name string, s *store.Store[T], fetch func(context.Context) ([]T, error), op func() (R, error)) (R, error) {
	res, err := op()
	if err != nil {
		return res, err
	}
	items, ferr := fetch(ctx)
	if ferr != nil {
		d.logger.Warn("dashboard: refetch after mutation failed", zap.String("entity", name), zap.Error(ferr))
		return res, nil
	}
	s.Replace(items)
	return res, nil
}

func (d *Directory) Agents(ctx context.Context, refresh bool) ([]Agent, error) {
	return list(ctx, d.agents, refresh, d.src.FetchAgents)
}

func (d *Directory) Agent(id string) (Agent, bool) { return d.agents.Get(id) }

func (d *Directory) CreateAgent(ctx context.Context, in AgentInput) (Agent, error) {
	return mutate(ctx, d, "agents", d.agents, d.src.FetchAgents, func() (Agent, error) {
		return d.src.CreateAgent(ctx, in)
	})
}

func (d *Directory) UpdateAgent(ctx context.Context, id string, in AgentInput) (Agent, error) {
	return mutate(ctx, d, "agents", d.agents, d.src.FetchAgents, func() (Agent, error) {
		return d.src.UpdateAgent(ctx, id, in)
	})
}

func (d *Directory) DeleteAgent(ctx context.Context, id string) error {
	_, err := mutate(ctx, d, "agents", d.agents, d.src.FetchAgents, func() (struct{}, error) {
		return struct{}{}, d.src.DeleteAgent(ctx, id)
	})
	return err
}

func (d *Directory) ToggleAgent(ctx context.Context, id string) error {
	_, err := mutate(ctx, d, "agents", d.agents, d.src.FetchAgents, func() (struct{}, error) {
		return struct{}{}, d.src.ToggleAgentStatus(ctx, id)
	})
	return err
}

func (d *Directory) Clients(ctx context.Context, refresh bool) ([]Client, error) {
	return list(ctx, d.clients, refresh, d.src.FetchClients)
}

func (d *Directory) CreateClient(ctx context.Context, in ClientInput) (Client, error) {
	return mutate(ctx, d, "clients", d.clients, d.src.FetchClients, func() (Client, error) {
		return d.src.CreateClient(ctx, in)
	})
}

func (d *Directory) UpdateClient(ctx context.Context, id string, in ClientInput) (Client, error) {
	return mutate(ctx, d, "clients", d.clients, d.src.FetchClients, func() (Client, error) {
		return d.src.UpdateClient(ctx, id, in)
	})
}

func (d *Directory) DeleteClient(ctx context.Context, id string) error {
	_, err := mutate(ctx, d, "clients", d.clients, d.src.FetchClients, func() (struct{}, error) {
		return struct{}{}, d.src.DeleteClient(ctx, id)
	})
	return err
}

func (d *Directory) ToggleClient(ctx context.Context, id string) error {
	_, err := mutate(ctx, d, "clients", d.clients, d.src.FetchClients, func() (struct{}, error) {
		return struct{}{}, d.src.ToggleClientStatus(ctx, id)
	})
	return err
}

func (d *Directory) Products(ctx context.Context, refresh bool) ([]Product, error) {
	return list(ctx, d.products, refresh, d.src.FetchProducts)
}

func (d *Directory) CreateProduct(ctx context.Context, in ProductInput) (Product, error) {
	return mutate(ctx, d, "products", d.products, d.src.FetchProducts, func() (Product, error) {
		return d.src.CreateProduct(ctx, in)
	})
}

func (d *Directory) UpdateProduct(ctx context.Context, id string, in ProductInput) (Product, error) {
	return mutate(ctx, d, "products", d.products, d.src.FetchProducts, func() (Product, error) {
		return d.src.UpdateProduct(ctx, id, in)
	})
}

func (d *Directory) DeleteProduct(ctx context.Context, id string) error {
	_, err := mutate(ctx, d, "products", d.products, d.src.FetchProducts, func() (struct{}, error) {
		return struct{}{}, d.src.DeleteProduct(ctx, id)
	})
	return err
}

func (d *Directory) ToggleProduct(ctx context.Context, id string) error {
	_, err := mutate(ctx, d, "products", d.products, d.src.FetchProducts, func() (struct{}, error) {
		return struct{}{}, d.src.ToggleProductStatus(ctx, id)
	})
	return err
}

func (d *Directory) Transactions(ctx context.Context, refresh bool) ([]Transaction, error) {
	return list(ctx, d.transactions, refresh, d.src.FetchTransactions)
}

func (d *Directory) CreateTransaction(ctx context.Context, in TransactionInput) (Transaction, error) {
	return mutate(ctx, d, "transactions", d.transactions, d.src.FetchTransactions, func() (Transaction, error) {
		return d.src.CreateTransaction(ctx, in)
	})
}

func (d *Directory) UpdateTransaction(ctx context.Context, id string, in TransactionInput) (Transaction, error) {
	return mutate(ctx, d, "transactions", d.transactions, d.src.FetchTransactions, func() (Transaction, error) {
		return d.src.UpdateTransaction(ctx, id, in)
	})
}

func (d *Directory) DeleteTransaction(ctx context.Context, id string) error {
	_, err := mutate(ctx, d, "transactions", d.transactions, d.src.FetchTransactions, func() (struct{}, error) {
		return struct{}{}, d.src.DeleteTransaction(ctx, id)
	})
	return err
}

func (d *Directory) Quotes(ctx context.Context, refresh bool) ([]QuoteRecord, error) {
	return list(ctx, d.quotes, refresh, d.src.FetchQuotes)
}

func (d *Directory) UpdateQuoteStatus(ctx context.Context, id, status string) (string, error) {
	if status == "" {
		return "", ErrStatusRequired
	}
	return mutate(ctx, d, "quotes", d.quotes, d.src.FetchQuotes, func() (string, error) {
		return d.src.UpdateQuoteStatus(ctx, id, status)
	})
}

// RefreshQuotes reloads the quote list, e.g. after a quote was sent.
func (d *Directory) RefreshQuotes(ctx context.Context) {
	if _, err := list(ctx, d.quotes, true, d.src.FetchQuotes); err != nil {
		d.logger.Warn("dashboard: refresh quotes failed", zap.Error(err))
	}
}

func (d *Directory) Register(ctx context.Context, in RegisterInput) (string, string, error) {
	return d.src.Register(ctx, in)
}
