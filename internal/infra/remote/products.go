package remote

import (
	"context"

	"quotedesk/backend/internal/domain/dashboard"
)

type productWire struct {
	ID           Text       `json:"id,omitempty"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	Price        Number     `json:"price"`
	MonthlyPrice Number     `json:"monthly_price"`
	Features     StringList `json:"features"`
	IsActive     Bool       `json:"is_active"`
}

func toProduct(w productWire) dashboard.Product {
	return dashboard.Product{
		ID:           string(w.ID),
		Name:         w.Name,
		Description:  w.Description,
		Category:     w.Category,
		Price:        w.Price.Float(),
		MonthlyPrice: w.MonthlyPrice.Float(),
		Features:     w.Features.Strings(),
		IsActive:     bool(w.IsActive),
	}
}

func fromProductInput(in dashboard.ProductInput) productWire {
	return productWire{
		Name:         in.Name,
		Description:  in.Description,
		Category:     in.Category,
		Price:        Number(in.Price),
		MonthlyPrice: Number(in.MonthlyPrice),
		Features:     StringList(in.Features),
		IsActive:     Bool(in.IsActive),
	}
}

func (c *Client) FetchProducts(ctx context.Context) ([]dashboard.Product, error) {
	return fetchList(ctx, c, EndpointGetProducts, toProduct)
}

func (c *Client) CreateProduct(ctx context.Context, in dashboard.ProductInput) (dashboard.Product, error) {
	return create(ctx, c, EndpointAddProduct, fromProductInput(in), toProduct)
}

func (c *Client) UpdateProduct(context.Context, string, dashboard.ProductInput) (dashboard.Product, error) {
	return dashboard.Product{}, notImplemented("update product")
}

func (c *Client) DeleteProduct(context.Context, string) error {
	return notImplemented("delete product")
}

func (c *Client) ToggleProductStatus(context.Context, string) error {
	return notImplemented("toggle product status")
}
