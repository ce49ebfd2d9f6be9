package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"quotedesk/backend/internal/domain/dashboard"
)

type dataResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func listHandler[T any](fetch func(context.Context, bool) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := fetch(r.Context(), refresh(r))
		if err != nil {
			writeError(w, r, err)
			return
		}
		if items == nil {
			items = []T{}
		}
		writeJSON(w, r, http.StatusOK, dataResponse{Success: true, Data: items})
	}
}

func createHandler[In, Out any](create func(context.Context, In) (Out, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if err := decode(r, &in); err != nil {
			writeError(w, r, err)
			return
		}
		out, err := create(r.Context(), in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusCreated, dataResponse{Success: true, Data: out})
	}
}

func updateHandler[In, Out any](update func(context.Context, string, In) (Out, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if err := decode(r, &in); err != nil {
			writeError(w, r, err)
			return
		}
		out, err := update(r.Context(), chi.URLParam(r, "id"), in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, dataResponse{Success: true, Data: out})
	}
}

func idHandler(op func(context.Context, string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := op(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, dataResponse{Success: true})
	}
}

func (h *Handlers) ListAgents() http.HandlerFunc   { return listHandler(h.Directory.Agents) }
func (h *Handlers) CreateAgent() http.HandlerFunc  { return createHandler(h.Directory.CreateAgent) }
func (h *Handlers) UpdateAgent() http.HandlerFunc  { return updateHandler(h.Directory.UpdateAgent) }
func (h *Handlers) DeleteAgent() http.HandlerFunc  { return idHandler(h.Directory.DeleteAgent) }
func (h *Handlers) ToggleAgent() http.HandlerFunc  { return idHandler(h.Directory.ToggleAgent) }
func (h *Handlers) ListClients() http.HandlerFunc  { return listHandler(h.Directory.Clients) }
func (h *Handlers) CreateClient() http.HandlerFunc { return createHandler(h.Directory.CreateClient) }
func (h *Handlers) UpdateClient() http.HandlerFunc { return updateHandler(h.Directory.UpdateClient) }
func (h *Handlers) DeleteClient() http.HandlerFunc { return idHandler(h.Directory.DeleteClient) }
func (h *Handlers) ToggleClient() http.HandlerFunc { return idHandler(h.Directory.ToggleClient) }

func (h *Handlers) ListProducts() http.HandlerFunc  { return listHandler(h.Directory.Products) }
func (h *Handlers) CreateProduct() http.HandlerFunc { return createHandler(h.Directory.CreateProduct) }
func (h *Handlers) UpdateProduct() http.HandlerFunc { return updateHandler(h.Directory.UpdateProduct) }
func (h *Handlers) DeleteProduct() http.HandlerFunc { return idHandler(h.Directory.DeleteProduct) }
func (h *Handlers) ToggleProduct() http.HandlerFunc { return idHandler(h.Directory.ToggleProduct) }

func (h *Handlers) ListTransactions() http.HandlerFunc {
	return listHandler(h.Directory.Transactions)
}

func (h *Handlers) CreateTransaction() http.HandlerFunc {
	return createHandler(h.Directory.CreateTransaction)
}

func (h *Handlers) UpdateTransaction() http.HandlerFunc {
	return updateHandler(h.Directory.UpdateTransaction)
}

func (h *Handlers) DeleteTransaction() http.HandlerFunc {
	return idHandler(h.Directory.DeleteTransaction)
}

func (h *Handlers) ListQuotes() http.HandlerFunc { return listHandler(h.Directory.Quotes) }

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handlers) UpdateQuoteStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	msg, err := h.Directory.UpdateQuoteStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dataResponse{Success: true, Message: msg})
}

type registerResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId,omitempty"`
	Message string `json:"message,omitempty"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in dashboard.RegisterInput
	if err := decode(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	if in.Email == "" || in.Password == "" {
		writeError(w, r, badRequest("email and password are required"))
		return
	}
	id, msg, err := h.Directory.Register(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, registerResponse{Success: true, UserID: id, Message: msg})
}
