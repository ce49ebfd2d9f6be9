package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"quotedesk/backend/internal/app/logger"
	"quotedesk/backend/internal/export/csvexport"
)

func exportHandler[T any](fileName string, fetch func(context.Context, bool) ([]T, error), table func([]T) csvexport.Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := fetch(r.Context(), refresh(r))
		if err != nil {
			writeError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
		w.WriteHeader(http.StatusOK)
		if err := table(items).Write(w); err != nil {
			logger.FromContext(r.Context()).Warn("export: write failed",
				zap.String("file", fileName), zap.Error(err))
		}
	}
}

func (h *Handlers) ExportAgents() http.HandlerFunc {
	return exportHandler(csvexport.AgentsFile, h.Directory.Agents, csvexport.Agents)
}

func (h *Handlers) ExportClients() http.HandlerFunc {
	return exportHandler(csvexport.ClientsFile, h.Directory.Clients, csvexport.Clients)
}

func (h *Handlers) ExportProducts() http.HandlerFunc {
	return exportHandler(csvexport.ProductsFile, h.Directory.Products, csvexport.Products)
}

func (h *Handlers) ExportPayouts() http.HandlerFunc {
	return exportHandler(csvexport.PayoutsFile, h.Commission.List, csvexport.Payouts)
}
