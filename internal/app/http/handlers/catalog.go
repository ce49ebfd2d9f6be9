package handlers

import "net/http"

func (h *Handlers) ListCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.Catalog.Categories())
}
