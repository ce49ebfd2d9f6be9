package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (h *Handlers) ListPayouts() http.HandlerFunc { return listHandler(h.Commission.List) }

type generateRequest struct {
	Period string `json:"period"`
}

type generateResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	GeneratedCount int    `json:"generatedCount"`
}

func (h *Handlers) GeneratePayouts(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	res, err := h.Commission.Generate(r.Context(), req.Period)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, generateResponse{
		Success:        true,
		Message:        res.Message,
		GeneratedCount: res.GeneratedCount,
	})
}

func (h *Handlers) UpdatePayoutStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.Commission.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dataResponse{Success: true})
}

func (h *Handlers) DeletePayout() http.HandlerFunc { return idHandler(h.Commission.Delete) }

type submissionView struct {
	QuoteNumber    string  `json:"quoteNumber"`
	RecipientEmail string  `json:"recipientEmail"`
	TotalAmount    float64 `json:"totalAmount"`
	Status         string  `json:"status"`
	Error          string  `json:"error,omitempty"`
	CreatedAt      string  `json:"createdAt"`
}

// ListSubmissions serves the local send log. 404 when no database is set.
func (h *Handlers) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	if h.Submissions == nil {
		writeJSON(w, r, http.StatusNotFound, errorResponse{Message: "submission log is disabled"})
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	subs, err := h.Submissions.Recent(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]submissionView, 0, len(subs))
	for _, s := range subs {
		out = append(out, submissionView{
			QuoteNumber:    s.QuoteNumber,
			RecipientEmail: s.RecipientEmail,
			TotalAmount:    s.TotalAmount,
			Status:         s.Status,
			Error:          s.Error,
			CreatedAt:      s.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}
	writeJSON(w, r, http.StatusOK, dataResponse{Success: true, Data: out})
}
