package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"quotedesk/backend/internal/app/logger"
	"quotedesk/backend/internal/domain/quote"
)

type lineItemView struct {
	Category      string `json:"category"`
	Description   string `json:"description"`
	Amount        string `json:"amount"`
	BilledMonthly bool   `json:"billedMonthly"`
}

type invoiceView struct {
	QuoteNumber  string            `json:"quoteNumber"`
	DateCreated  time.Time         `json:"dateCreated"`
	ValidUntil   time.Time         `json:"validUntil"`
	Client       quote.ClientInfo  `json:"client"`
	Website      quote.WebsiteInfo `json:"website"`
	LineItems    []lineItemView    `json:"lineItems"`
	SubTotal     string            `json:"subTotal"`
	VATAmount    string            `json:"vatAmount"`
	TotalAmount  string            `json:"totalAmount"`
	MonthlyTotal string            `json:"monthlyTotal"`
	FileName     string            `json:"fileName"`
}

func newInvoiceView(inv quote.Invoice) invoiceView {
	items := make([]lineItemView, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, lineItemView{
			Category:      it.CategoryID,
			Description:   it.Description,
			Amount:        it.Amount.StringFixed(2),
			BilledMonthly: it.Monthly,
		})
	}
	return invoiceView{
		QuoteNumber:  inv.Number,
		DateCreated:  inv.CreatedAt,
		ValidUntil:   inv.ValidUntil,
		Client:       inv.Client,
		Website:      inv.Website,
		LineItems:    items,
		SubTotal:     inv.SubTotal.StringFixed(2),
		VATAmount:    inv.VATAmount.StringFixed(2),
		TotalAmount:  inv.TotalAmount.StringFixed(2),
		MonthlyTotal: inv.MonthlyTotal.StringFixed(2),
		FileName:     quote.FileName(inv),
	}
}

func (h *Handlers) buildInvoice(r *http.Request) (quote.Request, quote.Invoice, error) {
	var req quote.Request
	if err := decode(r, &req); err != nil {
		return req, quote.Invoice{}, err
	}
	inv, err := req.Invoice(h.Catalog, h.now(), h.Numbers)
	if err != nil {
		return req, quote.Invoice{}, badRequest(err.Error())
	}
	return req, inv, nil
}

func (h *Handlers) PreviewQuote(w http.ResponseWriter, r *http.Request) {
	_, inv, err := h.buildInvoice(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, newInvoiceView(inv))
}

func (h *Handlers) QuotePDF(w http.ResponseWriter, r *http.Request) {
	_, inv, err := h.buildInvoice(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	pdfBytes, err := h.PDF.Generate(inv)
	if err != nil {
		logger.FromContext(r.Context()).Error("quote pdf: generate failed",
			zap.String("quote_number", inv.Number), zap.Error(err))
		writeJSON(w, r, http.StatusInternalServerError, errorResponse{Message: "pdf generation failed"})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+quote.FileName(inv)+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

type sendResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	QuoteID     string `json:"quoteId,omitempty"`
	QuoteNumber string `json:"quoteNumber"`
}

func (h *Handlers) SendQuote(w http.ResponseWriter, r *http.Request) {
	req, inv, err := h.buildInvoice(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.Sender.Send(r.Context(), inv, req.RecipientEmail)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if h.Directory != nil {
		h.Directory.RefreshQuotes(r.Context())
	}
	writeJSON(w, r, http.StatusOK, sendResponse{
		Success:     true,
		Message:     res.Message,
		QuoteID:     res.QuoteID,
		QuoteNumber: inv.Number,
	})
}
