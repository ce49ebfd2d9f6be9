package handlers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"quotedesk/backend/internal/domain/catalog"
	"quotedesk/backend/internal/domain/commission"
	"quotedesk/backend/internal/domain/dashboard"
	"quotedesk/backend/internal/domain/quote"
	"quotedesk/backend/internal/domain/quote/pdf"
)

// SubmissionHistory lists recorded quote send attempts. Nil when no
// database is configured.
type SubmissionHistory interface {
	Recent(ctx context.Context, limit int) ([]quote.Submission, error)
}

type Handlers struct {
	Catalog     *catalog.Catalog
	Numbers     quote.Numberer
	PDF         pdf.Generator
	Sender      *quote.Sender
	Directory   *dashboard.Directory
	Commission  *commission.Service
	Submissions SubmissionHistory
	Logger      *zap.Logger

	now func() time.Time
}

type Deps struct {
	Catalog     *catalog.Catalog
	Numbers     quote.Numberer
	PDF         pdf.Generator
	Sender      *quote.Sender
	Directory   *dashboard.Directory
	Commission  *commission.Service
	Submissions SubmissionHistory
	Logger      *zap.Logger
}

func New(d Deps) *Handlers {
	h := &Handlers{
		Catalog:     d.Catalog,
		Numbers:     d.Numbers,
		PDF:         d.PDF,
		Sender:      d.Sender,
		Directory:   d.Directory,
		Commission:  d.Commission,
		Submissions: d.Submissions,
		Logger:      d.Logger,
		now:         time.Now,
	}
	if h.Catalog == nil {
		h.Catalog = catalog.Default()
	}
	if h.Numbers == nil {
		h.Numbers = &quote.TimestampNumbers{}
	}
	if h.Logger == nil {
		h.Logger = zap.NewNop()
	}
	return h
}
