package quote

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

var ErrNoRecipient = errors.New("quote has no recipient email")

// Payload is the body persisted by the remote save_quote endpoint.
type Payload struct {
	QuoteNumber      string           `json:"quoteNumber"`
	DateCreated      string           `json:"dateCreated"`
	ValidUntil       string           `json:"validUntil"`
	ClientDetails    ClientInfo       `json:"clientDetails"`
	WebsiteDetails   WebsiteInfo      `json:"websiteDetails"`
	SelectedServices []PayloadService `json:"selectedServices"`
	SubTotal         float64          `json:"subTotal"`
	VATAmount        float64          `json:"vatAmount"`
	TotalAmount      float64          `json:"totalAmount"`
	RecipientEmail   string           `json:"recipientEmail"`
}

type PayloadService struct {
	Category    string   `json:"category"`
	Name        string   `json:"name"`
	OneOffCost  float64  `json:"oneOffCost"`
	MonthlyCost float64  `json:"monthlyCost"`
	Features    []string `json:"features"`
}

type SaveResult struct {
	Message string
	QuoteID string
}

// Submitter persists a quote somewhere outside this process.
type Submitter interface {
	SaveQuote(ctx context.Context, p Payload) (SaveResult, error)
}

// Submission is one recorded send attempt.
type Submission struct {
	QuoteNumber    string
	RecipientEmail string
	TotalAmount    float64
	Status         string
	Error          string
	CreatedAt      time.Time
}

const (
	SubmissionSent   = "sent"
	SubmissionFailed = "failed"
)

type SubmissionLog interface {
	Record(ctx context.Context, s Submission) error
}

type nopLog struct{}

func (nopLog) Record(context.Context, Submission) error { return nil }

// NewPayload serializes an invoice for submission. Only selected
// services are included.
func NewPayload(inv Invoice, recipient string) Payload {
	services := make([]PayloadService, 0, len(inv.Services))
	for _, svc := range inv.Services {
		features := svc.Option.Features
		if features == nil {
			features = []string{}
		}
		services = append(services, PayloadService{
			Category:    svc.CategoryTitle,
			Name:        svc.Option.Name,
			OneOffCost:  svc.Option.OneOffCost.InexactFloat64(),
			MonthlyCost: svc.Option.MonthlyCost.InexactFloat64(),
			Features:    features,
		})
	}
	return Payload{
		QuoteNumber:      inv.Number,
		DateCreated:      inv.CreatedAt.Format(time.RFC3339),
		ValidUntil:       inv.ValidUntil.Format(time.RFC3339),
		ClientDetails:    inv.Client,
		WebsiteDetails:   inv.Website,
		SelectedServices: services,
		SubTotal:         inv.SubTotal.InexactFloat64(),
		VATAmount:        inv.VATAmount.InexactFloat64(),
		TotalAmount:      inv.TotalAmount.InexactFloat64(),
		RecipientEmail:   recipient,
	}
}

// Sender submits invoices once. Failures are returned to the caller and
// never retried or queued.
type Sender struct {
	submitter Submitter
	log       SubmissionLog
	logger    *zap.Logger
	now       func() time.Time
}

func NewSender(submitter Submitter, log SubmissionLog, logger *zap.Logger) *Sender {
	if log == nil {
		log = nopLog{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sender{submitter: submitter, log: log, logger: logger, now: time.Now}
}

// Send submits inv to recipient, falling back to the client's email.
func (s *Sender) Send(ctx context.Context, inv Invoice, recipient string) (SaveResult, error) {
	if recipient == "" {
		recipient = inv.Client.Email
	}
	if recipient == "" {
		return SaveResult{}, ErrNoRecipient
	}
	p := NewPayload(inv, recipient)

	res, err := s.submitter.SaveQuote(ctx, p)
	sub := Submission{
		QuoteNumber:    p.QuoteNumber,
		RecipientEmail: recipient,
		TotalAmount:    p.TotalAmount,
		Status:         SubmissionSent,
		CreatedAt:      s.now(),
	}
	if err != nil {
		sub.Status = SubmissionFailed
		sub.Error = err.Error()
	}
	if logErr := s.log.Record(ctx, sub); logErr != nil {
		s.logger.Warn("quote send: record submission failed",
			zap.String("quote_number", p.QuoteNumber), zap.Error(logErr))
	}
	if err != nil {
		s.logger.Info("quote send: rejected",
			zap.String("quote_number", p.QuoteNumber), zap.Error(err))
		return SaveResult{}, err
	}
	s.logger.Info("quote send: saved",
		zap.String("quote_number", p.QuoteNumber), zap.String("recipient", recipient))
	return res, nil
}
