package postgres

import (
	"context"
	"time"

	"quotedesk/backend/internal/domain/quote"
)

// SubmissionLog records quote send attempts.
type SubmissionLog struct {
	db *DB
}

func NewSubmissionLog(db *DB) *SubmissionLog { return &SubmissionLog{db: db} }

func (l *SubmissionLog) Record(ctx context.Context, s quote.Submission) error {
	created := s.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err := l.db.Pool.Exec(ctx, `
        INSERT INTO quote_submissions (quote_number, recipient_email, total_amount, status, error, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, s.QuoteNumber, s.RecipientEmail, s.TotalAmount, s.Status, s.Error, created)
	return err
}

// Recent returns the latest attempts, newest first.
func (l *SubmissionLog) Recent(ctx context.Context, limit int) ([]quote.Submission, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := l.db.Pool.Query(ctx, `
        SELECT quote_number, recipient_email, total_amount::float8, status, error, created_at
        FROM quote_submissions
        ORDER BY created_at DESC
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []quote.Submission
	for rows.Next() {
		var s quote.Submission
		if err := rows.Scan(&s.QuoteNumber, &s.RecipientEmail, &s.TotalAmount, &s.Status, &s.Error, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
