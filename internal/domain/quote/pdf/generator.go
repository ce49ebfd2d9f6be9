package pdf

import "quotedesk/backend/internal/domain/quote"

type Generator interface {
	Generate(inv quote.Invoice) ([]byte, error)
}
