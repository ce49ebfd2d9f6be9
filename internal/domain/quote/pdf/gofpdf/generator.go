package gofpdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"quotedesk/backend/internal/domain/quote"
)

const (
	font    = "Helvetica"
	company = "QuoteDesk Hosting & IT Services"
)

// Generator draws a quotation on a single A4 page using gofpdf core fonts.
type Generator struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger}
}

func (g *Generator) Generate(inv quote.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Quotation "+inv.Number, false)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont(font, "B", 18)
	pdf.Cell(110, 10, "QUOTATION")
	pdf.SetFont(font, "", 10)
	pdf.CellFormat(0, 5, tr(company), "", 1, "R", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont(font, "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("Quote number: %s", inv.Number))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Date: %s", inv.CreatedAt.Format("02 Jan 2006")))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Valid until: %s", inv.ValidUntil.Format("02 Jan 2006")))
	pdf.Ln(9)

	top := pdf.GetY()
	pdf.SetFont(font, "B", 11)
	pdf.Cell(95, 6, "Client")
	pdf.Cell(95, 6, "Website")
	pdf.Ln(6)
	pdf.SetFont(font, "", 10)
	left := []string{
		inv.Client.BusinessName,
		inv.Client.ContactFullName(),
		inv.Client.Email,
		inv.Client.Phone,
		inv.Client.Address,
	}
	right := []string{inv.Website.Name, inv.Website.Domain, inv.Website.Industry}
	rows := max(len(left), len(right))
	for i := 0; i < rows; i++ {
		pdf.Cell(95, 5, tr(trim(at(left, i), 50)))
		pdf.Cell(95, 5, tr(trim(at(right, i), 50)))
		pdf.Ln(5)
	}
	pdf.SetY(max(pdf.GetY(), top+6+float64(rows)*5) + 6)

	pdf.SetFillColor(235, 238, 245)
	pdf.SetFont(font, "B", 10)
	pdf.CellFormat(140, 7, "Description", "B", 0, "L", true, 0, "")
	pdf.CellFormat(50, 7, "Amount", "B", 1, "R", true, 0, "")

	pdf.SetFont(font, "", 10)
	for _, it := range inv.Items {
		if it.Monthly {
			pdf.SetTextColor(90, 90, 90)
		}
		pdf.CellFormat(140, 6, tr(trim(it.Description, 80)), "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, quote.FormatMoney(it.Amount), "", 1, "R", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(4)

	totals := []struct {
		label string
		value string
		bold  bool
	}{
		{"Subtotal", quote.FormatMoney(inv.SubTotal), false},
		{"VAT (15%)", quote.FormatMoney(inv.VATAmount), false},
		{"Total due", quote.FormatMoney(inv.TotalAmount), true},
	}
	for _, t := range totals {
		style := ""
		if t.bold {
			style = "B"
		}
		pdf.SetFont(font, style, 10)
		pdf.CellFormat(140, 6, t.label, "", 0, "R", false, 0, "")
		pdf.CellFormat(50, 6, t.value, "", 1, "R", false, 0, "")
	}

	if inv.MonthlyTotal.IsPositive() {
		pdf.Ln(3)
		pdf.SetFont(font, "I", 9)
		pdf.MultiCell(0, 5, fmt.Sprintf(
			"Monthly services total %s per month, billed monthly and excluded from the subtotal above.",
			quote.FormatMoney(inv.MonthlyTotal)), "", "L", false)
	}

	pdf.SetY(-20)
	pdf.SetFont(font, "", 8)
	pdf.CellFormat(0, 4, tr(company), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 4, "All one-off amounts include VAT at 15% where shown.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		g.logger.Error("quote pdf: output failed", zap.String("quote_number", inv.Number), zap.Error(err))
		return nil, err
	}
	return buf.Bytes(), nil
}

func at(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
